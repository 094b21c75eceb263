package dataset

import "fmt"

// SchemaError reports a required column missing from the CSV header.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset schema error: required column %q not found", e.Column)
}
