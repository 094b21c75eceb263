package report

import "encoding/json"

// renderJSON emits the full report, both languages included, for
// downstream tooling.
func renderJSON(r *Report) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
