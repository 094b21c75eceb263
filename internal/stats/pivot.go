package stats

import "sort"

// Pivot is a two-way count matrix (rows × columns).
type Pivot struct {
	RowKeys []string `json:"rowKeys"`
	ColKeys []string `json:"colKeys"`
	Counts  [][]int  `json:"counts"` // Counts[r][c], indexed like RowKeys/ColKeys
}

// PivotBy builds a two-way count table over items keyed by rowKey and colKey.
// Keys keep first-seen order; items with an empty key on either axis are skipped.
func PivotBy[T any](items []T, rowKey, colKey func(T) string) *Pivot {
	rowIdx := make(map[string]int)
	colIdx := make(map[string]int)
	p := &Pivot{}

	type cell struct{ r, c int }
	cells := make(map[cell]int)

	for _, item := range items {
		rk := rowKey(item)
		ck := colKey(item)
		if rk == "" || ck == "" {
			continue
		}
		r, ok := rowIdx[rk]
		if !ok {
			r = len(p.RowKeys)
			rowIdx[rk] = r
			p.RowKeys = append(p.RowKeys, rk)
		}
		c, ok := colIdx[ck]
		if !ok {
			c = len(p.ColKeys)
			colIdx[ck] = c
			p.ColKeys = append(p.ColKeys, ck)
		}
		cells[cell{r, c}]++
	}

	p.Counts = make([][]int, len(p.RowKeys))
	for r := range p.Counts {
		p.Counts[r] = make([]int, len(p.ColKeys))
	}
	for cl, n := range cells {
		p.Counts[cl.r][cl.c] = n
	}
	return p
}

// RowTotal sums the counts of row r.
func (p *Pivot) RowTotal(r int) int {
	total := 0
	for _, n := range p.Counts[r] {
		total += n
	}
	return total
}

// ColTotal sums the counts of column c.
func (p *Pivot) ColTotal(c int) int {
	total := 0
	for _, row := range p.Counts {
		total += row[c]
	}
	return total
}

// Trim keeps only the topRows busiest rows and topCols busiest columns,
// preserving the relative order of the survivors.
func (p *Pivot) Trim(topRows, topCols int) *Pivot {
	rows := topIndices(len(p.RowKeys), topRows, p.RowTotal)
	cols := topIndices(len(p.ColKeys), topCols, p.ColTotal)

	out := &Pivot{
		RowKeys: make([]string, 0, len(rows)),
		ColKeys: make([]string, 0, len(cols)),
		Counts:  make([][]int, 0, len(rows)),
	}
	for _, r := range rows {
		out.RowKeys = append(out.RowKeys, p.RowKeys[r])
		row := make([]int, 0, len(cols))
		for _, c := range cols {
			row = append(row, p.Counts[r][c])
		}
		out.Counts = append(out.Counts, row)
	}
	for _, c := range cols {
		out.ColKeys = append(out.ColKeys, p.ColKeys[c])
	}
	return out
}

// topIndices returns the indices of the n largest totals, in original order.
func topIndices(length, n int, total func(int) int) []int {
	if n <= 0 || n >= length {
		indices := make([]int, length)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	type scored struct{ idx, total int }
	all := make([]scored, length)
	for i := range all {
		all[i] = scored{idx: i, total: total(i)}
	}
	// Sort by total desc, take n, restore original order.
	sort.SliceStable(all, func(i, j int) bool { return all[i].total > all[j].total })
	picked := all[:n]
	sort.Slice(picked, func(i, j int) bool { return picked[i].idx < picked[j].idx })

	indices := make([]int, n)
	for i, s := range picked {
		indices[i] = s.idx
	}
	return indices
}
