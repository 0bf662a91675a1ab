package wildcard

// table is the DP grid stored row-major in one allocation. Cell (i, j) holds
// whether the first i input runes are matched by the first j pattern runes.
type table struct {
	cols  int
	cells []bool
}

func newTable(rows, cols int) table {
	return table{cols: cols, cells: make([]bool, rows*cols)}
}

func (t table) at(i, j int) bool {
	return t.cells[i*t.cols+j]
}

func (t table) set(i, j int, v bool) {
	t.cells[i*t.cols+j] = v
}

// size returns the number of cells, used for metrics.
func (t table) size() int {
	return len(t.cells)
}
