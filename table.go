package collide

// Table is a B×B collision grid. Cell (i, j) counts the input values that
// fall into bucket i under the first hash and bucket j under the second.
// Cells are stored row-major in a flat slice.
//
// A Table is fully populated by one Evaluate call and not mutated afterward.
type Table struct {
	buckets int
	total   int
	cells   []int
}

func newTable(buckets int) *Table {
	return &Table{
		buckets: buckets,
		cells:   make([]int, buckets*buckets),
	}
}

// Buckets returns the bucket count B. The table has B×B cells.
func (t *Table) Buckets() int {
	return t.buckets
}

// Total returns the number of tallied inputs, i.e. the sum over all cells.
func (t *Table) Total() int {
	return t.total
}

// At returns the count in cell (i, j). Out-of-range indices yield 0.
func (t *Table) At(i, j int) int {
	if i < 0 || i >= t.buckets || j < 0 || j >= t.buckets {
		return 0
	}
	return t.cells[i*t.buckets+j]
}

// Row returns a copy of row i, or nil for an out-of-range index.
func (t *Table) Row(i int) []int {
	if i < 0 || i >= t.buckets {
		return nil
	}
	row := make([]int, t.buckets)
	copy(row, t.cells[i*t.buckets:(i+1)*t.buckets])
	return row
}

func (t *Table) add(i, j int) {
	t.cells[i*t.buckets+j]++
	t.total++
}

// TableStats summarizes the mass distribution of a collision table.
type TableStats struct {
	Buckets  int // bucket count B
	Total    int // sum over all cells
	MaxCell  int // largest single cell count
	NonZero  int // number of cells with a non-zero count
	Diagonal int // mass on the main diagonal
}

// FillRatio reports the fraction of cells holding at least one input.
func (s TableStats) FillRatio() float64 {
	if s.Buckets == 0 {
		return 0
	}
	return float64(s.NonZero) / float64(s.Buckets*s.Buckets)
}

// Stats computes summary metrics over the table in one pass.
func (t *Table) Stats() TableStats {
	stats := TableStats{Buckets: t.buckets, Total: t.total}
	for i := 0; i < t.buckets; i++ {
		for j := 0; j < t.buckets; j++ {
			n := t.cells[i*t.buckets+j]
			if n == 0 {
				continue
			}
			stats.NonZero++
			if n > stats.MaxCell {
				stats.MaxCell = n
			}
			if i == j {
				stats.Diagonal += n
			}
		}
	}
	return stats
}
