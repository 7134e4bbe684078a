package sketch

// Segment is a maximal run of foreground samples within one scanned row.
// StartCol == EndCol for a single-pixel run.
type Segment struct {
	Row      int
	StartCol int
	EndCol   int
}

// Scanner walks a raster row by row and yields foreground runs. Rows are
// visited in ascending order at the configured stride, runs within a row left
// to right. A scanner is a single pass: once Next returns false it stays
// exhausted.
type Scanner struct {
	raster *Raster
	stride int
	row    int
	col    int
}

func NewScanner(raster *Raster, stride int) *Scanner {
	return &Scanner{raster: raster, stride: stride}
}

// Next returns the next segment in scan order, or false when the raster is
// exhausted.
func (s *Scanner) Next() (Segment, bool) {
	for s.row < s.raster.Height {
		// seeking: skip background until a run starts
		for s.col < s.raster.Width && !s.raster.Foreground(s.col, s.row) {
			s.col++
		}
		if s.col >= s.raster.Width {
			s.row += s.stride
			s.col = 0
			continue
		}

		// in run: extend to the last consecutive foreground sample
		start := s.col
		for s.col < s.raster.Width && s.raster.Foreground(s.col, s.row) {
			s.col++
		}
		return Segment{Row: s.row, StartCol: start, EndCol: s.col - 1}, true
	}
	return Segment{}, false
}
