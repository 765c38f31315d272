package grid

// Set is an insertion-ordered set of typed cells keyed by coordinate.
// The zero value is an empty set ready to use.
type Set struct {
	index map[Coord]int
	cells []TypedCell
}

// NewSet returns a set holding cells. Later duplicates of a coordinate are ignored.
func NewSet(cells ...TypedCell) *Set {
	s := &Set{}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c. It returns false when the coordinate is already occupied.
func (s *Set) Add(c TypedCell) bool {
	if s.index == nil {
		s.index = make(map[Coord]int)
	}
	if _, ok := s.index[c.Coord]; ok {
		return false
	}
	s.index[c.Coord] = len(s.cells)
	s.cells = append(s.cells, c)
	return true
}

// AddAll inserts every cell of cells, skipping occupied coordinates.
func (s *Set) AddAll(cells []TypedCell) {
	for _, c := range cells {
		s.Add(c)
	}
}

// Remove deletes the cell at c and returns it.
func (s *Set) Remove(c Coord) (TypedCell, bool) {
	i, ok := s.index[c]
	if !ok {
		return TypedCell{}, false
	}
	removed := s.cells[i]
	s.cells = append(s.cells[:i], s.cells[i+1:]...)
	delete(s.index, c)
	for j := i; j < len(s.cells); j++ {
		s.index[s.cells[j].Coord] = j
	}
	return removed, true
}

// Has reports whether any cell occupies c.
func (s *Set) Has(c Coord) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[c]
	return ok
}

// Get returns the cell at c.
func (s *Set) Get(c Coord) (TypedCell, bool) {
	if s == nil {
		return TypedCell{}, false
	}
	i, ok := s.index[c]
	if !ok {
		return TypedCell{}, false
	}
	return s.cells[i], true
}

// Len returns the number of cells.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Cells returns a copy of the cells in insertion order.
func (s *Set) Cells() []TypedCell {
	if s == nil {
		return nil
	}
	out := make([]TypedCell, len(s.cells))
	copy(out, s.cells)
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return NewSet(s.Cells()...)
}

// Equal reports whether s and o hold the same typed cells, ignoring order.
func (s *Set) Equal(o *Set) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, c := range s.Cells() {
		got, ok := o.Get(c.Coord)
		if !ok || got.Type != c.Type {
			return false
		}
	}
	return true
}
