package shape

import (
	"testing"

	"github.com/matzehuels/polygrid/pkg/grid"
)

func TestRotateOrderFour(t *testing.T) {
	shapes := map[string]Shape{
		"corner":    Corner,
		"rectangle": Rectangle(2, 3),
		"unit":      Unit,
		"skew":      {{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	}
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			r := s.Rotate(1).Rotate(1).Rotate(1).Rotate(1)
			if !r.Equal(s) {
				t.Errorf("four quarter turns = %v, want %v", r, s)
			}
			if !s.Rotate(4).Equal(s) || !s.Rotate(-4).Equal(s) {
				t.Error("Rotate(±4) should be the identity")
			}
			if !s.Rotate(3).Equal(s.Rotate(-1)) {
				t.Error("Rotate(3) should equal Rotate(-1)")
			}
		})
	}
}

func TestRotateCorner(t *testing.T) {
	got := Corner.Rotate(1)
	want := Shape{{0, 0}, {0, -1}, {1, 0}}
	if !got.Equal(want) {
		t.Errorf("Corner.Rotate(1) = %v, want %v", got, want)
	}
}

func TestRotateDoesNotMutate(t *testing.T) {
	s := Shape{{1, 2}}
	_ = s.Rotate(1)
	_ = s.Mirror()
	if s[0] != (Offset{1, 2}) {
		t.Errorf("input mutated: %v", s)
	}
}

func TestMirrorIsInvolution(t *testing.T) {
	m := Corner.Mirror()
	if !m.Equal(Shape{{0, 0}, {-1, 0}, {0, 1}}) {
		t.Errorf("Corner.Mirror() = %v", m)
	}
	if !m.Mirror().Equal(Corner) {
		t.Error("mirroring twice should restore the shape")
	}
}

func TestRectangle(t *testing.T) {
	r := Rectangle(2, 3)
	if len(r) != 6 {
		t.Fatalf("len = %d, want 6", len(r))
	}
	if r[0] != (Offset{0, 0}) || r[5] != (Offset{1, 2}) {
		t.Errorf("unexpected order: %v", r)
	}
	if len(Rectangle(0, 3)) != 0 || len(Rectangle(2, -1)) != 0 {
		t.Error("non-positive sizes should give an empty shape")
	}
}

func TestNormalize(t *testing.T) {
	s := Shape{{-1, 1}, {0, 0}, {0, 1}}
	want := Shape{{0, 1}, {1, 0}, {1, 1}}
	got := s.Normalize()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Normalize() = %v, want %v", got, want)
		}
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog()
	if !c[NameCorner].Equal(Corner) {
		t.Errorf("catalog corner = %v", c[NameCorner])
	}
	for ct := grid.CellFull; ct <= grid.MaxCellType; ct++ {
		if s, ok := c[CellShapeName(ct)]; !ok || len(s) != 1 {
			t.Errorf("missing single-cell entry for type %d", ct)
		}
	}
	if len(c) != 10 {
		t.Errorf("len(Catalog()) = %d, want 10", len(c))
	}
	c[NameCorner][0] = Offset{9, 9}
	if Corner[0] != (Offset{0, 0}) {
		t.Error("Catalog() must hand out copies")
	}
}

func TestTranslate(t *testing.T) {
	got := Corner.Translate(grid.Coord{Row: 2, Col: 3})
	want := []grid.Coord{{Row: 2, Col: 3}, {Row: 3, Col: 3}, {Row: 2, Col: 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Translate()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCellPolygon(t *testing.T) {
	if len(CellPolygon(grid.CellFull)) != 4 {
		t.Error("full cell should be a square")
	}
	for ct := grid.CellHalfSW; ct <= grid.MaxCellType; ct++ {
		if n := len(CellPolygon(ct)); n != 3 {
			t.Errorf("type %d has %d vertices, want 3", ct, n)
		}
	}
	if got := CellPolygon(grid.CellType(42)); len(got) != 4 {
		t.Error("out-of-range types should fall back to the square")
	}
	p := CellPolygon(grid.CellHalfSW)
	p[0] = Point{7, 7}
	if CellPolygon(grid.CellHalfSW)[0] == (Point{7, 7}) {
		t.Error("CellPolygon must hand out copies")
	}
}
