package grid

import "github.com/matzehuels/polygrid/pkg/errors"

// Bounds limits the dimensions a grid may be resized to. A zero Max means
// no upper limit. Dimensions below 1 are always rejected.
type Bounds struct {
	Min int `toml:"min" json:"min"`
	Max int `toml:"max" json:"max"`
}

// DefaultBounds is used when no configuration overrides it.
var DefaultBounds = Bounds{Min: 1, Max: 100}

// Check validates n against b.
func (b Bounds) Check(n int) error {
	lo := b.Min
	if lo < 1 {
		lo = 1
	}
	if n < lo || (b.Max > 0 && n > b.Max) {
		if b.Max > 0 {
			return errors.New(errors.ErrCodeInvalidDimension, "grid size %d outside [%d, %d]", n, lo, b.Max)
		}
		return errors.New(errors.ErrCodeInvalidDimension, "grid size %d below minimum %d", n, lo)
	}
	return nil
}

// Grid is an n×n board.
type Grid struct {
	size   int
	bounds Bounds
}

// New creates a grid of the given size, validated against b.
func New(size int, b Bounds) (*Grid, error) {
	if err := b.Check(size); err != nil {
		return nil, err
	}
	return &Grid{size: size, bounds: b}, nil
}

// Size returns the grid dimension n.
func (g *Grid) Size() int { return g.size }

// Bounds returns the limits applied by Resize.
func (g *Grid) Bounds() Bounds { return g.bounds }

// Resize sets the dimension. On error the grid keeps its previous size.
func (g *Grid) Resize(n int) error {
	if err := g.bounds.Check(n); err != nil {
		return err
	}
	g.size = n
	return nil
}

// InBounds reports whether c lies on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// CheckCoord returns an OutOfBounds error for coordinates off the board.
func (g *Grid) CheckCoord(c Coord) error {
	if !g.InBounds(c) {
		return errors.New(errors.ErrCodeOutOfBounds, "cell %s outside %dx%d grid", c, g.size, g.size)
	}
	return nil
}
