package placement

import (
	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/task"
)

// DefaultGridSize is the grid dimension of a new engine.
const DefaultGridSize = 10

// Params are the numeric task targets: S drives validity predicates and the
// rectangle height, T the rectangle width.
type Params struct {
	S int `json:"s" toml:"s"`
	T int `json:"t" toml:"t"`
}

// DefaultParams are the targets of a new engine.
var DefaultParams = Params{S: 3, T: 2}

// Validate rejects non-positive targets.
func (p Params) Validate() error {
	if p.S < 1 || p.T < 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "parameters must be positive, got s=%d t=%d", p.S, p.T)
	}
	return nil
}

// Option configures an Engine at construction.
type Option func(*config)

type config struct {
	bounds    grid.Bounds
	size      int
	code      string
	params    Params
	observers []func(int)
}

func WithBounds(b grid.Bounds) Option { return func(c *config) { c.bounds = b } }
func WithGridSize(n int) Option       { return func(c *config) { c.size = n } }
func WithTask(code string) Option     { return func(c *config) { c.code = code } }
func WithParams(p Params) Option      { return func(c *config) { c.params = p } }

// WithFigureCountObserver registers fn as if by [Engine.OnFigureCount].
func WithFigureCountObserver(fn func(int)) Option {
	return func(c *config) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		bounds: grid.DefaultBounds,
		size:   DefaultGridSize,
		code:   task.DefaultCode,
		params: DefaultParams,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
