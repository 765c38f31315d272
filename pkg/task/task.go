// Package task maps task codes onto the placement policy the engine applies.
//
// Each code selects an immutable [Mode]: the placement discipline, the
// adjacency that groups accreted cells, the forbidden-zone rule, the validity
// predicate for components and where the base shape comes from.
//
//	code        discipline      adjacency   zone    validity
//	1a, 1b      whole-shape     -           rule-8  -
//	1c          unit-accretion  king        rule-8  count == s
//	4.1a, 4.1b  whole-shape     -           rule-4  -
//	4.1c        unit-accretion  orthogonal  rule-4  count == s
//	2a, 4.2a    typed-accretion typed       none    weight == s
//	3a, 3b, 4.3a, 4.3b  unsupported
//
// Unsupported codes are real entries: they may be selected, but the engine
// accepts no placements for them.
package task

import (
	"fmt"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
)

// Discipline is the way the user builds figures.
type Discipline int

const (
	Unsupported Discipline = iota
	WholeShape
	UnitAccretion
	TypedAccretion
)

func (d Discipline) String() string {
	switch d {
	case WholeShape:
		return "whole-shape"
	case UnitAccretion:
		return "unit-accretion"
	case TypedAccretion:
		return "typed-accretion"
	default:
		return "unsupported"
	}
}

// Accretes reports whether figures are grown cell by cell.
func (d Discipline) Accretes() bool {
	return d == UnitAccretion || d == TypedAccretion
}

// Adjacency decides which free cells belong to the same component.
type Adjacency int

const (
	AdjacencyNone Adjacency = iota
	AdjacencyKing
	AdjacencyOrthogonal
	AdjacencyTyped
)

func (a Adjacency) String() string {
	switch a {
	case AdjacencyKing:
		return "king"
	case AdjacencyOrthogonal:
		return "orthogonal"
	case AdjacencyTyped:
		return "typed"
	default:
		return "-"
	}
}

// ZoneRule decides which cells around a figure become forbidden.
type ZoneRule int

const (
	ZoneNone ZoneRule = iota
	ZoneRule8
	ZoneRule4
)

// Neighborhood returns the offsets the rule forbids, or nil for ZoneNone.
func (z ZoneRule) Neighborhood() grid.Neighborhood {
	switch z {
	case ZoneRule8:
		return grid.King
	case ZoneRule4:
		return grid.Orthogonal
	default:
		return nil
	}
}

func (z ZoneRule) String() string {
	switch z {
	case ZoneRule8:
		return "rule-8"
	case ZoneRule4:
		return "rule-4"
	default:
		return "none"
	}
}

// Validity is the predicate a component must satisfy to become a figure.
type Validity int

const (
	ValidityNone Validity = iota
	// ValidityCount requires exactly s cells.
	ValidityCount
	// ValidityWeight requires the cell weights to sum to exactly s.
	ValidityWeight
)

func (v Validity) String() string {
	switch v {
	case ValidityCount:
		return "count == s"
	case ValidityWeight:
		return "weight == s"
	default:
		return "-"
	}
}

// ShapeSource names where the base shape of a whole-shape task comes from.
type ShapeSource int

const (
	ShapeNone ShapeSource = iota
	// ShapeCorner uses the fixed corner triomino.
	ShapeCorner
	// ShapeRectangle builds an s×t rectangle from the task parameters.
	ShapeRectangle
	// ShapeUnit is the single generic cell toggled by unit accretion.
	ShapeUnit
	// ShapeTypeSelector uses the current half-cell type selector.
	ShapeTypeSelector
)

func (s ShapeSource) String() string {
	switch s {
	case ShapeCorner:
		return "corner"
	case ShapeRectangle:
		return "rectangle s×t"
	case ShapeUnit:
		return "unit cell"
	case ShapeTypeSelector:
		return "typed cell"
	default:
		return "-"
	}
}

// Mode is the immutable policy bundle for one task code.
type Mode struct {
	Code       string
	Discipline Discipline
	Adjacency  Adjacency
	Zone       ZoneRule
	Validity   Validity
	Shape      ShapeSource
}

// Supported reports whether the engine accepts placements under m.
func (m Mode) Supported() bool { return m.Discipline != Unsupported }

// Describe returns a one-line summary for help output.
func (m Mode) Describe() string {
	if !m.Supported() {
		return fmt.Sprintf("%s: placeholder, no placement rules", m.Code)
	}
	return fmt.Sprintf("%s: %s, %s, zone %s", m.Code, m.Discipline, m.Shape, m.Zone)
}

var modes = []Mode{
	{Code: "1a", Discipline: WholeShape, Zone: ZoneRule8, Shape: ShapeCorner},
	{Code: "1b", Discipline: WholeShape, Zone: ZoneRule8, Shape: ShapeRectangle},
	{Code: "1c", Discipline: UnitAccretion, Adjacency: AdjacencyKing, Zone: ZoneRule8, Validity: ValidityCount, Shape: ShapeUnit},
	{Code: "2a", Discipline: TypedAccretion, Adjacency: AdjacencyTyped, Validity: ValidityWeight, Shape: ShapeTypeSelector},
	{Code: "3a"},
	{Code: "3b"},
	{Code: "4.1a", Discipline: WholeShape, Zone: ZoneRule4, Shape: ShapeCorner},
	{Code: "4.1b", Discipline: WholeShape, Zone: ZoneRule4, Shape: ShapeRectangle},
	{Code: "4.1c", Discipline: UnitAccretion, Adjacency: AdjacencyOrthogonal, Zone: ZoneRule4, Validity: ValidityCount, Shape: ShapeUnit},
	{Code: "4.2a", Discipline: TypedAccretion, Adjacency: AdjacencyTyped, Validity: ValidityWeight, Shape: ShapeTypeSelector},
	{Code: "4.3a"},
	{Code: "4.3b"},
}

var byCode = func() map[string]Mode {
	m := make(map[string]Mode, len(modes))
	for _, md := range modes {
		m[md.Code] = md
	}
	return m
}()

// DefaultCode is the task selected at startup.
const DefaultCode = "1a"

// Lookup returns the policy for code.
func Lookup(code string) (Mode, error) {
	m, ok := byCode[code]
	if !ok {
		return Mode{}, errors.New(errors.ErrCodeUnknownTask, "unknown task code %q", code)
	}
	return m, nil
}

// Codes lists every known task code in table order.
func Codes() []string {
	out := make([]string, len(modes))
	for i, m := range modes {
		out[i] = m.Code
	}
	return out
}

// Modes returns a copy of the full policy table.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}
