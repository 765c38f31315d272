package task

import (
	"testing"

	"github.com/matzehuels/polygrid/pkg/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code       string
		discipline Discipline
		adjacency  Adjacency
		zone       ZoneRule
		validity   Validity
		shape      ShapeSource
	}{
		{"1a", WholeShape, AdjacencyNone, ZoneRule8, ValidityNone, ShapeCorner},
		{"1b", WholeShape, AdjacencyNone, ZoneRule8, ValidityNone, ShapeRectangle},
		{"1c", UnitAccretion, AdjacencyKing, ZoneRule8, ValidityCount, ShapeUnit},
		{"4.1a", WholeShape, AdjacencyNone, ZoneRule4, ValidityNone, ShapeCorner},
		{"4.1b", WholeShape, AdjacencyNone, ZoneRule4, ValidityNone, ShapeRectangle},
		{"4.1c", UnitAccretion, AdjacencyOrthogonal, ZoneRule4, ValidityCount, ShapeUnit},
		{"2a", TypedAccretion, AdjacencyTyped, ZoneNone, ValidityWeight, ShapeTypeSelector},
		{"4.2a", TypedAccretion, AdjacencyTyped, ZoneNone, ValidityWeight, ShapeTypeSelector},
		{"3a", Unsupported, AdjacencyNone, ZoneNone, ValidityNone, ShapeNone},
		{"4.3b", Unsupported, AdjacencyNone, ZoneNone, ValidityNone, ShapeNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			m, err := Lookup(tt.code)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.code, err)
			}
			if m.Code != tt.code {
				t.Errorf("Code = %q", m.Code)
			}
			if m.Discipline != tt.discipline {
				t.Errorf("Discipline = %v, want %v", m.Discipline, tt.discipline)
			}
			if m.Adjacency != tt.adjacency {
				t.Errorf("Adjacency = %v, want %v", m.Adjacency, tt.adjacency)
			}
			if m.Zone != tt.zone {
				t.Errorf("Zone = %v, want %v", m.Zone, tt.zone)
			}
			if m.Validity != tt.validity {
				t.Errorf("Validity = %v, want %v", m.Validity, tt.validity)
			}
			if m.Shape != tt.shape {
				t.Errorf("Shape = %v, want %v", m.Shape, tt.shape)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, code := range []string{"", "5a", "1A", " 1a"} {
		if _, err := Lookup(code); !errors.Is(err, errors.ErrCodeUnknownTask) {
			t.Errorf("Lookup(%q) = %v, want UNKNOWN_TASK", code, err)
		}
	}
}

func TestCodesMatchTable(t *testing.T) {
	codes := Codes()
	if len(codes) != 12 {
		t.Fatalf("len(Codes()) = %d, want 12", len(codes))
	}
	for _, c := range codes {
		if _, err := Lookup(c); err != nil {
			t.Errorf("Codes() lists %q but Lookup fails: %v", c, err)
		}
	}
}

func TestZoneNeighborhood(t *testing.T) {
	if len(ZoneRule8.Neighborhood()) != 8 {
		t.Error("rule-8 should forbid 8 neighbors")
	}
	if len(ZoneRule4.Neighborhood()) != 4 {
		t.Error("rule-4 should forbid 4 neighbors")
	}
	if ZoneNone.Neighborhood() != nil {
		t.Error("no zone rule should forbid nothing")
	}
}

func TestDescribe(t *testing.T) {
	m, _ := Lookup("3b")
	if m.Supported() {
		t.Error("3b should be a placeholder")
	}
	if got := m.Describe(); got != "3b: placeholder, no placement rules" {
		t.Errorf("Describe() = %q", got)
	}
	m, _ = Lookup("1c")
	if got := m.Describe(); got != "1c: unit-accretion, unit cell, zone rule-8" {
		t.Errorf("Describe() = %q", got)
	}
}
