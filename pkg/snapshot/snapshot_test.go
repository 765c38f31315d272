package snapshot

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
)

func mustEngine(t *testing.T, opts ...placement.Option) *placement.Engine {
	t.Helper()
	e, err := placement.New(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestCellJSON(t *testing.T) {
	data, err := json.Marshal(Cell{Row: 2, Col: 3, Type: 4})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[[2,3],4]" {
		t.Errorf("Marshal = %s, want [[2,3],4]", data)
	}

	var c Cell
	if err := json.Unmarshal([]byte(" [ [7, 1], 0 ] "), &c); err != nil {
		t.Fatal(err)
	}
	if c != (Cell{Row: 7, Col: 1}) {
		t.Errorf("Unmarshal = %+v", c)
	}

	for _, bad := range []string{`[1,2]`, `[[1],0]`, `[[1,2,3],0]`, `[[1,2],"x"]`, `{"row":1}`, `[[1,2],0,5]`} {
		if err := json.Unmarshal([]byte(bad), &c); err == nil {
			t.Errorf("Unmarshal(%s) succeeded", bad)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*placement.Engine)
	}{
		{"corner", func(e *placement.Engine) {
			e.Place(grid.Coord{Row: 0, Col: 0})
			e.Rotate()
			e.Place(grid.Coord{Row: 4, Col: 4})
		}},
		{"unit accretion", func(e *placement.Engine) {
			_ = e.SetTask("4.1c")
			for _, c := range []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}, {Row: 6, Col: 0}} {
				e.Toggle(c)
			}
		}},
		{"typed", func(e *placement.Engine) {
			_ = e.SetTask("4.2a")
			e.ChangeType(3)
			e.Toggle(grid.Coord{Row: 0, Col: 0})
			e.Toggle(grid.Coord{Row: 0, Col: 1})
			e.Mirror()
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mustEngine(t, placement.WithGridSize(8))
			tt.setup(src)
			rec := Capture(src)

			data, err := Encode(rec)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(rec, got); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}

			dst := mustEngine(t)
			if err := Apply(dst, got); err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if Digest(Capture(dst)) != Digest(rec) {
				t.Errorf("restored engine differs:\n%s", cmp.Diff(rec, Capture(dst)))
			}
		})
	}
}

func TestEncodeEmptyCollections(t *testing.T) {
	data, err := Encode(Capture(mustEngine(t)))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"placedFigures": []`, `"forbiddenZones": []`, `"freeCells": []`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("encoded record lacks %s:\n%s", want, data)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	valid := map[string]any{
		"gridSize":        5,
		"currentTask":     "1a",
		"variables":       map[string]any{"s": 3, "t": 2},
		"placedFigures":   []any{},
		"forbiddenZones":  []any{},
		"freeCells":       []any{},
		"currentRotation": 0,
	}
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing gridSize", func(m map[string]any) { delete(m, "gridSize") }},
		{"missing freeCells", func(m map[string]any) { delete(m, "freeCells") }},
		{"null figures", func(m map[string]any) { m["placedFigures"] = nil }},
		{"missing s", func(m map[string]any) { m["variables"] = map[string]any{"t": 2} }},
		{"string size", func(m map[string]any) { m["gridSize"] = "5" }},
		{"fractional rotation", func(m map[string]any) { m["currentRotation"] = 1.5 }},
		{"numeric task", func(m map[string]any) { m["currentTask"] = 1 }},
		{"bad cell", func(m map[string]any) { m["freeCells"] = []any{[]any{1, 2}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{}
			for k, v := range valid {
				m[k] = v
			}
			tt.mutate(m)
			data, _ := json.Marshal(m)
			if _, err := Decode(data); !errors.Is(err, errors.ErrCodeMalformedState) {
				t.Errorf("Decode() error = %v, want MALFORMED_STATE", err)
			}
		})
	}

	if _, err := Decode([]byte("[1,2]")); !errors.Is(err, errors.ErrCodeMalformedState) {
		t.Errorf("Decode(array) error = %v", err)
	}

	data, _ := json.Marshal(valid)
	r, err := Decode(data)
	if err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
	if r.Mirrored || r.CurrentType != 0 {
		t.Errorf("optional fields should default to zero: %+v", r)
	}
}

func TestApplyIsAtomic(t *testing.T) {
	e := mustEngine(t, placement.WithGridSize(6))
	e.Place(grid.Coord{Row: 0, Col: 0})
	before := Capture(e)

	bad := before
	bad.FreeCells = []Cell{{Row: 10, Col: 10}}
	if err := Apply(e, bad); !errors.Is(err, errors.ErrCodeMalformedState) {
		t.Fatalf("Apply() error = %v", err)
	}
	bad = before
	bad.CurrentType = -3
	if err := Apply(e, bad); !errors.Is(err, errors.ErrCodeMalformedState) {
		t.Fatalf("Apply(negative type) error = %v", err)
	}
	if diff := cmp.Diff(before, Capture(e)); diff != "" {
		t.Errorf("engine changed (-before +after):\n%s", diff)
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	e := mustEngine(t)
	e.Place(grid.Coord{Row: 3, Col: 3})
	rec := Capture(e)

	path := filepath.Join(dir, "board.json")
	if err := SaveFile(path, rec); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(rec, got); diff != "" {
		t.Errorf("file round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("LoadFile(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestDigest(t *testing.T) {
	a := Capture(mustEngine(t))
	b := Capture(mustEngine(t))
	if Digest(a) != Digest(b) {
		t.Error("equal records must share a digest")
	}
	b.GridSize++
	if Digest(a) == Digest(b) {
		t.Error("different records must not share a digest")
	}
}
