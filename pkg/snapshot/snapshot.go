// Package snapshot persists placement engines as JSON records.
//
// The record layout is fixed:
//
//	{
//	  "gridSize": 5,
//	  "currentTask": "1a",
//	  "variables": {"s": 3, "t": 2},
//	  "placedFigures": [[[[0,0],0], [[1,0],0], [[0,1],0]]],
//	  "forbiddenZones": [[[0,2],0], ...],
//	  "freeCells": [],
//	  "currentRotation": 0,
//	  "mirrored": false,
//	  "currentType": 0
//	}
//
// Every field except mirrored and currentType is required. Decoding rejects
// missing fields and type mismatches with ErrCodeMalformedState, and applying
// a record to an engine is atomic.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
)

// Record is the persisted form of an engine.
type Record struct {
	GridSize        int       `json:"gridSize"`
	CurrentTask     string    `json:"currentTask"`
	Variables       Variables `json:"variables"`
	PlacedFigures   [][]Cell  `json:"placedFigures"`
	ForbiddenZones  []Cell    `json:"forbiddenZones"`
	FreeCells       []Cell    `json:"freeCells"`
	CurrentRotation int       `json:"currentRotation"`
	Mirrored        bool      `json:"mirrored"`
	CurrentType     int       `json:"currentType"`
}

// Variables are the task parameters.
type Variables struct {
	S int `json:"s"`
	T int `json:"t"`
}

var requiredFields = []string{
	"gridSize", "currentTask", "variables", "placedFigures",
	"forbiddenZones", "freeCells", "currentRotation",
}

// Capture records the current engine state.
func Capture(e *placement.Engine) Record {
	return FromState(e.State())
}

// Apply restores r into e atomically.
func Apply(e *placement.Engine, r Record) error {
	return e.Restore(r.State())
}

// FromState converts engine state into a record.
func FromState(s placement.State) Record {
	r := Record{
		GridSize:        s.GridSize,
		CurrentTask:     s.Task,
		Variables:       Variables{S: s.Params.S, T: s.Params.T},
		PlacedFigures:   make([][]Cell, len(s.Figures)),
		ForbiddenZones:  toCells(s.Zone),
		FreeCells:       toCells(s.Free),
		CurrentRotation: s.Rotation,
		Mirrored:        s.Mirrored,
		CurrentType:     int(s.CellType),
	}
	for i, f := range s.Figures {
		r.PlacedFigures[i] = toCells(f)
	}
	return r
}

// State converts the record back into engine state.
func (r Record) State() placement.State {
	s := placement.State{
		GridSize: r.GridSize,
		Task:     r.CurrentTask,
		Params:   placement.Params{S: r.Variables.S, T: r.Variables.T},
		Figures:  make([][]grid.TypedCell, len(r.PlacedFigures)),
		Zone:     fromCells(r.ForbiddenZones),
		Free:     fromCells(r.FreeCells),
		Rotation: r.CurrentRotation,
		Mirrored: r.Mirrored,
		CellType: grid.CellType(r.CurrentType),
	}
	for i, f := range r.PlacedFigures {
		s.Figures[i] = fromCells(f)
	}
	if r.CurrentType < 0 || r.CurrentType > int(grid.MaxCellType) {
		s.CellType = grid.MaxCellType + 1 // rejected by Restore
	}
	return s
}

// Encode returns the indented JSON form of r.
func Encode(r Record) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// Decode parses a record, rejecting missing required fields and fields of the
// wrong JSON type.
func Decode(data []byte) (Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Record{}, malformed(err, "record is not a JSON object")
	}
	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return Record{}, errors.New(errors.ErrCodeMalformedState, "missing required field %q", name)
		}
	}
	if err := requireKeys(fields["variables"], "s", "t"); err != nil {
		return Record{}, err
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, malformed(err, "decode record")
	}
	return r, nil
}

func requireKeys(raw json.RawMessage, keys ...string) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return malformed(err, "variables is not an object")
	}
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return errors.New(errors.ErrCodeMalformedState, "missing variable %q", k)
		}
	}
	return nil
}

func malformed(err error, msg string) error {
	return errors.Wrap(errors.ErrCodeMalformedState, err, "%s", msg)
}

// Digest is a stable content hash of r, used as a render cache key.
func Digest(r Record) string {
	data, _ := json.Marshal(r)
	return cache.Hash(data)
}

// SaveFile writes r to path.
func SaveFile(path string, r Record) error {
	data, err := Encode(r)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadFile reads and decodes the record at path.
func LoadFile(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, errors.Wrap(errors.ErrCodeNotFound, err, "snapshot %s", path)
		}
		return Record{}, fmt.Errorf("read snapshot: %w", err)
	}
	return Decode(data)
}
