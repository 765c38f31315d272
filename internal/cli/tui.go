package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/snapshot"
	"github.com/matzehuels/polygrid/pkg/task"
)

var (
	editorHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	editorStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// cellGlyphs draws each cell type in one terminal column.
var cellGlyphs = [...]string{
	grid.CellFull:   "■",
	grid.CellHalfSW: "◣",
	grid.CellHalfSE: "◢",
	grid.CellHalfNE: "◥",
	grid.CellHalfNW: "◤",
	grid.CellApexNW: "◸",
	grid.CellApexNE: "◹",
	grid.CellApexSE: "◿",
	grid.CellApexSW: "◺",
}

func glyph(t grid.CellType) string {
	if !t.Valid() {
		return "?"
	}
	return cellGlyphs[t]
}

// =============================================================================
// EditorModel - Interactive board editor
// =============================================================================

// EditorModel is the bubbletea model of the edit command. It owns one engine
// and mirrors its figure count through the engine's observer.
type EditorModel struct {
	Engine *placement.Engine
	Cursor grid.Coord
	Path   string

	figures *int
	status  string
	failed  bool
	dirty   bool
	save    func(path string, r snapshot.Record) error
}

// NewEditorModel creates an editor over e that saves to path.
func NewEditorModel(e *placement.Engine, path string) EditorModel {
	figures := new(int)
	*figures = e.FigureCount()
	e.OnFigureCount(func(n int) { *figures = n })
	return EditorModel{
		Engine:  e,
		Path:    path,
		figures: figures,
		save:    snapshot.SaveFile,
	}
}

// Dirty reports whether the board changed since the last save.
func (m EditorModel) Dirty() bool { return m.dirty }

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	e := m.Engine
	n := e.GridSize()
	m.failed = false

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor.Row > 0 {
			m.Cursor.Row--
		}
	case "down", "j":
		if m.Cursor.Row < n-1 {
			m.Cursor.Row++
		}
	case "left", "h":
		if m.Cursor.Col > 0 {
			m.Cursor.Col--
		}
	case "right", "l":
		if m.Cursor.Col < n-1 {
			m.Cursor.Col++
		}
	case "enter", " ":
		if e.TryToggleAt(m.Cursor) {
			m.dirty = true
			m.status = fmt.Sprintf("toggled %s", m.Cursor)
		} else {
			m.fail(fmt.Sprintf("%s rejected", m.Cursor))
		}
	case "r":
		e.Rotate()
		m.status = fmt.Sprintf("rotation %d", e.Rotation())
	case "m":
		e.Mirror()
		m.status = fmt.Sprintf("mirrored %t", e.Mirrored())
	case "]", "tab":
		e.ChangeType(1)
		m.status = fmt.Sprintf("type %s", e.CellType())
	case "[", "shift+tab":
		e.ChangeType(-1)
		m.status = fmt.Sprintf("type %s", e.CellType())
	case "+", "=":
		m.resize(n + 1)
	case "-":
		m.resize(n - 1)
	case "t":
		m.nextTask()
	case "w":
		if err := m.save(m.Path, snapshot.Capture(e)); err != nil {
			m.fail(errors.UserMessage(err))
		} else {
			m.dirty = false
			m.status = "saved " + m.Path
		}
	}
	return m, nil
}

func (m *EditorModel) fail(msg string) {
	m.failed = true
	m.status = msg
}

func (m *EditorModel) resize(n int) {
	if err := m.Engine.SetGridSize(n); err != nil {
		m.fail(errors.UserMessage(err))
		return
	}
	m.clampCursor()
	m.dirty = true
	m.status = fmt.Sprintf("grid %dx%d", n, n)
}

func (m *EditorModel) nextTask() {
	codes := task.Codes()
	cur := m.Engine.Task().Code
	next := codes[0]
	for i, c := range codes {
		if c == cur {
			next = codes[(i+1)%len(codes)]
			break
		}
	}
	if err := m.Engine.SetTask(next); err != nil {
		m.fail(errors.UserMessage(err))
		return
	}
	m.dirty = true
	m.status = "task " + m.Engine.Task().Describe()
}

func (m *EditorModel) clampCursor() {
	n := m.Engine.GridSize()
	if m.Cursor.Row >= n {
		m.Cursor.Row = n - 1
	}
	if m.Cursor.Col >= n {
		m.Cursor.Col = n - 1
	}
}

func (m EditorModel) View() string {
	e := m.Engine
	mode := e.Task()
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("task %s", mode.Code)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %dx%d  figures %d", e.GridSize(), e.GridSize(), *m.figures)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.selectorLine()))
	b.WriteString("\n\n")

	preview := grid.NewSet()
	if mode.Discipline == task.WholeShape {
		preview.AddAll(e.CandidateCells(m.Cursor))
	}

	n := e.GridSize()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			at := grid.Coord{Row: r, Col: c}
			cell := m.renderCell(at, preview.Has(at))
			if at == m.Cursor {
				cell = styleCellCursor.Render(m.plainCell(at))
			}
			b.WriteString(cell)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := editorStatusStyle
		if m.failed {
			style = editorErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(editorHelpStyle.Render("arrows move  ⏎ toggle  r rotate  m mirror  [ ] type  +/- size  t task  w save  q quit"))
	return b.String()
}

func (m EditorModel) selectorLine() string {
	e := m.Engine
	mode := e.Task()
	switch mode.Discipline {
	case task.WholeShape:
		return fmt.Sprintf("%s  rotation %d  mirrored %t", mode.Shape, e.Rotation(), e.Mirrored())
	case task.TypedAccretion:
		return fmt.Sprintf("type %s %s  s=%d", glyph(e.CellType()), e.CellType(), e.Params().S)
	case task.UnitAccretion:
		return fmt.Sprintf("unit cells  s=%d", e.Params().S)
	default:
		return "no placement rules for this task"
	}
}

func (m EditorModel) renderCell(at grid.Coord, previewed bool) string {
	occ, t := m.Engine.At(at)
	switch occ {
	case placement.Figure:
		return styleCellFigure.Render(glyph(t))
	case placement.Loose:
		return styleCellLoose.Render(glyph(t))
	case placement.Forbidden:
		return styleCellForbidden.Render("×")
	}
	if previewed {
		return styleCellPreview.Render("□")
	}
	return styleCellEmpty.Render("·")
}

// plainCell is the unstyled glyph at a coordinate.
func (m EditorModel) plainCell(at grid.Coord) string {
	switch occ, t := m.Engine.At(at); occ {
	case placement.Figure, placement.Loose:
		return glyph(t)
	case placement.Forbidden:
		return "×"
	default:
		return "·"
	}
}
