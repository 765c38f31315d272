package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorTeal  = lipgloss.Color("36")  // titles, preview, spinner
	colorGreen = lipgloss.Color("35")  // success, validated figures
	colorAmber = lipgloss.Color("220") // warnings, cursor
	colorRed   = lipgloss.Color("167") // errors, forbidden cells
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245") // labels, loose cells
	colorDim   = lipgloss.Color("240") // muted text, empty cells
)

// =============================================================================
// Text Styles
// =============================================================================

var (
	// StyleTitle renders headings such as the editor's task line.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorTeal)

	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue renders values next to a label.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleWarning = lipgloss.NewStyle().Foreground(colorAmber)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorTeal)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
)

// Board cell styles used by the editor.
var (
	styleCellEmpty     = lipgloss.NewStyle().Foreground(colorDim)
	styleCellFigure    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleCellLoose     = lipgloss.NewStyle().Foreground(colorGray)
	styleCellForbidden = lipgloss.NewStyle().Foreground(colorRed)
	styleCellCursor    = lipgloss.NewStyle().Reverse(true).Foreground(colorAmber)
	styleCellPreview   = lipgloss.NewStyle().Foreground(colorTeal)
)

// =============================================================================
// Status Output
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

func status(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Println(style.Render(icon) + " " + fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { status(iconSuccess, styleIconSuccess, format, args...) }
func printError(format string, args ...any)   { status(iconError, styleIconError, format, args...) }
func printInfo(format string, args ...any)    { status(iconInfo, styleIconInfo, format, args...) }

func printWarning(format string, args ...any) {
	status(iconWarning, styleWarning, "%s", styleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printRenderStats prints component counts and whether the output came from
// the render cache.
func printRenderStats(figures, loose int, cached bool) {
	origin := styleComputed.Render("fresh")
	if cached {
		origin = styleCached.Render("cached")
	}
	sep := StyleDim.Render(" · ")
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d figures", figures)),
		StyleDim.Render(fmt.Sprintf("%d loose", loose)),
		origin,
	}
	fmt.Println("  " + strings.Join(parts, sep))
}
