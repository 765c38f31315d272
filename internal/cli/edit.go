package cli

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/snapshot"
)

const defaultBoardFile = "board.json"

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var flags boardFlags

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a board in the terminal",
		Long: `Open a board in an interactive terminal editor.

If the file exists it is loaded, otherwise a new board is created from the
config and flags. Press w to save the board back to the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultBoardFile
			if len(args) == 1 {
				path = args[0]
			}
			e, err := c.openBoard(cmd.Context(), path, flags)
			if err != nil {
				return err
			}
			return runEditor(cmd.Context(), e, path)
		},
	}
	flags.register(cmd)

	return cmd
}

// openBoard loads path into a new engine, or returns a fresh engine when the
// file does not exist yet.
func (c *CLI) openBoard(ctx context.Context, path string, flags boardFlags) (*placement.Engine, error) {
	logger := loggerFromContext(ctx)

	e, err := c.newEngine(flags)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Debug("new board", "path", path, "task", e.Task().Code, "size", e.GridSize())
		return e, nil
	}

	rec, err := snapshot.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := snapshot.Apply(e, rec); err != nil {
		return nil, err
	}
	if flags != (boardFlags{}) {
		logger.Warn("board flags ignored for an existing file", "path", path)
	}
	logger.Debug("loaded board", "path", path, "task", e.Task().Code, "figures", e.FigureCount())
	return e, nil
}

func runEditor(ctx context.Context, e *placement.Engine, path string) error {
	final, err := tea.NewProgram(NewEditorModel(e, path), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(EditorModel); ok && m.Dirty() {
		printWarning("Unsaved changes to %s discarded", path)
		return nil
	}
	printSuccess("Closed %s", path)
	return nil
}
