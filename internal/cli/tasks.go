package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/task"
)

// tasksCommand creates the command listing task codes.
func (c *CLI) tasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List task codes and their placement policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(tasksTable(task.Modes(), c.config.Task.Default))
			return nil
		},
	}
}

func tasksTable(modes []task.Mode, current string) string {
	rows := make([][]string, len(modes))
	for i, m := range modes {
		if !m.Supported() {
			rows[i] = []string{m.Code, "placeholder", "-", "-", "-", "-"}
			continue
		}
		rows[i] = []string{m.Code, m.Discipline.String(), m.Shape.String(), m.Adjacency.String(), m.Zone.String(), m.Validity.String()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Task", "Discipline", "Shape", "Adjacency", "Zone", "Validity").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			m := modes[row]
			switch {
			case m.Code == current:
				return base.Foreground(colorTeal).Bold(true)
			case !m.Supported():
				return base.Foreground(colorDim)
			default:
				return base
			}
		}).
		Render()
}
