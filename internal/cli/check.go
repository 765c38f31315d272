package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/connectivity"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/snapshot"
)

// boardSummary is what check reports about a board.
type boardSummary struct {
	Task      string
	GridSize  int
	Figures   int
	Weights   []float64
	FreeCells int
	Loose     int
	Zone      int
}

func summarize(e *placement.Engine) boardSummary {
	s := boardSummary{
		Task:      e.Task().Code,
		GridSize:  e.GridSize(),
		Figures:   e.FigureCount(),
		FreeCells: e.FreeCells().Len(),
		Loose:     e.LooseCells().Len(),
		Zone:      e.Zone().Len(),
	}
	for _, f := range e.Figures() {
		s.Weights = append(s.Weights, connectivity.Weight(f))
	}
	return s
}

// checkCommand creates the snapshot validation command.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a saved board and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := snapshot.LoadFile(args[0])
			if err != nil {
				return err
			}
			e, err := c.newEngine(boardFlags{})
			if err != nil {
				return err
			}
			if err := snapshot.Apply(e, rec); err != nil {
				return err
			}

			s := summarize(e)
			printSuccess("%s is a valid board", args[0])
			printKeyValue("task", e.Task().Describe())
			printKeyValue("grid", fmt.Sprintf("%dx%d", s.GridSize, s.GridSize))
			printKeyValue("figures", strconv.Itoa(s.Figures))
			for i, w := range s.Weights {
				printDetail("figure %d: weight %s", i+1, strconv.FormatFloat(w, 'f', -1, 64))
			}
			if e.Task().Discipline.Accretes() {
				printKeyValue("free cells", strconv.Itoa(s.FreeCells))
				printKeyValue("loose", strconv.Itoa(s.Loose))
			}
			printKeyValue("zone", strconv.Itoa(s.Zone))
			printKeyValue("digest", snapshot.Digest(rec)[:12])
			return nil
		},
	}
}
