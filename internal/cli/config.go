package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.config.Write(os.Stdout)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path := config.Path(c.configPath); path != "" {
				printFile(path)
				return nil
			}
			printInfo("No config file found, using defaults")
			return nil
		},
	})

	return cmd
}
