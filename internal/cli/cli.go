package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/config"
	"github.com/matzehuels/polygrid/pkg/placement"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "polygrid"

	// renderTTL is how long rendered artifacts stay in the file cache.
	renderTTL = 7 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Polygrid places polyominoes and typed cells on a square grid",
		Long:         `Polygrid is an editor and engine for grid placement tasks: whole shapes kept apart by a forbidden zone, or single cells that group into figures by adjacency.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/polygrid/config.toml)")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.tasksCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration, installs the logging hooks and attaches
// the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	if path != "" {
		c.Logger.Debug("loaded config", "path", path)
	}
	registerHooks(c.Logger)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Engine and Cache Factories
// =============================================================================

// boardFlags override the configured defaults of a new board.
type boardFlags struct {
	size int
	task string
	s, t int
}

func (f *boardFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.size, "size", "n", 0, "grid size (default from config)")
	cmd.Flags().StringVar(&f.task, "task", "", "task code (default from config)")
	cmd.Flags().IntVarP(&f.s, "param-s", "s", 0, "parameter s (default from config)")
	cmd.Flags().IntVarP(&f.t, "param-t", "t", 0, "parameter t (default from config)")
}

// newEngine builds an engine from the config, overridden by any set flags.
func (c *CLI) newEngine(f boardFlags) (*placement.Engine, error) {
	opts := c.config.EngineOptions()
	if f.size != 0 {
		opts = append(opts, placement.WithGridSize(f.size))
	}
	if f.task != "" {
		opts = append(opts, placement.WithTask(f.task))
	}
	if f.s != 0 || f.t != 0 {
		p := c.config.Task.Params()
		if f.s != 0 {
			p.S = f.s
		}
		if f.t != 0 {
			p.T = f.t
		}
		opts = append(opts, placement.WithParams(p))
	}
	return placement.New(opts...)
}

// newCache returns the render cache, or a null cache when disabled.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache || c.config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	dir := c.config.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/polygrid/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
