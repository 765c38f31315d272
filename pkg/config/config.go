// Package config loads polygrid settings from TOML.
//
// Lookup order: an explicit path, $XDG_CONFIG_HOME/polygrid/config.toml,
// ~/.config/polygrid/config.toml, then built-in defaults. A missing file is
// not an error; a malformed one, or one with unknown keys, is.
//
//	[grid]
//	min = 1
//	max = 100
//	default_size = 10
//
//	[task]
//	default = "1a"
//	s = 3
//	t = 2
//
//	[server]
//	addr = ":8080"
//	session_ttl = "24h"
//
//	[store]
//	backend = "memory"   # memory, file, redis or mongo
//	dir = ""
//	redis_addr = "localhost:6379"
//	mongo_uri = "mongodb://localhost:27017"
//	mongo_database = "polygrid"
//
//	[cache]
//	dir = ""
//	disabled = false
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/session"
	"github.com/matzehuels/polygrid/pkg/task"
)

// Config is the full settings tree.
type Config struct {
	Grid   Grid   `toml:"grid"`
	Task   Task   `toml:"task"`
	Server Server `toml:"server"`
	Store  Store  `toml:"store"`
	Cache  Cache  `toml:"cache"`
}

type Grid struct {
	Min         int `toml:"min"`
	Max         int `toml:"max"`
	DefaultSize int `toml:"default_size"`
}

// Bounds returns the configured grid bounds.
func (g Grid) Bounds() grid.Bounds { return grid.Bounds{Min: g.Min, Max: g.Max} }

type Task struct {
	Default string `toml:"default"`
	S       int    `toml:"s"`
	T       int    `toml:"t"`
}

// Params returns the configured task targets.
func (t Task) Params() placement.Params { return placement.Params{S: t.S, T: t.T} }

type Server struct {
	Addr       string        `toml:"addr"`
	SessionTTL time.Duration `toml:"session_ttl"`
}

type Store struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	RedisAddr     string `toml:"redis_addr"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// Options converts the section into session store options.
func (s Store) Options() session.Options {
	return session.Options{
		Backend:       s.Backend,
		Dir:           s.Dir,
		RedisAddr:     s.RedisAddr,
		MongoURI:      s.MongoURI,
		MongoDatabase: s.MongoDatabase,
	}
}

type Cache struct {
	Dir      string `toml:"dir"`
	Disabled bool   `toml:"disabled"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Grid: Grid{
			Min:         grid.DefaultBounds.Min,
			Max:         grid.DefaultBounds.Max,
			DefaultSize: placement.DefaultGridSize,
		},
		Task: Task{
			Default: task.DefaultCode,
			S:       placement.DefaultParams.S,
			T:       placement.DefaultParams.T,
		},
		Server: Server{
			Addr:       ":8080",
			SessionTTL: session.DefaultTTL,
		},
		Store: Store{
			Backend:       session.BackendMemory,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: session.DefaultMongoDatabase,
		},
	}
}

// Path returns the first config file that exists, or "" when none does.
// An explicit path is returned as is.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	var candidates []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		candidates = append(candidates, filepath.Join(xdg, "polygrid", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "polygrid", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Load reads the config found by Path(explicit) over the defaults and
// validates the result. An explicit path must exist.
func Load(explicit string) (Config, string, error) {
	cfg := Default()
	path := Path(explicit)
	if path == "" {
		return cfg, "", nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, path, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return Config{}, path, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, path, errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, path, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return cfg, path, nil
}

// Validate checks that the settings are usable together.
func (c Config) Validate() error {
	if c.Grid.Min < 1 {
		return errors.New(errors.ErrCodeInvalidDimension, "grid.min must be at least 1, got %d", c.Grid.Min)
	}
	if c.Grid.Max != 0 && c.Grid.Max < c.Grid.Min {
		return errors.New(errors.ErrCodeInvalidDimension, "grid.max %d is below grid.min %d", c.Grid.Max, c.Grid.Min)
	}
	if err := c.Grid.Bounds().Check(c.Grid.DefaultSize); err != nil {
		return err
	}
	if _, err := task.Lookup(c.Task.Default); err != nil {
		return err
	}
	if err := c.Task.Params().Validate(); err != nil {
		return err
	}
	if c.Server.SessionTTL <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.session_ttl must be positive")
	}
	switch c.Store.Backend {
	case session.BackendMemory, session.BackendFile, session.BackendRedis, session.BackendMongo:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store.backend %q", c.Store.Backend)
	}
	return nil
}

// EngineOptions returns the engine construction options the config implies.
func (c Config) EngineOptions() []placement.Option {
	return []placement.Option{
		placement.WithBounds(c.Grid.Bounds()),
		placement.WithGridSize(c.Grid.DefaultSize),
		placement.WithTask(c.Task.Default),
		placement.WithParams(c.Task.Params()),
	}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
