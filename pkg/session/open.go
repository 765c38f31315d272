package session

import (
	"context"
	"time"

	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/observability"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Options select and configure a backend.
type Options struct {
	Backend       string
	Dir           string
	RedisAddr     string
	MongoURI      string
	MongoDatabase string
}

// Open creates the configured backend wrapped with observability hooks.
// An empty backend selects memory.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)
	backend := opts.Backend
	switch backend {
	case "", BackendMemory:
		backend = BackendMemory
		store = NewMemoryStore()
	case BackendFile:
		store, err = NewFileStore(opts.Dir)
	case BackendRedis:
		store, err = NewRedisStore(ctx, opts.RedisAddr)
	case BackendMongo:
		store, err = NewMongoStore(ctx, opts.MongoURI, opts.MongoDatabase)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown session backend %q", opts.Backend)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s session store", backend)
	}
	return Instrument(store, backend), nil
}

// Instrument reports every store call to the registered session hooks.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

type instrumented struct {
	Store
	backend string
}

func (s *instrumented) Get(ctx context.Context, id string) (*Session, error) {
	start := time.Now()
	sess, err := s.Store.Get(ctx, id)
	observability.Session().OnSessionLoad(ctx, s.backend, sess != nil, time.Since(start))
	return sess, err
}

func (s *instrumented) Set(ctx context.Context, sess *Session) error {
	start := time.Now()
	err := s.Store.Set(ctx, sess)
	size := len(sess.Board.FreeCells) + len(sess.Board.ForbiddenZones)
	for _, f := range sess.Board.PlacedFigures {
		size += len(f)
	}
	observability.Session().OnSessionSave(ctx, s.backend, size, time.Since(start), err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, id string) error {
	observability.Session().OnSessionDelete(ctx, s.backend)
	return s.Store.Delete(ctx, id)
}
