// Package session stores server-side boards.
//
// A session is one engine's snapshot record plus its id and lifetime. The
// HTTP server rebuilds an engine from the record on each request, mutates it
// under the session's lock and writes the record back, so every backend only
// ever stores plain records.
//
// Backends:
//   - memory: in-process map, for development and tests
//   - file: one JSON file per session
//   - redis: shared storage with native key expiry
//   - mongo: shared storage with a TTL index
//
// # Usage
//
//	store, err := session.Open(ctx, session.Options{Backend: "file", Dir: dir})
//	if err != nil {
//	    return err
//	}
//	sess := session.New(snapshot.Capture(engine), session.DefaultTTL)
//	err = store.Set(ctx, sess)
//
//	sess, err = store.Get(ctx, id)
//	if sess == nil {
//	    // not found or expired
//	}
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/polygrid/pkg/snapshot"
)

// DefaultTTL is the default session lifetime.
const DefaultTTL = 24 * time.Hour

// Session is one stored board.
type Session struct {
	ID        string          `json:"id"`
	Board     snapshot.Record `json:"board"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// New creates a session with a fresh random id.
func New(board snapshot.Record, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Board:     board,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Update replaces the board and extends the lifetime by ttl from now.
func (s *Session) Update(board snapshot.Record, ttl time.Duration) {
	now := time.Now()
	s.Board = board
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// ValidID reports whether id has the shape of a generated session id.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (may be a no-op for backends with native expiry).
	Cleanup(ctx context.Context) error

	Close() error
}

func encode(sess *Session) ([]byte, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*Session, error) {
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return &sess, nil
}
