package session

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/observability"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/snapshot"
)

func board(t *testing.T) snapshot.Record {
	t.Helper()
	e, err := placement.New(placement.WithGridSize(6))
	if err != nil {
		t.Fatal(err)
	}
	e.Place(grid.Coord{Row: 1, Col: 1})
	return snapshot.Capture(e)
}

// Timestamps lose their monotonic reading through JSON.
var timeEqual = cmpopts.EquateApproxTime(time.Millisecond)

func stores(t *testing.T) map[string]Store {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fs,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			sess := New(board(t), time.Hour)
			if err := store.Set(ctx, sess); err != nil {
				t.Fatalf("Set: %v", err)
			}
			got, err := store.Get(ctx, sess.ID)
			if err != nil || got == nil {
				t.Fatalf("Get = %v, %v", got, err)
			}
			if diff := cmp.Diff(sess, got, timeEqual); diff != "" {
				t.Errorf("session mismatch (-want +got):\n%s", diff)
			}

			if err := store.Delete(ctx, sess.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if got, _ := store.Get(ctx, sess.ID); got != nil {
				t.Error("session survived Delete")
			}
			if err := store.Delete(ctx, sess.ID); err != nil {
				t.Errorf("second Delete: %v", err)
			}
		})
	}
}

func TestStoreMissingAndExpired(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if got, err := store.Get(ctx, New(snapshot.Record{}, time.Hour).ID); got != nil || err != nil {
				t.Errorf("Get(unknown) = %v, %v; want nil, nil", got, err)
			}

			old := New(board(t), -time.Minute)
			if err := store.Set(ctx, old); err != nil {
				t.Fatal(err)
			}
			if got, _ := store.Get(ctx, old.ID); got != nil {
				t.Error("expired session returned")
			}
			if err := store.Cleanup(ctx); err != nil {
				t.Errorf("Cleanup: %v", err)
			}
		})
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	sess := New(board(t), time.Hour)
	_ = s.Set(ctx, sess)
	sess.Board.GridSize = 99

	got, _ := s.Get(ctx, sess.ID)
	if got.Board.GridSize != 6 {
		t.Errorf("stored session aliased the caller: grid size %d", got.Board.GridSize)
	}

	_ = s.Set(ctx, New(board(t), -time.Second))
	_ = s.Cleanup(ctx)
	if s.Len() != 1 {
		t.Errorf("Len() after Cleanup = %d, want 1", s.Len())
	}
}

func TestFileStoreRejectsForeignIDs(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := NewFileStore(dir)

	if err := s.Set(ctx, &Session{ID: "../escape", ExpiresAt: time.Now().Add(time.Hour)}); err == nil {
		t.Error("Set accepted a path-like id")
	}
	if got, err := s.Get(ctx, "../../etc/passwd"); got != nil || err != nil {
		t.Errorf("Get(path) = %v, %v", got, err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.json")); !os.IsNotExist(err) {
		t.Error("file written outside the store")
	}
}

func TestFileStoreCleanup(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := NewFileStore(dir)

	live := New(board(t), time.Hour)
	dead := New(board(t), -time.Hour)
	_ = s.Set(ctx, live)
	_ = s.Set(ctx, dead)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := s.Cleanup(ctx); err != nil {
		t.Fatal(err)
	}
	entries, _ := os.ReadDir(dir)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"notes.txt", live.ID + ".json"}
	if diff := cmp.Diff(want, names, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("files after Cleanup (-want +got):\n%s", diff)
	}
}

func TestSessionUpdate(t *testing.T) {
	sess := New(board(t), time.Minute)
	created := sess.CreatedAt
	rec := sess.Board
	rec.CurrentRotation = 2

	sess.Update(rec, time.Hour)
	if sess.Board.CurrentRotation != 2 {
		t.Error("board not replaced")
	}
	if sess.CreatedAt != created || sess.UpdatedAt.Before(created) {
		t.Error("timestamps not maintained")
	}
	if time.Until(sess.ExpiresAt) < 59*time.Minute {
		t.Error("expiry not extended")
	}
	if !ValidID(sess.ID) || ValidID("nope") {
		t.Error("ValidID mismatch")
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name    string
		opts    Options
		wantErr errors.Code
	}{
		{"default", Options{}, ""},
		{"memory", Options{Backend: BackendMemory}, ""},
		{"file", Options{Backend: BackendFile, Dir: t.TempDir()}, ""},
		{"unknown", Options{Backend: "etcd"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.opts)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Open() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			defer s.Close()
			sess := New(board(t), time.Hour)
			if err := s.Set(ctx, sess); err != nil {
				t.Fatal(err)
			}
			if got, _ := s.Get(ctx, sess.ID); got == nil {
				t.Error("opened store lost the session")
			}
		})
	}
}

func TestOpenUnreachableRedis(t *testing.T) {
	defer func(d time.Duration) { cache.RetryDelay = d }(cache.RetryDelay)
	cache.RetryDelay = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := Open(ctx, Options{Backend: BackendRedis, RedisAddr: "127.0.0.1:1"})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("Open() error = %v, want %s", err, errors.ErrCodeInternal)
	}
	if !stderrors.Is(err, cache.ErrUnavailable) {
		t.Errorf("Open() error = %v, want it to wrap ErrUnavailable", err)
	}
}

type recordingHooks struct {
	observability.NoopSessionHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) OnSessionLoad(_ context.Context, backend string, found bool, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if found {
		h.events = append(h.events, backend+":hit")
	} else {
		h.events = append(h.events, backend+":miss")
	}
}

func (h *recordingHooks) OnSessionSave(_ context.Context, backend string, size int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, backend+":save")
}

func TestInstrumentReportsHooks(t *testing.T) {
	defer observability.Reset()
	hooks := &recordingHooks{}
	observability.SetSessionHooks(hooks)

	ctx := context.Background()
	s := Instrument(NewMemoryStore(), "memory")
	sess := New(board(t), time.Hour)
	_, _ = s.Get(ctx, sess.ID)
	_ = s.Set(ctx, sess)
	_, _ = s.Get(ctx, sess.ID)

	want := []string{"memory:miss", "memory:save", "memory:hit"}
	if diff := cmp.Diff(want, hooks.events); diff != "" {
		t.Errorf("hook events (-want +got):\n%s", diff)
	}
}

func TestLocksSerialize(t *testing.T) {
	l := NewLocks()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := l.Lock("board")
			mu.Lock()
			active++
			maxSeen = max(maxSeen, active)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	if maxSeen != 1 {
		t.Errorf("%d holders at once, want 1", maxSeen)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after all unlocks, want 0", l.Len())
	}

	a := l.Lock("a")
	b := l.Lock("b")
	a()
	b()
}
