package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/polygrid/pkg/cache"
	"github.com/matzehuels/polygrid/pkg/errors"
	"github.com/matzehuels/polygrid/pkg/grid"
	"github.com/matzehuels/polygrid/pkg/placement"
	"github.com/matzehuels/polygrid/pkg/render"
	"github.com/matzehuels/polygrid/pkg/session"
	"github.com/matzehuels/polygrid/pkg/shape"
	"github.com/matzehuels/polygrid/pkg/snapshot"
	"github.com/matzehuels/polygrid/pkg/task"
)

// =============================================================================
// Responses
// =============================================================================

type boardResponse struct {
	ID          string          `json:"id"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Accepted    *bool           `json:"accepted,omitempty"`
	FigureCount int             `json:"figure_count"`
	LooseCells  []snapshot.Cell `json:"loose_cells"`
	Offsets     shape.Shape     `json:"offsets"`
	Board       snapshot.Record `json:"board"`
}

type taskResponse struct {
	Code        string `json:"code"`
	Supported   bool   `json:"supported"`
	Discipline  string `json:"discipline"`
	Adjacency   string `json:"adjacency"`
	Zone        string `json:"zone"`
	Validity    string `json:"validity"`
	Shape       string `json:"shape"`
	Description string `json:"description"`
}

func newBoardResponse(sess *session.Session, e *placement.Engine) boardResponse {
	loose := e.LooseCells().Cells()
	resp := boardResponse{
		ID:          sess.ID,
		ExpiresAt:   sess.ExpiresAt,
		FigureCount: e.FigureCount(),
		LooseCells:  make([]snapshot.Cell, len(loose)),
		Offsets:     e.Offsets(),
		Board:       sess.Board,
	}
	for i, c := range loose {
		resp.LooseCells[i] = snapshot.Cell{Row: c.Row, Col: c.Col, Type: int(c.Type)}
	}
	return resp
}

// =============================================================================
// Requests
// =============================================================================

type createRequest struct {
	GridSize *int              `json:"gridSize,omitempty"`
	Task     string            `json:"task,omitempty"`
	Params   *placement.Params `json:"params,omitempty"`
}

type gridRequest struct {
	Size int `json:"size"`
}

type taskRequest struct {
	Code string `json:"code"`
}

type typeRequest struct {
	Delta int `json:"delta"`
}

type toggleRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	modes := task.Modes()
	out := make([]taskResponse, len(modes))
	for i, m := range modes {
		out[i] = taskResponse{
			Code:        m.Code,
			Supported:   m.Supported(),
			Discipline:  m.Discipline.String(),
			Adjacency:   m.Adjacency.String(),
			Zone:        m.Zone.String(),
			Validity:    m.Validity.String(),
			Shape:       m.Shape.String(),
			Description: m.Describe(),
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}
	opts := append([]placement.Option{}, s.engineOpts...)
	if req.GridSize != nil {
		opts = append(opts, placement.WithGridSize(*req.GridSize))
	}
	if req.Task != "" {
		opts = append(opts, placement.WithTask(req.Task))
	}
	if req.Params != nil {
		opts = append(opts, placement.WithParams(*req.Params))
	}
	e, err := placement.New(opts...)
	if err != nil {
		writeError(w, err)
		return
	}

	sess := session.New(snapshot.Capture(e), s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	s.logger.Debug("session created", "id", sess.ID, "task", e.Task().Code, "size", e.GridSize())
	writeJSON(w, http.StatusCreated, newBoardResponse(sess, e))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, e, err := s.load(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newBoardResponse(sess, e))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.store.Delete(r.Context(), id); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "delete session"))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	var req gridRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		return nil, e.SetGridSize(req.Size)
	})
}

func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		return nil, e.SetTask(req.Code)
	})
}

func (s *Server) handleParams(w http.ResponseWriter, r *http.Request) {
	var req placement.Params
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		return nil, e.SetParameters(req)
	})
}

func (s *Server) handleRotate(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		e.Rotate()
		return nil, nil
	})
}

func (s *Server) handleMirror(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		e.Mirror()
		return nil, nil
	})
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	req := typeRequest{Delta: 1}
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		e.ChangeType(req.Delta)
		return nil, nil
	})
}

func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		ok := e.TryToggleAt(grid.Coord{Row: req.Row, Col: req.Col})
		return &ok, nil
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, _, err := s.load(r)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := snapshot.Encode(sess.Board)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body"))
		return
	}
	rec, err := snapshot.Decode(data)
	if err != nil {
		writeError(w, err)
		return
	}
	s.mutate(w, r, func(e *placement.Engine) (*bool, error) {
		return nil, snapshot.Apply(e, rec)
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "svg"
	}
	opts := render.Options{
		ShowZone:  q.Get("zone") == "1" || q.Get("zone") == "true",
		HideLoose: q.Get("loose") == "0" || q.Get("loose") == "false",
		Grid:      q.Get("grid") == "1" || q.Get("grid") == "true",
	}

	_, e, err := s.load(r)
	if err != nil {
		writeError(w, err)
		return
	}
	board := snapshot.Capture(e)
	key := s.keyer.RenderKey(snapshot.Digest(board), cache.RenderKeyOpts{
		Format:    format,
		ShowZone:  opts.ShowZone,
		HideLoose: opts.HideLoose,
		Grid:      opts.Grid,
	})
	data, err := cache.GetOrCompute(r.Context(), s.cache, "render", key, defaultRenderTTL, func() ([]byte, error) {
		return render.Convert(r.Context(), render.ToDOT(render.FromEngine(e), opts), format)
	})
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	_, _ = w.Write(data)
}

func contentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}

// =============================================================================
// Session plumbing
// =============================================================================

// load fetches the session named in the URL and rebuilds its engine.
func (s *Server) load(r *http.Request) (*session.Session, *placement.Engine, error) {
	id := chi.URLParam(r, "id")
	if !session.ValidID(id) {
		return nil, nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "load session")
	}
	if sess == nil {
		return nil, nil, errors.New(errors.ErrCodeSessionNotFound, "session %q not found", id)
	}
	e, err := placement.New(s.engineOpts...)
	if err != nil {
		return nil, nil, err
	}
	if err := snapshot.Apply(e, sess.Board); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "stored board for session %s", id)
	}
	return sess, e, nil
}

// mutate applies fn to the session's engine under its lock and stores the
// result. A failing fn leaves the stored board unchanged.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, fn func(*placement.Engine) (*bool, error)) {
	unlock := s.locks.Lock(chi.URLParam(r, "id"))
	defer unlock()

	sess, e, err := s.load(r)
	if err != nil {
		writeError(w, err)
		return
	}
	accepted, err := fn(e)
	if err != nil {
		writeError(w, err)
		return
	}
	sess.Update(snapshot.Capture(e), s.ttl)
	if err := s.store.Set(r.Context(), sess); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store session"))
		return
	}
	resp := newBoardResponse(sess, e)
	resp.Accepted = accepted
	writeJSON(w, http.StatusOK, resp)
}
