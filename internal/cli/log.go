// Package cli implements the polygrid command-line interface.
//
// The CLI edits boards interactively in the terminal, checks and renders
// saved snapshots, and serves the session API. It is built using cobra and
// logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - edit: Interactive terminal editor for one board
//   - check: Validate a snapshot and summarize its figures
//   - render: Generate DOT, SVG, PDF or PNG connectivity graphs
//   - tasks: List task codes and their placement policies
//   - serve: Run the HTTP session API
//   - cache, config: Inspect local state
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and the engine, session and cache events
// reach the same logger through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/polygrid/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered board.svg (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks forwards engine, session and cache events to a logger at debug
// level. Failed session writes are warnings.
type logHooks struct {
	logger *log.Logger
}

func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetEngineHooks(h)
	observability.SetSessionHooks(h)
	observability.SetCacheHooks(h)
}

func (h logHooks) OnPlace(task string, cells int, placed bool) {
	h.logger.Debug("place", "task", task, "cells", cells, "placed", placed)
}

func (h logHooks) OnRemove(task string, removed bool) {
	h.logger.Debug("remove", "task", task, "removed", removed)
}

func (h logHooks) OnToggle(task string, added, accepted bool) {
	h.logger.Debug("toggle", "task", task, "added", added, "accepted", accepted)
}

func (h logHooks) OnRegroup(task string, components, figures int) {
	h.logger.Debug("regroup", "task", task, "components", components, "figures", figures)
}

func (h logHooks) OnReset(task string, gridSize int) {
	h.logger.Debug("reset", "task", task, "size", gridSize)
}

func (h logHooks) OnSessionLoad(_ context.Context, backend string, found bool, d time.Duration) {
	h.logger.Debug("session load", "backend", backend, "found", found, "dur", d.Round(time.Microsecond))
}

func (h logHooks) OnSessionSave(_ context.Context, backend string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("session save failed", "backend", backend, "error", err)
		return
	}
	h.logger.Debug("session save", "backend", backend, "cells", size, "dur", d.Round(time.Microsecond))
}

func (h logHooks) OnSessionDelete(_ context.Context, backend string) {
	h.logger.Debug("session delete", "backend", backend)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
