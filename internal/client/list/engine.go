// Package list implements the fetch/render/row-action engine behind every
// entity table: generation-guarded fetching, the single-open accordion, and
// the confirm-then-delete flow.
package list

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

// ErrNoPendingDelete is returned when ConfirmDelete runs without a
// RequestDelete first.
var ErrNoPendingDelete = errors.New("list: no delete pending")

// Fetcher retrieves the collection.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Deleter removes one record by id.
type Deleter func(ctx context.Context, id string) error

// Config assembles one entity list.
type Config[T any] struct {
	Fetch    Fetcher[T]
	Delete   Deleter
	Notifier toast.Notifier

	// FailureMessage is the toast fallback when a fetch fails without a
	// server message.
	FailureMessage string
}

// Engine holds one table's collection and interaction state.
type Engine[T any] struct {
	cfg Config[T]

	mu      sync.Mutex
	items   []T
	loaded  bool
	loading bool

	// generation increments per fetch; a response from a superseded fetch
	// is discarded so a stale reply cannot overwrite newer state.
	generation atomic.Uint64
	refreshes  atomic.Uint64

	openIndex     int
	pendingDelete string
	modalOpen     bool
}

// New builds a list engine. The accordion starts fully closed.
func New[T any](cfg Config[T]) *Engine[T] {
	if cfg.Notifier == nil {
		cfg.Notifier = toast.Discard
	}
	return &Engine[T]{cfg: cfg, openIndex: -1}
}

// Load fetches the collection. A failed fetch toasts the error and leaves the
// collection unset; a stale response (superseded by a newer Load) is dropped
// silently.
func (e *Engine[T]) Load(ctx context.Context) error {
	gen := e.generation.Add(1)

	e.mu.Lock()
	e.loading = true
	e.mu.Unlock()

	items, err := e.cfg.Fetch(ctx)

	if e.generation.Load() != gen {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false

	if err != nil {
		e.items = nil
		e.loaded = false
		if !errors.Is(err, api.ErrSessionExpired) {
			e.cfg.Notifier.Notify(failureMessage(err, e.cfg.FailureMessage), toast.Error)
		}
		return err
	}

	e.items = items
	e.loaded = true
	return nil
}

// Refresh bumps the refresh counter and reloads. Nested edit panels call this
// through their OnSuccess hook.
func (e *Engine[T]) Refresh(ctx context.Context) error {
	e.refreshes.Add(1)
	return e.Load(ctx)
}

// Refreshes returns how many explicit refreshes have run.
func (e *Engine[T]) Refreshes() uint64 {
	return e.refreshes.Load()
}

// Items returns the held collection.
func (e *Engine[T]) Items() []T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.items
}

// Loading reports whether a fetch is in flight.
func (e *Engine[T]) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Empty reports the explicit no-data state: a completed fetch that returned
// nothing. An unloaded or failed list is not Empty.
func (e *Engine[T]) Empty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded && len(e.items) == 0
}

// Toggle opens row i, closing any other open row; toggling the open row
// closes it. Returns the resulting open index, -1 when closed.
func (e *Engine[T]) Toggle(i int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.openIndex == i {
		e.openIndex = -1
	} else {
		e.openIndex = i
	}
	return e.openIndex
}

// OpenIndex returns the open accordion row, -1 when all closed.
func (e *Engine[T]) OpenIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.openIndex
}

// CloseRow closes the accordion.
func (e *Engine[T]) CloseRow() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.openIndex = -1
}

// RequestDelete opens the confirmation modal for record id.
func (e *Engine[T]) RequestDelete(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDelete = id
	e.modalOpen = true
}

// PendingDelete returns the record awaiting confirmation and whether the
// modal is open.
func (e *Engine[T]) PendingDelete() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingDelete, e.modalOpen
}

// CancelDelete closes the modal without deleting.
func (e *Engine[T]) CancelDelete() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pendingDelete = ""
	e.modalOpen = false
}

// ConfirmDelete deletes the pending record, re-fetches the collection, and
// closes the modal. A failed delete toasts and keeps the modal open so the
// user can retry or cancel.
func (e *Engine[T]) ConfirmDelete(ctx context.Context) error {
	e.mu.Lock()
	id, open := e.pendingDelete, e.modalOpen
	e.mu.Unlock()
	if !open || id == "" {
		return ErrNoPendingDelete
	}

	if err := e.cfg.Delete(ctx, id); err != nil {
		if !errors.Is(err, api.ErrSessionExpired) {
			e.cfg.Notifier.Notify(failureMessage(err, e.cfg.FailureMessage), toast.Error)
		}
		return err
	}

	err := e.Refresh(ctx)

	e.mu.Lock()
	e.pendingDelete = ""
	e.modalOpen = false
	e.mu.Unlock()
	return err
}

func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if fallback != "" {
		return fallback
	}
	return api.FallbackMessage
}
