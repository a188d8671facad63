package list

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

type merchant struct {
	ID   string
	Name string
}

type recordingNotifier struct {
	mu     sync.Mutex
	toasts []string
}

func (n *recordingNotifier) Notify(message string, _ toast.Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, message)
}

func TestLoadHoldsItems(t *testing.T) {
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) {
			return []merchant{{ID: "m-1", Name: "Asha Traders"}}, nil
		},
	})

	require.NoError(t, eng.Load(context.Background()))
	assert.Len(t, eng.Items(), 1)
	assert.False(t, eng.Empty())
	assert.False(t, eng.Loading())
}

func TestEmptyOnlyAfterSuccessfulFetch(t *testing.T) {
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) { return []merchant{}, nil },
	})

	// Unloaded is not empty.
	assert.False(t, eng.Empty())

	require.NoError(t, eng.Load(context.Background()))
	assert.True(t, eng.Empty())
}

func TestLoadFailureToastsAndLeavesUnloaded(t *testing.T) {
	notifier := &recordingNotifier{}
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) {
			return nil, &api.Error{Status: 500, Message: "Something went wrong"}
		},
		Notifier:       notifier,
		FailureMessage: "Unable to load merchants",
	})

	require.Error(t, eng.Load(context.Background()))
	assert.False(t, eng.Empty())
	assert.Nil(t, eng.Items())
	assert.Equal(t, []string{"Something went wrong"}, notifier.toasts)
}

func TestLoadSessionExpiredIsSilent(t *testing.T) {
	notifier := &recordingNotifier{}
	eng := New(Config[merchant]{
		Fetch:    func(context.Context) ([]merchant, error) { return nil, api.ErrSessionExpired },
		Notifier: notifier,
	})

	err := eng.Load(context.Background())
	assert.ErrorIs(t, err, api.ErrSessionExpired)
	assert.Empty(t, notifier.toasts)
}

func TestStaleFetchIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				// First fetch finishes after the second supersedes it.
				<-release
				return []merchant{{ID: "stale"}}, nil
			}
			return []merchant{{ID: "fresh"}}, nil
		},
	})

	done := make(chan error, 1)
	go func() { done <- eng.Load(context.Background()) }()

	// Wait until the first fetch is parked before superseding it.
	for {
		mu.Lock()
		started := calls == 1
		mu.Unlock()
		if started {
			break
		}
		runtime.Gosched()
	}

	require.NoError(t, eng.Load(context.Background()))
	close(release)
	require.NoError(t, <-done)

	items := eng.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestToggleSingleOpen(t *testing.T) {
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) {
			return []merchant{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil
		},
	})
	require.NoError(t, eng.Load(context.Background()))

	assert.Equal(t, -1, eng.OpenIndex())
	assert.Equal(t, 0, eng.Toggle(0))
	assert.Equal(t, 2, eng.Toggle(2))
	assert.Equal(t, 2, eng.OpenIndex())

	// Toggling the open row closes it.
	assert.Equal(t, -1, eng.Toggle(2))
	assert.Equal(t, -1, eng.OpenIndex())
}

func TestConfirmDeleteDeletesRefetchesAndClosesModal(t *testing.T) {
	items := []merchant{{ID: "m-1"}, {ID: "m-2"}}
	var deleted []string
	var mu sync.Mutex

	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) {
			mu.Lock()
			defer mu.Unlock()
			return items, nil
		},
		Delete: func(_ context.Context, id string) error {
			mu.Lock()
			defer mu.Unlock()
			deleted = append(deleted, id)
			items = items[:1]
			return nil
		},
	})
	require.NoError(t, eng.Load(context.Background()))

	eng.RequestDelete("m-2")
	id, open := eng.PendingDelete()
	assert.Equal(t, "m-2", id)
	assert.True(t, open)

	require.NoError(t, eng.ConfirmDelete(context.Background()))

	assert.Equal(t, []string{"m-2"}, deleted)
	assert.Len(t, eng.Items(), 1)
	assert.Equal(t, uint64(1), eng.Refreshes())

	_, open = eng.PendingDelete()
	assert.False(t, open)
}

func TestConfirmDeleteWithoutRequest(t *testing.T) {
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) { return nil, nil },
	})
	err := eng.ConfirmDelete(context.Background())
	assert.ErrorIs(t, err, ErrNoPendingDelete)
}

func TestCancelDeleteClosesModalWithoutDeleting(t *testing.T) {
	var deleted int
	eng := New(Config[merchant]{
		Fetch:  func(context.Context) ([]merchant, error) { return nil, nil },
		Delete: func(context.Context, string) error { deleted++; return nil },
	})

	eng.RequestDelete("m-1")
	eng.CancelDelete()

	_, open := eng.PendingDelete()
	assert.False(t, open)
	assert.Zero(t, deleted)

	assert.ErrorIs(t, eng.ConfirmDelete(context.Background()), ErrNoPendingDelete)
	assert.Zero(t, deleted)
}

func TestFailedDeleteKeepsModalOpen(t *testing.T) {
	notifier := &recordingNotifier{}
	eng := New(Config[merchant]{
		Fetch: func(context.Context) ([]merchant, error) { return nil, nil },
		Delete: func(context.Context, string) error {
			return errors.New("boom")
		},
		Notifier:       notifier,
		FailureMessage: "Unable to delete merchant",
	})

	eng.RequestDelete("m-1")
	require.Error(t, eng.ConfirmDelete(context.Background()))

	id, open := eng.PendingDelete()
	assert.True(t, open)
	assert.Equal(t, "m-1", id)
	assert.Equal(t, []string{"Unable to delete merchant"}, notifier.toasts)
}
