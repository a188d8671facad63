package form

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

// stubSubmitter records calls and replays a scripted response.
type stubSubmitter struct {
	mu      sync.Mutex
	calls   []api.Request
	payload *api.Payload
	err     error

	// block, when non-nil, holds the submit open until closed.
	block chan struct{}
}

func (s *stubSubmitter) Do(_ context.Context, req api.Request) (*api.Payload, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	block := s.block
	s.mu.Unlock()
	if block != nil {
		<-block
	}
	return s.payload, s.err
}

func (s *stubSubmitter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// recordingNotifier captures toasts in order.
type recordingNotifier struct {
	mu     sync.Mutex
	toasts []string
	kinds  []toast.Kind
}

func (n *recordingNotifier) Notify(message string, kind toast.Kind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, message)
	n.kinds = append(n.kinds, kind)
}

func testSchema() Schema {
	return Schema{Fields: []FieldSpec{
		{Name: "name", Label: "Name", Rule: Text},
		{Name: "email", Label: "Email", Rule: Email},
		{Name: "mobile", Label: "Mobile number", Rule: Digits, Length: 10},
	}}
}

func testEndpoints() Endpoints {
	return Endpoints{
		Create: Endpoint{Method: http.MethodPost, Path: "/things/add"},
		Update: func(id string) Endpoint {
			return Endpoint{Method: http.MethodPut, Path: "/things/update/" + id}
		},
	}
}

func TestSubmitEmptyFormAnnotatesEveryFieldWithoutNetwork(t *testing.T) {
	client := &stubSubmitter{}
	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    client,
	})

	err := eng.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Zero(t, client.callCount())

	errs := eng.FieldErrors()
	assert.Equal(t, "Name is required *", errs["name"])
	assert.Equal(t, "Email is required *", errs["email"])
	assert.Equal(t, "Mobile number is required *", errs["mobile"])
}

func TestSubmitMobileLength(t *testing.T) {
	tests := []struct {
		name    string
		mobile  string
		message string
	}{
		{name: "nine digits", mobile: "987654321", message: "Mobile number must be exactly 10 digits"},
		{name: "eleven digits", mobile: "98765432101", message: "Mobile number must be exactly 10 digits"},
		{name: "letters", mobile: "98765abcde", message: "Mobile number must be exactly 10 digits"},
		{name: "ten digits", mobile: "9876543210", message: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubSubmitter{payload: &api.Payload{Status: 200}}
			eng := New(Config{
				Schema:    testSchema(),
				Mode:      ModeAdd,
				Endpoints: testEndpoints(),
				Client:    client,
			})
			eng.Set("name", "Asha")
			eng.Set("email", "asha@example.com")
			eng.Set("mobile", tt.mobile)

			err := eng.Submit(context.Background())
			if tt.message == "" {
				assert.NoError(t, err)
				assert.Equal(t, 1, client.callCount())
			} else {
				assert.ErrorIs(t, err, ErrInvalid)
				assert.Equal(t, tt.message, eng.FieldErrors()["mobile"])
				assert.Zero(t, client.callCount())
			}
		})
	}
}

func TestSetClearsStaleFieldError(t *testing.T) {
	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    &stubSubmitter{},
	})

	require.ErrorIs(t, eng.Submit(context.Background()), ErrInvalid)
	require.NotEmpty(t, eng.FieldErrors()["email"])

	eng.Set("email", "asha@example.com")
	assert.Empty(t, eng.FieldErrors()["email"])
}

func TestSubmitSuccessAddMode(t *testing.T) {
	client := &stubSubmitter{payload: &api.Payload{
		Status:  201,
		Message: "Thing added successfully",
		Data:    json.RawMessage(`{"id":"t-1"}`),
	}}
	notifier := &recordingNotifier{}
	var navigated []string

	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    client,
		Notifier:  notifier,
		Navigate:  func(route string) { navigated = append(navigated, route) },
		ListRoute: "/things",
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	require.NoError(t, eng.Submit(context.Background()))

	// Server message wins, the form resets, and we land on the list.
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, "Thing added successfully", notifier.toasts[0])
	assert.Equal(t, toast.Success, notifier.kinds[0])
	assert.Empty(t, eng.Values()["name"])
	assert.Equal(t, []string{"/things"}, navigated)

	require.Equal(t, 1, client.callCount())
	assert.Equal(t, http.MethodPost, client.calls[0].Method)
	assert.Equal(t, "/things/add", client.calls[0].Path)
}

func TestSubmitSuccessEditModeHitsUpdateEndpoint(t *testing.T) {
	client := &stubSubmitter{payload: &api.Payload{Status: 200, Message: "Thing updated successfully"}}
	eng := New(Config{
		Schema:   testSchema(),
		Mode:     ModeEdit,
		RecordID: "t-9",
		Record: Values{
			"name":   "Asha",
			"email":  "asha@example.com",
			"mobile": "9876543210",
		},
		Endpoints: testEndpoints(),
		Client:    client,
	})

	require.NoError(t, eng.Submit(context.Background()))
	require.Equal(t, 1, client.callCount())
	assert.Equal(t, http.MethodPut, client.calls[0].Method)
	assert.Equal(t, "/things/update/t-9", client.calls[0].Path)

	// Edit mode keeps the values after success.
	assert.Equal(t, "Asha", eng.Values()["name"])
}

func TestSubmitFailureKeepsValuesAndAllowsRetry(t *testing.T) {
	client := &stubSubmitter{err: &api.Error{Status: 409, Message: "Email already exists"}}
	notifier := &recordingNotifier{}
	var navigated int

	eng := New(Config{
		Schema:         testSchema(),
		Mode:           ModeAdd,
		Endpoints:      testEndpoints(),
		Client:         client,
		Notifier:       notifier,
		Navigate:       func(string) { navigated++ },
		ListRoute:      "/things",
		FailureMessage: "Unable to save",
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	err := eng.Submit(context.Background())
	require.Error(t, err)

	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, "Email already exists", notifier.toasts[0])
	assert.Equal(t, toast.Error, notifier.kinds[0])
	assert.Zero(t, navigated)
	assert.Equal(t, "Asha", eng.Values()["name"])

	// The latch released; a retry reaches the network again.
	_ = eng.Submit(context.Background())
	assert.Equal(t, 2, client.callCount())
}

func TestSubmitFailureWithoutServerMessageUsesFallback(t *testing.T) {
	client := &stubSubmitter{err: &api.Error{Status: 500}}
	notifier := &recordingNotifier{}

	eng := New(Config{
		Schema:         testSchema(),
		Mode:           ModeAdd,
		Endpoints:      testEndpoints(),
		Client:         client,
		Notifier:       notifier,
		FailureMessage: "Unable to save",
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	require.Error(t, eng.Submit(context.Background()))
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, "Unable to save", notifier.toasts[0])
}

func TestSubmitSessionExpiredIsSilent(t *testing.T) {
	client := &stubSubmitter{err: api.ErrSessionExpired}
	notifier := &recordingNotifier{}

	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    client,
		Notifier:  notifier,
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	err := eng.Submit(context.Background())
	assert.ErrorIs(t, err, api.ErrSessionExpired)
	assert.Empty(t, notifier.toasts)
}

func TestSubmitInFlightLatch(t *testing.T) {
	client := &stubSubmitter{
		payload: &api.Payload{Status: 200, Message: "ok"},
		block:   make(chan struct{}),
	}
	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    client,
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	done := make(chan error, 1)
	go func() { done <- eng.Submit(context.Background()) }()

	// Wait for the first submit to take the latch.
	for !eng.Submitting() {
		runtime.Gosched()
	}

	err := eng.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(client.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, client.callCount())
}

func TestOnSuccessSuppressesNavigation(t *testing.T) {
	client := &stubSubmitter{payload: &api.Payload{Status: 200, Message: "ok"}}
	var onSuccess, navigated int

	eng := New(Config{
		Schema:    testSchema(),
		Mode:      ModeAdd,
		Endpoints: testEndpoints(),
		Client:    client,
		OnSuccess: func() { onSuccess++ },
		Navigate:  func(string) { navigated++ },
		ListRoute: "/things",
	})
	eng.Set("name", "Asha")
	eng.Set("email", "asha@example.com")
	eng.Set("mobile", "9876543210")

	require.NoError(t, eng.Submit(context.Background()))
	assert.Equal(t, 1, onSuccess)
	assert.Zero(t, navigated)
}
