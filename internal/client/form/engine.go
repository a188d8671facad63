package form

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/hitenSisghSoft/soundbox/internal/client/api"
	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

// Mode selects between the create and update endpoints.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

var (
	// ErrInvalid is returned when validation fails; per-field messages are
	// on FieldErrors. No network call was made.
	ErrInvalid = errors.New("form: validation failed")
	// ErrSubmitInFlight is returned when a submit is already pending.
	ErrSubmitInFlight = errors.New("form: submit already in flight")
)

// Endpoint is one HTTP target.
type Endpoint struct {
	Method string
	Path   string
}

// Endpoints binds a form to its entity's create and update targets. Update
// receives the record id being edited.
type Endpoints struct {
	Create Endpoint
	Update func(id string) Endpoint
}

// Submitter is the slice of the API client the engine needs.
type Submitter interface {
	Do(ctx context.Context, req api.Request) (*api.Payload, error)
}

// Config assembles one entity form.
type Config struct {
	Schema    Schema
	Mode      Mode
	Record    Values // existing record hydrating edit-mode defaults
	RecordID  string // required in edit mode
	Endpoints Endpoints
	Client    Submitter
	Notifier  toast.Notifier
	Navigate  func(route string) // post-success navigation target
	ListRoute string
	OnSuccess func() // nested mode: bump the parent's refresh counter and close the panel

	// SuccessMessage and FailureMessage are the fixed fallbacks used when
	// the server response carries no message.
	SuccessMessage string
	FailureMessage string
}

// Engine drives one form instance through validate/submit/report.
type Engine struct {
	cfg      Config
	defaults Values

	mu          sync.Mutex
	values      Values
	fieldErrors Errors

	submitting atomic.Bool
}

// New builds an engine with defaults hydrated from cfg.Record when present.
func New(cfg Config) *Engine {
	if cfg.Notifier == nil {
		cfg.Notifier = toast.Discard
	}
	defaults := cfg.Schema.Defaults(cfg.Record)

	values := make(Values, len(defaults))
	for k, v := range defaults {
		values[k] = v
	}
	return &Engine{
		cfg:      cfg,
		defaults: defaults,
		values:   values,
	}
}

// Set records a field value and clears its stale validation message.
func (e *Engine) Set(field, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.values[field] = value
	delete(e.fieldErrors, field)
}

// Values returns a copy of the current field values.
func (e *Engine) Values() Values {
	e.mu.Lock()
	defer e.mu.Unlock()
	values := make(Values, len(e.values))
	for k, v := range e.values {
		values[k] = v
	}
	return values
}

// FieldErrors returns the messages from the last failed validation.
func (e *Engine) FieldErrors() Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	errs := make(Errors, len(e.fieldErrors))
	for k, v := range e.fieldErrors {
		errs[k] = v
	}
	return errs
}

// Submitting reports whether a submit is in flight.
func (e *Engine) Submitting() bool {
	return e.submitting.Load()
}

// Reset restores the form to its hydrated defaults.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range e.defaults {
		e.values[k] = v
	}
	e.fieldErrors = nil
}

// Submit validates and dispatches exactly one create or update call.
//
// Validation failure annotates fields and returns ErrInvalid without touching
// the network. While a submit is pending further submits return
// ErrSubmitInFlight. On success the engine toasts the server message (or the
// configured fallback), resets to defaults in add mode, and either invokes
// OnSuccess (nested panel) or navigates to the list route. On failure it
// toasts the error, keeps the entered values, and releases the latch so the
// user can retry.
func (e *Engine) Submit(ctx context.Context) error {
	values := e.Values()

	if errs := e.cfg.Schema.Validate(values); len(errs) > 0 {
		e.mu.Lock()
		e.fieldErrors = errs
		e.mu.Unlock()
		return ErrInvalid
	}

	if !e.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer e.submitting.Store(false)

	endpoint := e.cfg.Endpoints.Create
	if e.cfg.Mode == ModeEdit {
		endpoint = e.cfg.Endpoints.Update(e.cfg.RecordID)
	}
	if endpoint.Method == "" {
		endpoint.Method = http.MethodPost
	}

	payload, err := e.cfg.Client.Do(ctx, api.Request{
		Method: endpoint.Method,
		Path:   endpoint.Path,
		Body:   values,
	})
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			return err
		}
		message := e.cfg.FailureMessage
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			message = apiErr.Message
		}
		e.cfg.Notifier.Notify(message, toast.Error)
		return err
	}

	message := payload.Message
	if message == "" {
		message = e.cfg.SuccessMessage
	}
	e.cfg.Notifier.Notify(message, toast.Success)

	if e.cfg.Mode == ModeAdd {
		e.Reset()
	}
	if e.cfg.OnSuccess != nil {
		e.cfg.OnSuccess()
	} else if e.cfg.Navigate != nil {
		e.cfg.Navigate(e.cfg.ListRoute)
	}
	return nil
}
