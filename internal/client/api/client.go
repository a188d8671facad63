// Package api is the single HTTP interception point for the dashboard
// client. Every outbound call flows through Client.Do, which attaches the
// bearer token, normalizes failures into one error shape, and handles 401s by
// tearing the session down exactly once.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

// FallbackMessage is shown when a failure carries no server message.
const FallbackMessage = "Something went wrong"

// ErrSessionExpired marks a request that died to a 401. The client already
// tore the session down and notified; callers treat this error as handled and
// stop their own flow without a second toast.
var ErrSessionExpired = errors.New("session expired")

// Error is the normalized failure shape for non-2xx responses and transport
// errors. Message is the server's message field or FallbackMessage.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// SessionState is the injected session capability. The client never reaches a
// global; construction wires the dependency explicitly.
type SessionState interface {
	Token() string
	Clear() error
}

// Payload is a decoded success envelope.
type Payload struct {
	Status  int
	Message string
	Data    json.RawMessage
}

// DecodeData unmarshals the envelope's data field into out. A missing data
// field leaves out untouched.
func (p *Payload) DecodeData(out interface{}) error {
	if len(p.Data) == 0 {
		return nil
	}
	return json.Unmarshal(p.Data, out)
}

// Request describes one API call. Path is base-relative.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Params  url.Values
	Headers http.Header
}

// Config wires a Client's collaborators.
type Config struct {
	BaseURL        string
	HTTPClient     *http.Client
	Session        SessionState
	Notifier       toast.Notifier
	OnUnauthorized func()
}

// Client issues API requests over resty. Safe for concurrent use.
type Client struct {
	rest           *resty.Client
	session        SessionState
	notify         toast.Notifier
	onUnauthorized func()
	tornDown       atomic.Bool
}

// New validates cfg and builds a Client. Retries stay disabled: a failed
// request surfaces immediately, nothing is replayed.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api: base URL is required")
	}
	if cfg.Session == nil {
		return nil, errors.New("api: session state is required")
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = toast.Discard
	}

	rest := resty.New()
	if cfg.HTTPClient != nil {
		rest = resty.NewWithClient(cfg.HTTPClient)
	}
	rest.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))

	c := &Client{
		rest:           rest,
		session:        cfg.Session,
		notify:         notifier,
		onUnauthorized: cfg.OnUnauthorized,
	}

	// Bearer injection happens on every outbound request; a signed-out
	// session sends no Authorization header at all.
	rest.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := c.session.Token(); token != "" {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return c, nil
}

// ResetUnauthorized re-arms the 401 teardown latch. Call after a fresh login.
func (c *Client) ResetUnauthorized() {
	c.tornDown.Store(false)
}

// envelope covers both the success and error body shapes the server emits.
type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// Do executes one request. On 2xx it returns the decoded payload. On 401 it
// clears the session, notifies, fires OnUnauthorized once per session epoch,
// and returns ErrSessionExpired. Any other failure returns *Error with the
// server's message or FallbackMessage. Nothing is retried.
func (c *Client) Do(ctx context.Context, req Request) (*Payload, error) {
	r := c.rest.R().SetContext(ctx)

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("api: marshal request body: %w", err)
		}
		r.SetHeader("Content-Type", "application/json").SetBody(data)
	}
	if len(req.Params) > 0 {
		r.SetQueryParamsFromValues(req.Params)
	}
	for key, values := range req.Headers {
		for _, v := range values {
			r.Header.Add(key, v)
		}
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, &Error{Message: FallbackMessage}
	}

	var env envelope
	_ = json.Unmarshal(resp.Body(), &env)

	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, c.handleUnauthorized(env)
	}

	if !resp.IsSuccess() {
		msg := env.message()
		if msg == "" {
			msg = FallbackMessage
		}
		return nil, &Error{Status: resp.StatusCode(), Message: msg}
	}

	return &Payload{
		Status:  resp.StatusCode(),
		Message: env.Message,
		Data:    env.Data,
	}, nil
}

// handleUnauthorized tears the session down. The CAS latch guarantees the
// teardown and redirect run once even when several in-flight requests fail
// together.
func (c *Client) handleUnauthorized(env envelope) error {
	if c.tornDown.CompareAndSwap(false, true) {
		_ = c.session.Clear()
		msg := env.message()
		if msg == "" {
			msg = FallbackMessage
		}
		c.notify.Notify(msg, toast.Error)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return ErrSessionExpired
}
