// Package session holds the authenticated user's client-side state: the
// bearer token, the user record, the active role, and the persisted filter
// slice. The token is present iff the user is authenticated.
package session

import (
	"sync"

	"github.com/hitenSisghSoft/soundbox/internal/role"
)

// User is the signed-in identity as reported by the login endpoint.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the process-wide auth state. All mutation funnels through it;
// the mutex covers callers outside the UI goroutine (the HTTP layer reads the
// token from request context).
type Session struct {
	mu     sync.Mutex
	token  string
	user   *User
	role   role.Role
	filter map[string]string
	store  Store
	subs   []func(role.Role)
}

// New loads persisted state from store and returns a session. The role
// defaults to role.Default when nothing is persisted.
func New(store Store) (*Session, error) {
	state, err := store.Load()
	if err != nil {
		return nil, err
	}

	r := role.Default
	if state.Role != "" {
		r, _ = role.Parse(state.Role)
	}

	filter := state.Filter
	if filter == nil {
		filter = make(map[string]string)
	}

	return &Session{
		token:  state.Token,
		role:   r,
		filter: filter,
		store:  store,
	}, nil
}

func (s *Session) persistLocked() error {
	return s.store.Save(&State{
		Token:  s.token,
		Role:   s.role.String(),
		Filter: s.filter,
	})
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores and persists the bearer token.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.persistLocked()
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// User returns the current user, nil when unknown.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetUser records the signed-in user. A non-nil user also adopts and persists
// the user's role. SetUser(nil) clears only the user: role teardown belongs
// to Clear, not here.
func (s *Session) SetUser(u *User) error {
	s.mu.Lock()
	s.user = u
	var changed bool
	if u != nil {
		r, _ := role.Parse(u.Role)
		changed = r != s.role
		s.role = r
		if err := s.persistLocked(); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	subs, r := s.subs, s.role
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(r)
		}
	}
	return nil
}

// CurrentRole returns the active role.
func (s *Session) CurrentRole() role.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// SetRole stores and persists the active role, then notifies subscribers
// synchronously.
func (s *Session) SetRole(r role.Role) error {
	s.mu.Lock()
	s.role = r
	if err := s.persistLocked(); err != nil {
		s.mu.Unlock()
		return err
	}
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(r)
	}
	return nil
}

// MenuItems returns the navigation entries for the active role.
func (s *Session) MenuItems() []role.NavEntry {
	return role.MenuFor(s.CurrentRole())
}

// Subscribe registers fn to run synchronously whenever the role changes.
func (s *Session) Subscribe(fn func(role.Role)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Filter returns a persisted filter value.
func (s *Session) Filter(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter[key]
}

// SetFilter stores and persists a filter value.
func (s *Session) SetFilter(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter[key] = value
	return s.persistLocked()
}

// Clear wipes token, user, and role together. This is the 401/logout path;
// the next session starts from the default role.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.role = role.Default
	err := s.persistLocked()
	subs, r := s.subs, s.role
	s.mu.Unlock()

	for _, fn := range subs {
		fn(r)
	}
	return err
}
