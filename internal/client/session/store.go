package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// State is the durable subset of a session. Only these fields survive a
// restart; everything else resets.
type State struct {
	Token  string            `json:"token,omitempty"`
	Role   string            `json:"role,omitempty"`
	Filter map[string]string `json:"filter,omitempty"`
}

// Store persists session state.
type Store interface {
	Load() (*State, error)
	Save(*State) error
}

// FileStore keeps state in a JSON file, created with owner-only permissions
// since it holds the bearer token.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads persisted state. A missing file is an empty state, not an error.
func (s *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &State{}, nil
		}
		return nil, err
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt state file behaves like a signed-out session.
		return &State{}, nil
	}
	return &state, nil
}

// Save writes state atomically via a temp file rename.
func (s *FileStore) Save(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	state State
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the held state.
func (s *MemoryStore) Load() (*State, error) {
	state := s.state
	return &state, nil
}

// Save replaces the held state.
func (s *MemoryStore) Save(state *State) error {
	s.state = *state
	return nil
}
