package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
		known    bool
	}{
		{name: "admin", input: "admin", expected: Admin, known: true},
		{name: "agent", input: "agent", expected: Agent, known: true},
		{name: "operations", input: "operations", expected: Operations, known: true},
		{name: "support", input: "support", expected: Support, known: true},
		{name: "merchant", input: "merchant", expected: Merchant, known: true},
		{name: "mixed case", input: "Admin", expected: Admin, known: true},
		{name: "surrounding whitespace", input: "  agent \n", expected: Agent, known: true},
		{name: "unknown falls back to default", input: "superuser", expected: Default, known: false},
		{name: "empty falls back to default", input: "", expected: Default, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := Parse(tt.input)
			assert.Equal(t, tt.expected, r)
			assert.Equal(t, tt.known, ok)
		})
	}
}

func TestRoutePrefix(t *testing.T) {
	assert.Equal(t, "/admin", RoutePrefix(Admin))
	assert.Equal(t, "/agent", RoutePrefix(Agent))
	assert.Equal(t, "/operations", RoutePrefix(Operations))
	assert.Equal(t, "/support", RoutePrefix(Support))
	assert.Equal(t, "/merchant", RoutePrefix(Merchant))
	assert.Equal(t, "/admin", RoutePrefix(Role("nobody")))
}

func TestMenuFor(t *testing.T) {
	t.Run("every role has a menu", func(t *testing.T) {
		for _, r := range []Role{Admin, Agent, Operations, Support, Merchant} {
			assert.NotEmpty(t, MenuFor(r), "menu for %s", r)
		}
	})

	t.Run("unknown role gets the admin menu", func(t *testing.T) {
		assert.Equal(t, MenuFor(Admin), MenuFor(Role("nobody")))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		menu := MenuFor(Agent)
		menu[0] = NavEntry{Name: "tampered"}
		assert.NotEqual(t, "tampered", MenuFor(Agent)[0].Name)
	})

	t.Run("agent menu links the merchant page", func(t *testing.T) {
		var paths []string
		for _, entry := range MenuFor(Agent) {
			paths = append(paths, entry.Path)
		}
		assert.Contains(t, paths, "/agent/merchant")
	})
}
