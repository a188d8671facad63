package role

// SubItem is a nested navigation link under a NavEntry.
type SubItem struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Pro  bool   `json:"pro,omitempty"`
	New  bool   `json:"new,omitempty"`
}

// NavEntry is one navigation menu item. Icon is a symbolic reference resolved
// by the consuming UI, not an asset.
type NavEntry struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Path     string    `json:"path,omitempty"`
	SubItems []SubItem `json:"subItems,omitempty"`
}

// Icon references understood by the dashboard shell.
const (
	IconGrid       = "grid"
	IconUserCircle = "user-circle"
	IconBoxCube    = "box-cube"
)

// menuTable is the static per-role navigation configuration. Entries are
// ordered as rendered and never mutated at runtime.
var menuTable = map[Role][]NavEntry{
	Admin: {
		{Icon: IconGrid, Name: "Dashboard", SubItems: []SubItem{{Name: "Ecommerce", Path: "/"}}},
		{Icon: IconUserCircle, Name: "User Profile", Path: "/profile"},
		{Icon: IconBoxCube, Name: "Employees", Path: "/employee"},
	},
	Agent: {
		{Icon: IconGrid, Name: "Dashboard", SubItems: []SubItem{{Name: "Overview", Path: "/agent"}}},
		{Icon: IconUserCircle, Name: "Profile", Path: "/agent/profile"},
		{Icon: IconBoxCube, Name: "Merchant", Path: "/agent/merchant"},
	},
	Operations: {
		{Icon: IconGrid, Name: "Dashboard", SubItems: []SubItem{{Name: "Overview", Path: "/operations"}}},
	},
	Support: {
		{Icon: IconGrid, Name: "Dashboard", SubItems: []SubItem{{Name: "Overview", Path: "/support"}}},
	},
	Merchant: {
		{Icon: IconGrid, Name: "Dashboard", SubItems: []SubItem{{Name: "Overview", Path: "/merchant"}}},
	},
}

// MenuFor returns the ordered navigation entries for a role. Unknown roles
// fall back to the admin menu. The returned slice is a copy; callers may not
// reach the shared table.
func MenuFor(r Role) []NavEntry {
	entries, ok := menuTable[r]
	if !ok {
		entries = menuTable[Admin]
	}
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}
