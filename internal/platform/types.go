package platform

import "github.com/mj1618/axq/internal/geom"

// TreeOptions controls what part of the accessibility tree to read.
type TreeOptions struct {
	App       string     // Target application by name
	PID       int        // Target process ID (0 = unset)
	Window    string     // Restrict to window by title substring
	WindowID  int        // Restrict to window by system ID (0 = unset)
	ElementID int        // Restrict to the subtree of this element (0 = whole tree)
	Depth     int        // Max traversal depth (0 = unlimited)
	Roles     []string   // Only include these roles (empty = all)
	Within    *geom.Rect // Only include elements intersecting this screen region
}

// ListOptions controls window listing.
type ListOptions struct {
	App string // Filter by application name
	PID int    // Filter by process ID
}

// ActionOptions identifies an element within a read scope and the action to
// delegate to it.
type ActionOptions struct {
	App      string
	PID      int
	Window   string
	WindowID int
	ID       int    // Element traversal ID from a preceding read
	Action   string // Short action name, e.g. "press"
}
