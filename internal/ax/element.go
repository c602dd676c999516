// Package ax defines the read-only data model exposed by the accessibility
// facade: applications, windows, and the element tree with its capability
// variants.
package ax

import "github.com/mj1618/axq/internal/geom"

// Capability is a bitmask of the operations an element variant supports.
// Capabilities are resolved once, when the element is constructed from the
// platform layer, never by inspecting the element again later.
type Capability uint8

const (
	// CapLocatable means the element reports on-screen bounds.
	CapLocatable Capability = 1 << iota
	// CapTitled means the element carries a readable title or description.
	CapTitled
	// CapActionable means the element advertises at least one action.
	CapActionable
)

// Has reports whether all capabilities in want are present.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// Kind tags the element variant. It is derived from the platform role at
// construction time so consumers never branch on raw role strings.
type Kind string

const (
	KindGeneric Kind = "element"
	KindButton  Kind = "button"
	KindView    Kind = "view"
	KindWindow  Kind = "window"
)

// Element is one node of the accessibility tree. The tree is a snapshot:
// IDs are sequential traversal indices and are only meaningful within the
// read that produced them, while the owning application is still running.
type Element struct {
	ID          int        `yaml:"i"            json:"i"`
	Role        string     `yaml:"r"            json:"r"`
	Kind        Kind       `yaml:"k,omitempty"  json:"k,omitempty"`
	Title       string     `yaml:"t,omitempty"  json:"t,omitempty"`
	Value       string     `yaml:"v,omitempty"  json:"v,omitempty"`
	Description string     `yaml:"d,omitempty"  json:"d,omitempty"`
	Bounds      [4]int     `yaml:"b"            json:"b"`
	Focused     bool       `yaml:"f,omitempty"  json:"f,omitempty"`
	Enabled     *bool      `yaml:"e,omitempty"  json:"e,omitempty"` // nil = enabled; false = disabled
	Selected    bool       `yaml:"s,omitempty"  json:"s,omitempty"`
	Actions     []string   `yaml:"a,omitempty"  json:"a,omitempty"`
	Caps        Capability `yaml:"-"            json:"-"`
	Children    []Element  `yaml:"c,omitempty"  json:"c,omitempty"`
}

// Frame returns the element bounds as a screen rectangle.
func (el *Element) Frame() geom.Rect {
	return geom.FromBounds(el.Bounds)
}

// SupportsAction reports whether the element advertises the given action.
func (el *Element) SupportsAction(action string) bool {
	for _, a := range el.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// IsButton reports whether the element is the button variant.
func (el *Element) IsButton() bool { return el.Kind == KindButton }

// Resolve fills in Kind and Caps from the role, actions, and bounds.
// Tree builders call it on every node after the raw attributes are set.
func Resolve(el *Element) {
	el.Kind = classifyKind(el.Role, el.Actions)

	var caps Capability
	if el.Bounds[2] > 0 && el.Bounds[3] > 0 {
		caps |= CapLocatable
	}
	if el.Title != "" || el.Description != "" {
		caps |= CapTitled
	}
	if len(el.Actions) > 0 {
		caps |= CapActionable
	}
	el.Caps = caps
}

// buttonRoles are compact roles that map to the button variant.
var buttonRoles = map[string]bool{
	"btn":      true,
	"chk":      true,
	"toggle":   true,
	"radio":    true,
	"menuitem": true,
}

// viewRoles are compact roles that map to the containing view variant.
var viewRoles = map[string]bool{
	"group":   true,
	"scroll":  true,
	"list":    true,
	"tab":     true,
	"toolbar": true,
	"web":     true,
}

func classifyKind(role string, actions []string) Kind {
	switch {
	case role == "window":
		return KindWindow
	case buttonRoles[role]:
		return KindButton
	case viewRoles[role]:
		return KindView
	}
	// Anything pressable behaves as a button even if the role is unknown.
	for _, a := range actions {
		if a == ActionPress {
			return KindButton
		}
	}
	return KindGeneric
}

// WalkElements calls fn for every element in depth-first order. Returning
// false from fn stops the walk.
func WalkElements(elements []Element, fn func(*Element) bool) bool {
	for i := range elements {
		if !fn(&elements[i]) {
			return false
		}
		if !WalkElements(elements[i].Children, fn) {
			return false
		}
	}
	return true
}

// FindByID searches the tree for the element with the given traversal ID.
func FindByID(elements []Element, id int) *Element {
	var found *Element
	WalkElements(elements, func(el *Element) bool {
		if el.ID == id {
			found = el
			return false
		}
		return true
	})
	return found
}
