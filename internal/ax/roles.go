package ax

import "strings"

// RoleMap maps macOS AXRole values to compact role codes.
var RoleMap = map[string]string{
	"AXButton":      "btn",
	"AXStaticText":  "txt",
	"AXLink":        "lnk",
	"AXImage":       "img",
	"AXTextField":   "input",
	"AXTextArea":    "input",
	"AXCheckBox":    "chk",
	"AXSwitch":      "toggle",
	"AXRadioButton": "radio",
	"AXMenu":        "menu",
	"AXMenuBar":     "menu",
	"AXMenuItem":    "menuitem",
	"AXTabGroup":    "tab",
	"AXList":        "list",
	"AXTable":       "list",
	"AXRow":         "row",
	"AXCell":        "cell",
	"AXGroup":       "group",
	"AXSplitGroup":  "group",
	"AXScrollArea":  "scroll",
	"AXToolbar":     "toolbar",
	"AXWebArea":     "web",
	"AXWindow":      "window",
}

// MapRole converts a raw accessibility role to a compact code.
func MapRole(axRole string) string {
	if short, ok := RoleMap[axRole]; ok {
		return short
	}
	return "other"
}

// Short names for the accessibility actions an element can advertise.
const (
	ActionPress     = "press"
	ActionCancel    = "cancel"
	ActionPick      = "pick"
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
	ActionConfirm   = "confirm"
	ActionShowMenu  = "showmenu"
	ActionRaise     = "raise"
)

// actionMap maps AX action names to short names.
var actionMap = map[string]string{
	"AXPress":     ActionPress,
	"AXCancel":    ActionCancel,
	"AXPick":      ActionPick,
	"AXIncrement": ActionIncrement,
	"AXDecrement": ActionDecrement,
	"AXConfirm":   ActionConfirm,
	"AXShowMenu":  ActionShowMenu,
	"AXRaise":     ActionRaise,
}

// MapAction converts a raw AX action name to its short form.
func MapAction(axAction string) string {
	if short, ok := actionMap[axAction]; ok {
		return short
	}
	return strings.ToLower(strings.TrimPrefix(axAction, "AX"))
}

// ActionName converts a short action name back to the AX form the platform
// expects. Unknown names pass through unchanged.
func ActionName(short string) string {
	switch strings.ToLower(short) {
	case ActionPress:
		return "AXPress"
	case ActionCancel:
		return "AXCancel"
	case ActionPick:
		return "AXPick"
	case ActionIncrement:
		return "AXIncrement"
	case ActionDecrement:
		return "AXDecrement"
	case ActionConfirm:
		return "AXConfirm"
	case ActionShowMenu:
		return "AXShowMenu"
	case ActionRaise:
		return "AXRaise"
	default:
		return short
	}
}
