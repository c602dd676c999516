package ax

import "errors"

// ErrPermissionDenied is returned when the process lacks accessibility
// permission. Lookup misses are not errors: they return nil or empty results.
var ErrPermissionDenied = errors.New("accessibility permission denied")

// ErrActionUnsupported is returned when an element does not advertise the
// requested action.
var ErrActionUnsupported = errors.New("action not supported by element")

// PermissionHint is appended to permission errors shown to users.
const PermissionHint = "grant access at: System Settings > Privacy & Security > Accessibility\n" +
	"add your terminal app, then restart it and try again"
