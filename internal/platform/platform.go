// Package platform defines the boundary between the read-only accessibility
// facade and the OS accessibility service. Everything above these interfaces
// is pure Go; the darwin subpackage supplies the real implementation.
package platform

import (
	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
)

// Inspector reads applications, windows, and element trees from the OS
// accessibility layer. Calls are synchronous and may block on the target
// process; callers impose their own timeouts.
type Inspector interface {
	// ListApplications enumerates running accessible applications.
	// Fails with ax.ErrPermissionDenied when the process is not trusted.
	ListApplications() ([]ax.Application, error)

	// ApplicationForPID returns the application with the given PID, or
	// nil (with a nil error) when no such process exists.
	ApplicationForPID(pid int) (*ax.Application, error)

	// ListWindows returns windows, optionally filtered. The sequence is
	// finite and each call restarts the enumeration.
	ListWindows(opts ListOptions) ([]ax.Window, error)

	// ReadTree returns the element tree for the specified target. With
	// opts.ElementID set, only that element's subtree is returned, which
	// is how child traversal is expressed.
	ReadTree(opts TreeOptions) ([]ax.Element, error)

	// ElementAt hit-tests the accessibility tree at a screen point.
	// Returns nil (with a nil error) when nothing accessible is there.
	ElementAt(p geom.Point) (*ax.Element, error)
}

// Actor delegates accessibility actions to elements. It never simulates
// input events.
type Actor interface {
	// Perform executes one accessibility action on the element identified
	// by its traversal ID within the given read scope. Fails with
	// ax.ErrActionUnsupported when the element lacks the action.
	Perform(opts ActionOptions) error
}

// Screens reports display geometry for coordinate conversions.
type Screens interface {
	Displays() ([]geom.Display, error)
}
