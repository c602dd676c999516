//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include <ApplicationServices/ApplicationServices.h>
#include <stdlib.h>
#include <string.h>

// Walks the tree in the same pre-order as the inspector so traversal IDs
// line up with a preceding read. Returns:
//   0  action performed
//   1  element ID not found
//   2  element does not support the action
//  -1  AX error
static int axq_perform_walk(AXUIElementRef el, int *counter, int target,
		CFStringRef action, int depth) {
	if (depth > 100) return 1;
	(*counter)++;
	if (*counter == target) {
		CFArrayRef names = NULL;
		int supported = 0;
		if (AXUIElementCopyActionNames(el, &names) == kAXErrorSuccess && names) {
			CFIndex n = CFArrayGetCount(names);
			for (CFIndex i = 0; i < n; i++) {
				if (CFEqual(CFArrayGetValueAtIndex(names, i), action)) {
					supported = 1;
					break;
				}
			}
			CFRelease(names);
		}
		if (!supported) return 2;
		AXError err = AXUIElementPerformAction(el, action);
		if (err == kAXErrorActionUnsupported) return 2;
		return err == kAXErrorSuccess ? 0 : -1;
	}

	int rc = 1;
	CFArrayRef children = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXChildrenAttribute, (CFTypeRef *)&children) == kAXErrorSuccess && children) {
		CFIndex n = CFArrayGetCount(children);
		for (CFIndex i = 0; i < n && rc == 1; i++) {
			AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(children, i);
			rc = axq_perform_walk(child, counter, target, action, depth + 1);
		}
		CFRelease(children);
	}
	return rc;
}

// Same weak link as the inspector; when the symbol is missing only the
// window-ID filter degrades, matching the read side.
extern AXError _AXUIElementGetWindow(AXUIElementRef element, uint32_t *identifier) __attribute__((weak_import));

// Window filter identical to the read walk: both sides must cover the same
// window set or element IDs would resolve against a different numbering.
static int axq_act_window_matches(AXUIElementRef win, const char *title, int windowID) {
	if (windowID > 0 && _AXUIElementGetWindow != NULL) {
		uint32_t wid = 0;
		if (_AXUIElementGetWindow(win, &wid) == kAXErrorSuccess && (int)wid != windowID) {
			return 0;
		}
	}
	if (title && title[0]) {
		CFTypeRef v = NULL;
		if (AXUIElementCopyAttributeValue(win, kAXTitleAttribute, &v) != kAXErrorSuccess || !v) {
			return 0;
		}
		int match = 0;
		if (CFGetTypeID(v) == CFStringGetTypeID()) {
			CFStringRef s = (CFStringRef)v;
			CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
			char *buf = malloc(len);
			if (buf && CFStringGetCString(s, buf, len, kCFStringEncodingUTF8)) {
				match = strcasestr(buf, title) != NULL;
			}
			free(buf);
		}
		CFRelease(v);
		return match;
	}
	return 1;
}

static int axq_perform_action(pid_t pid, const char *windowTitle, int windowID, int id, const char *action) {
	AXUIElementRef app = AXUIElementCreateApplication(pid);
	if (!app) return -1;

	CFStringRef cfAction = CFStringCreateWithCString(kCFAllocatorDefault, action, kCFStringEncodingUTF8);
	int counter = 0;
	int rc = 1;

	CFArrayRef windows = NULL;
	if (AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows) == kAXErrorSuccess && windows) {
		CFIndex n = CFArrayGetCount(windows);
		for (CFIndex i = 0; i < n && rc == 1; i++) {
			AXUIElementRef win = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);
			if (!axq_act_window_matches(win, windowTitle, windowID)) continue;
			rc = axq_perform_walk(win, &counter, id, cfAction, 1);
		}
		CFRelease(windows);
	}
	CFRelease(cfAction);
	CFRelease(app);
	return rc;
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/platform"
)

// Actor implements the platform.Actor interface for macOS by delegating
// accessibility actions directly to elements. No input events are simulated.
type Actor struct {
	inspector *Inspector
}

// NewActor creates a new macOS actor sharing the inspector's scope resolution.
func NewActor(inspector *Inspector) *Actor {
	return &Actor{inspector: inspector}
}

// Perform executes one accessibility action on the element identified by its
// traversal ID within the given read scope.
func (a *Actor) Perform(opts platform.ActionOptions) error {
	if opts.ID <= 0 {
		return fmt.Errorf("element ID is required")
	}
	if opts.Action == "" {
		return fmt.Errorf("action is required")
	}
	if err := CheckPermission(); err != nil {
		return err
	}

	pid, windowTitle, windowID, err := a.inspector.resolveTarget(opts.App, opts.PID, opts.Window, opts.WindowID)
	if err != nil {
		return err
	}

	cAction := C.CString(ax.ActionName(opts.Action))
	defer C.free(unsafe.Pointer(cAction))

	var cTitle *C.char
	if windowTitle != "" {
		cTitle = C.CString(windowTitle)
		defer C.free(unsafe.Pointer(cTitle))
	}

	switch C.axq_perform_action(C.pid_t(pid), cTitle, C.int(windowID), C.int(opts.ID), cAction) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("no element with ID %d in the current scope", opts.ID)
	case 2:
		return fmt.Errorf("element %d: %w: %s", opts.ID, ax.ErrActionUnsupported, opts.Action)
	default:
		return fmt.Errorf("failed to perform %q on element %d", opts.Action, opts.ID)
	}
}
