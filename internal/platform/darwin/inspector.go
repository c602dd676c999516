//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework ApplicationServices -framework CoreGraphics -framework CoreFoundation -framework Foundation
#import <AppKit/AppKit.h>
#include <ApplicationServices/ApplicationServices.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>
#include <string.h>

// Private but stable since 10.10; resolves an AX window element to its
// CGWindowID. Weakly linked so its absence only disables window-ID filtering.
extern AXError _AXUIElementGetWindow(AXUIElementRef element, uint32_t *identifier) __attribute__((weak_import));

typedef struct {
	pid_t pid;
	char *name;
} AXQApp;

typedef struct {
	pid_t pid;
	uint32_t windowID;
	int layer;
	int x, y, width, height;
	char *appName;
	char *title;
} AXQWindow;

typedef struct {
	int id;
	int parentID;
	char *role;
	char *title;
	char *value;
	char *description;
	int x, y, width, height;
	int focused;
	int enabled;
	int selected;
	char **actions;
	int actionCount;
} AXQNode;

static char *axq_strdup_ns(NSString *s) {
	if (s == nil) return strdup("");
	const char *u = [s UTF8String];
	return strdup(u ? u : "");
}

static char *axq_copy_cf_string(CFTypeRef v) {
	if (!v) return strdup("");
	CFStringRef str;
	int owned = 0;
	if (CFGetTypeID(v) == CFStringGetTypeID()) {
		str = (CFStringRef)v;
	} else if (CFGetTypeID(v) == CFNumberGetTypeID() || CFGetTypeID(v) == CFBooleanGetTypeID()) {
		str = CFCopyDescription(v);
		owned = 1;
	} else {
		return strdup("");
	}
	CFIndex len = CFStringGetMaximumSizeForEncoding(CFStringGetLength(str), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(len);
	if (!buf || !CFStringGetCString(str, buf, len, kCFStringEncodingUTF8)) {
		free(buf);
		buf = strdup("");
	}
	if (owned) CFRelease(str);
	return buf;
}

static int axq_list_apps(AXQApp **out, int *outCount) {
	NSArray<NSRunningApplication *> *apps = [[NSWorkspace sharedWorkspace] runningApplications];
	AXQApp *arr = calloc([apps count] ? [apps count] : 1, sizeof(AXQApp));
	if (!arr) return -1;
	int n = 0;
	for (NSRunningApplication *app in apps) {
		if ([app activationPolicy] != NSApplicationActivationPolicyRegular) continue;
		arr[n].pid = [app processIdentifier];
		arr[n].name = axq_strdup_ns([app localizedName]);
		n++;
	}
	*out = arr;
	*outCount = n;
	return 0;
}

static void axq_free_apps(AXQApp *apps, int count) {
	for (int i = 0; i < count; i++) free(apps[i].name);
	free(apps);
}

static int axq_app_for_pid(pid_t pid, char **name) {
	NSRunningApplication *app = [NSRunningApplication runningApplicationWithProcessIdentifier:pid];
	if (app == nil) return 1;
	*name = axq_strdup_ns([app localizedName]);
	return 0;
}

static pid_t axq_frontmost_pid(void) {
	NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
	return app ? [app processIdentifier] : 0;
}

static int axq_list_windows(AXQWindow **out, int *outCount) {
	CFArrayRef info = CGWindowListCopyWindowInfo(
		kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
		kCGNullWindowID);
	if (!info) return -1;
	CFIndex n = CFArrayGetCount(info);
	AXQWindow *arr = calloc(n ? n : 1, sizeof(AXQWindow));
	if (!arr) { CFRelease(info); return -1; }
	int count = 0;
	for (CFIndex i = 0; i < n; i++) {
		NSDictionary *d = (NSDictionary *)CFArrayGetValueAtIndex(info, i);
		AXQWindow *w = &arr[count];
		w->pid = [d[(id)kCGWindowOwnerPID] intValue];
		w->windowID = [d[(id)kCGWindowNumber] unsignedIntValue];
		w->layer = [d[(id)kCGWindowLayer] intValue];
		NSDictionary *bounds = d[(id)kCGWindowBounds];
		w->x = [bounds[@"X"] intValue];
		w->y = [bounds[@"Y"] intValue];
		w->width = [bounds[@"Width"] intValue];
		w->height = [bounds[@"Height"] intValue];
		w->appName = axq_strdup_ns(d[(id)kCGWindowOwnerName]);
		w->title = axq_strdup_ns(d[(id)kCGWindowName]);
		count++;
	}
	CFRelease(info);
	*out = arr;
	*outCount = count;
	return 0;
}

static void axq_free_windows(AXQWindow *windows, int count) {
	for (int i = 0; i < count; i++) {
		free(windows[i].appName);
		free(windows[i].title);
	}
	free(windows);
}

static char *axq_copy_attr_string(AXUIElementRef el, CFStringRef attr) {
	CFTypeRef v = NULL;
	if (AXUIElementCopyAttributeValue(el, attr, &v) != kAXErrorSuccess || !v) {
		return strdup("");
	}
	char *s = axq_copy_cf_string(v);
	CFRelease(v);
	return s;
}

// Returns 1/0 for a boolean attribute, -1 when the attribute is absent.
static int axq_attr_bool(AXUIElementRef el, CFStringRef attr) {
	CFTypeRef v = NULL;
	int out = -1;
	if (AXUIElementCopyAttributeValue(el, attr, &v) == kAXErrorSuccess && v) {
		if (CFGetTypeID(v) == CFBooleanGetTypeID()) {
			out = CFBooleanGetValue((CFBooleanRef)v) ? 1 : 0;
		}
		CFRelease(v);
	}
	return out;
}

static void axq_fill_frame(AXUIElementRef el, AXQNode *n) {
	CFTypeRef v = NULL;
	CGPoint pos = CGPointZero;
	CGSize size = CGSizeZero;
	if (AXUIElementCopyAttributeValue(el, kAXPositionAttribute, &v) == kAXErrorSuccess && v) {
		AXValueGetValue((AXValueRef)v, kAXValueTypeCGPoint, &pos);
		CFRelease(v);
	}
	v = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXSizeAttribute, &v) == kAXErrorSuccess && v) {
		AXValueGetValue((AXValueRef)v, kAXValueTypeCGSize, &size);
		CFRelease(v);
	}
	n->x = (int)pos.x;
	n->y = (int)pos.y;
	n->width = (int)size.width;
	n->height = (int)size.height;
}

static void axq_fill_node(AXUIElementRef el, AXQNode *n) {
	n->role = axq_copy_attr_string(el, kAXRoleAttribute);
	n->title = axq_copy_attr_string(el, kAXTitleAttribute);
	n->value = axq_copy_attr_string(el, kAXValueAttribute);
	n->description = axq_copy_attr_string(el, kAXDescriptionAttribute);
	axq_fill_frame(el, n);
	n->focused = axq_attr_bool(el, kAXFocusedAttribute) == 1;
	n->enabled = axq_attr_bool(el, kAXEnabledAttribute) != 0;
	n->selected = axq_attr_bool(el, kAXSelectedAttribute) == 1;

	CFArrayRef actions = NULL;
	if (AXUIElementCopyActionNames(el, &actions) == kAXErrorSuccess && actions) {
		CFIndex ac = CFArrayGetCount(actions);
		n->actions = calloc(ac ? ac : 1, sizeof(char *));
		for (CFIndex i = 0; i < ac; i++) {
			n->actions[i] = axq_copy_cf_string(CFArrayGetValueAtIndex(actions, i));
		}
		n->actionCount = (int)ac;
		CFRelease(actions);
	}
}

typedef struct {
	AXQNode *nodes;
	int count;
	int cap;
	int maxDepth;
} AXQTree;

static void axq_walk(AXQTree *t, AXUIElementRef el, int parentID, int depth) {
	if (t->maxDepth > 0 && depth > t->maxDepth) return;
	if (depth > 100) return;
	if (t->count == t->cap) {
		t->cap = t->cap ? t->cap * 2 : 256;
		t->nodes = realloc(t->nodes, t->cap * sizeof(AXQNode));
		if (!t->nodes) { t->count = 0; t->cap = 0; return; }
	}
	int idx = t->count++;
	memset(&t->nodes[idx], 0, sizeof(AXQNode));
	t->nodes[idx].id = idx + 1;
	t->nodes[idx].parentID = parentID;
	axq_fill_node(el, &t->nodes[idx]);

	int myID = idx + 1;
	CFArrayRef children = NULL;
	if (AXUIElementCopyAttributeValue(el, kAXChildrenAttribute, (CFTypeRef *)&children) == kAXErrorSuccess && children) {
		CFIndex n = CFArrayGetCount(children);
		for (CFIndex i = 0; i < n; i++) {
			AXUIElementRef child = (AXUIElementRef)CFArrayGetValueAtIndex(children, i);
			axq_walk(t, child, myID, depth + 1);
		}
		CFRelease(children);
	}
}

static int axq_window_matches(AXUIElementRef win, const char *title, int windowID) {
	if (windowID > 0 && _AXUIElementGetWindow != NULL) {
		uint32_t wid = 0;
		if (_AXUIElementGetWindow(win, &wid) == kAXErrorSuccess && (int)wid != windowID) {
			return 0;
		}
	}
	if (title && title[0]) {
		char *t = axq_copy_attr_string(win, kAXTitleAttribute);
		int match = strcasestr(t, title) != NULL;
		free(t);
		return match;
	}
	return 1;
}

static int axq_read_tree(pid_t pid, const char *windowTitle, int windowID, int maxDepth,
		AXQNode **out, int *outCount) {
	AXUIElementRef app = AXUIElementCreateApplication(pid);
	if (!app) return -1;

	AXQTree t = {0};
	t.maxDepth = maxDepth;

	CFArrayRef windows = NULL;
	if (AXUIElementCopyAttributeValue(app, kAXWindowsAttribute, (CFTypeRef *)&windows) == kAXErrorSuccess && windows) {
		CFIndex n = CFArrayGetCount(windows);
		for (CFIndex i = 0; i < n; i++) {
			AXUIElementRef win = (AXUIElementRef)CFArrayGetValueAtIndex(windows, i);
			if (!axq_window_matches(win, windowTitle, windowID)) continue;
			axq_walk(&t, win, -1, 1);
		}
		CFRelease(windows);
	}
	CFRelease(app);

	*out = t.nodes;
	*outCount = t.count;
	return 0;
}

static void axq_free_node_fields(AXQNode *n) {
	free(n->role);
	free(n->title);
	free(n->value);
	free(n->description);
	for (int i = 0; i < n->actionCount; i++) free(n->actions[i]);
	free(n->actions);
}

static void axq_free_nodes(AXQNode *nodes, int count) {
	for (int i = 0; i < count; i++) axq_free_node_fields(&nodes[i]);
	free(nodes);
}

// Returns 0 on hit, 1 when nothing accessible is at the point, -1 on error.
static int axq_element_at(float x, float y, AXQNode *out) {
	AXUIElementRef sys = AXUIElementCreateSystemWide();
	if (!sys) return -1;
	AXUIElementRef el = NULL;
	AXError err = AXUIElementCopyElementAtPosition(sys, x, y, &el);
	CFRelease(sys);
	if (err == kAXErrorNoValue || el == NULL) return 1;
	if (err != kAXErrorSuccess) {
		if (el) CFRelease(el);
		return 1;
	}
	memset(out, 0, sizeof(AXQNode));
	out->id = 1;
	out->parentID = -1;
	axq_fill_node(el, out);
	CFRelease(el);
	return 0;
}
*/
import "C"
import (
	"fmt"
	"sort"
	"strings"
	"unsafe"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
	"github.com/mj1618/axq/internal/platform"
)

// Inspector implements the platform.Inspector interface for macOS.
type Inspector struct{}

// NewInspector creates a new macOS inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// ListApplications enumerates running applications with a regular activation
// policy, i.e. the ones that own accessible UI.
func (r *Inspector) ListApplications() ([]ax.Application, error) {
	if err := CheckPermission(); err != nil {
		return nil, err
	}

	var cApps *C.AXQApp
	var cCount C.int
	if C.axq_list_apps(&cApps, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate applications")
	}
	defer C.axq_free_apps(cApps, cCount)

	count := int(cCount)
	apps := make([]ax.Application, 0, count)
	if count == 0 {
		return apps, nil
	}
	cSlice := unsafe.Slice(cApps, count)
	for i := 0; i < count; i++ {
		apps = append(apps, ax.Application{
			Name: C.GoString(cSlice[i].name),
			PID:  int(cSlice[i].pid),
		})
	}
	sort.Slice(apps, func(i, j int) bool {
		return strings.ToLower(apps[i].Name) < strings.ToLower(apps[j].Name)
	})
	return apps, nil
}

// ApplicationForPID looks up a running application by PID. A miss is not an
// error: it returns nil, nil.
func (r *Inspector) ApplicationForPID(pid int) (*ax.Application, error) {
	var cName *C.char
	if C.axq_app_for_pid(C.pid_t(pid), &cName) != 0 {
		return nil, nil
	}
	defer C.free(unsafe.Pointer(cName))
	return &ax.Application{Name: C.GoString(cName), PID: pid}, nil
}

// ListWindows returns on-screen windows using CGWindowListCopyWindowInfo,
// filtered per ListOptions. The frontmost app's first window is marked focused.
func (r *Inspector) ListWindows(opts platform.ListOptions) ([]ax.Window, error) {
	var cWindows *C.AXQWindow
	var cCount C.int
	if C.axq_list_windows(&cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.axq_free_windows(cWindows, cCount)

	count := int(cCount)
	windows := []ax.Window{}
	if count == 0 {
		return windows, nil
	}

	frontPID := int(C.axq_frontmost_pid())
	focusAssigned := false

	cSlice := unsafe.Slice(cWindows, count)
	for i := 0; i < count; i++ {
		cw := cSlice[i]

		// Layer 0 only: real application windows.
		if int(cw.layer) != 0 {
			continue
		}

		pid := int(cw.pid)
		appName := C.GoString(cw.appName)
		if opts.PID != 0 && pid != opts.PID {
			continue
		}
		if opts.App != "" && !strings.EqualFold(appName, opts.App) {
			continue
		}

		focused := false
		if pid == frontPID && !focusAssigned {
			focused = true
			focusAssigned = true
		}

		windows = append(windows, ax.Window{
			App:     appName,
			PID:     pid,
			Title:   C.GoString(cw.title),
			ID:      int(cw.windowID),
			Bounds:  [4]int{int(cw.x), int(cw.y), int(cw.width), int(cw.height)},
			Focused: focused,
		})
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Focused != windows[j].Focused {
			return windows[i].Focused
		}
		return strings.ToLower(windows[i].App) < strings.ToLower(windows[j].App)
	})
	return windows, nil
}

// ReadTree reads the accessibility element tree for the specified target.
func (r *Inspector) ReadTree(opts platform.TreeOptions) ([]ax.Element, error) {
	if err := CheckPermission(); err != nil {
		return nil, err
	}

	pid, windowTitle, windowID, err := r.resolveTarget(opts.App, opts.PID, opts.Window, opts.WindowID)
	if err != nil {
		return nil, err
	}

	var cTitle *C.char
	if windowTitle != "" {
		cTitle = C.CString(windowTitle)
		defer C.free(unsafe.Pointer(cTitle))
	}

	// A subtree read needs the full tree first so traversal IDs line up
	// with the preceding read.
	maxDepth := opts.Depth
	if opts.ElementID > 0 {
		maxDepth = 0
	}

	var cNodes *C.AXQNode
	var cCount C.int
	if C.axq_read_tree(C.pid_t(pid), cTitle, C.int(windowID), C.int(maxDepth), &cNodes, &cCount) != 0 {
		return nil, fmt.Errorf("failed to read accessibility tree for PID %d", pid)
	}
	defer C.axq_free_nodes(cNodes, cCount)

	elements := buildTree(cNodes, cCount)

	if opts.ElementID > 0 {
		el := ax.FindByID(elements, opts.ElementID)
		if el == nil {
			return []ax.Element{}, nil
		}
		elements = []ax.Element{*el}
		// Depth counts from the scoped element: depth 1 keeps its direct
		// children, not just the element itself.
		if opts.Depth > 0 {
			elements = ax.LimitDepth(elements, opts.Depth+1)
		}
	}

	return ax.FilterElements(elements, opts.Roles, opts.Within), nil
}

// ElementAt hit-tests the accessibility tree at a screen point.
func (r *Inspector) ElementAt(p geom.Point) (*ax.Element, error) {
	if err := CheckPermission(); err != nil {
		return nil, err
	}

	var cNode C.AXQNode
	rc := C.axq_element_at(C.float(p.X), C.float(p.Y), &cNode)
	if rc == 1 {
		return nil, nil
	}
	if rc != 0 {
		return nil, fmt.Errorf("hit test failed at %d,%d", p.X, p.Y)
	}
	defer C.axq_free_node_fields(&cNode)

	el := nodeToElement(&cNode)
	return &el, nil
}

// resolveTarget resolves the target PID and window scope from the options,
// mirroring how a preceding window listing would have scoped the read.
func (r *Inspector) resolveTarget(app string, pid int, window string, windowID int) (int, string, int, error) {
	if pid != 0 {
		return pid, window, windowID, nil
	}
	if app != "" {
		windows, err := r.ListWindows(platform.ListOptions{App: app})
		if err != nil {
			return 0, "", 0, err
		}
		if len(windows) == 0 {
			// App may be running without CG windows; fall back to PID lookup.
			apps, err := r.ListApplications()
			if err != nil {
				return 0, "", 0, err
			}
			for _, a := range apps {
				if strings.EqualFold(a.Name, app) {
					return a.PID, window, windowID, nil
				}
			}
			return 0, "", 0, fmt.Errorf("no application matching %q", app)
		}
		return windows[0].PID, window, windowID, nil
	}
	if windowID != 0 || window != "" {
		windows, err := r.ListWindows(platform.ListOptions{})
		if err != nil {
			return 0, "", 0, err
		}
		for _, w := range windows {
			if windowID != 0 && w.ID == windowID {
				return w.PID, "", w.ID, nil
			}
			if windowID == 0 && strings.Contains(strings.ToLower(w.Title), strings.ToLower(window)) {
				return w.PID, "", w.ID, nil
			}
		}
		return 0, "", 0, fmt.Errorf("no window matching the given scope")
	}
	return 0, "", 0, fmt.Errorf("no target specified: use --app, --pid, --window, or --window-id")
}

// nodeToElement converts one C node into an Element and resolves its variant.
func nodeToElement(cn *C.AXQNode) ax.Element {
	var actions []string
	if cn.actionCount > 0 {
		cActions := unsafe.Slice(cn.actions, int(cn.actionCount))
		for i := 0; i < int(cn.actionCount); i++ {
			actions = append(actions, ax.MapAction(C.GoString(cActions[i])))
		}
	}

	var enabled *bool
	if cn.enabled == 0 {
		f := false
		enabled = &f
	}

	el := ax.Element{
		ID:          int(cn.id),
		Role:        ax.MapRole(C.GoString(cn.role)),
		Title:       C.GoString(cn.title),
		Value:       C.GoString(cn.value),
		Description: C.GoString(cn.description),
		Bounds:      [4]int{int(cn.x), int(cn.y), int(cn.width), int(cn.height)},
		Focused:     cn.focused != 0,
		Enabled:     enabled,
		Selected:    cn.selected != 0,
		Actions:     actions,
	}
	ax.Resolve(&el)
	return el
}

// buildTree converts the flat pre-order C array into a nested element forest.
// Parents always precede their children, so a single pass suffices.
func buildTree(cNodes *C.AXQNode, cCount C.int) []ax.Element {
	count := int(cCount)
	if count == 0 {
		return []ax.Element{}
	}
	cSlice := unsafe.Slice(cNodes, count)

	childIdx := make(map[int][]int, count)
	parentOf := make([]int, count)
	var roots []int
	for i := 0; i < count; i++ {
		parentOf[i] = int(cSlice[i].parentID)
		if parentOf[i] < 0 {
			roots = append(roots, i)
		} else {
			childIdx[parentOf[i]] = append(childIdx[parentOf[i]], i)
		}
	}

	var build func(idx int) ax.Element
	build = func(idx int) ax.Element {
		el := nodeToElement(&cSlice[idx])
		for _, ci := range childIdx[el.ID] {
			el.Children = append(el.Children, build(ci))
		}
		return el
	}

	result := make([]ax.Element, 0, len(roots))
	for _, ri := range roots {
		result = append(result, build(ri))
	}
	return result
}
