//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>

#define AXQ_MAX_DISPLAYS 16

typedef struct {
	uint32_t id;
	int main;
	int x, y, width, height;
} AXQDisplay;

static int axq_list_displays(AXQDisplay *out, int *outCount) {
	CGDirectDisplayID ids[AXQ_MAX_DISPLAYS];
	uint32_t count = 0;
	if (CGGetActiveDisplayList(AXQ_MAX_DISPLAYS, ids, &count) != kCGErrorSuccess) {
		return -1;
	}
	CGDirectDisplayID main = CGMainDisplayID();
	for (uint32_t i = 0; i < count; i++) {
		CGRect b = CGDisplayBounds(ids[i]);
		out[i].id = ids[i];
		out[i].main = ids[i] == main;
		out[i].x = (int)b.origin.x;
		out[i].y = (int)b.origin.y;
		out[i].width = (int)b.size.width;
		out[i].height = (int)b.size.height;
	}
	*outCount = (int)count;
	return 0;
}
*/
import "C"
import (
	"fmt"

	"github.com/mj1618/axq/internal/geom"
)

// ScreenList implements the platform.Screens interface for macOS.
// CGDisplayBounds already reports the top-left-origin global coordinates the
// rest of the facade uses, so no flip is needed here.
type ScreenList struct{}

// NewScreens creates a new macOS screen lister.
func NewScreens() *ScreenList {
	return &ScreenList{}
}

// Displays returns all active displays, main display first.
func (s *ScreenList) Displays() ([]geom.Display, error) {
	var cDisplays [16]C.AXQDisplay
	var cCount C.int
	if C.axq_list_displays(&cDisplays[0], &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate displays")
	}

	displays := make([]geom.Display, 0, int(cCount))
	for i := 0; i < int(cCount); i++ {
		cd := cDisplays[i]
		d := geom.Display{
			ID:   int(cd.id),
			Main: cd.main != 0,
			Bounds: geom.Rect{
				X:      int(cd.x),
				Y:      int(cd.y),
				Width:  int(cd.width),
				Height: int(cd.height),
			},
		}
		if d.Main {
			displays = append([]geom.Display{d}, displays...)
		} else {
			displays = append(displays, d)
		}
	}
	return displays, nil
}
