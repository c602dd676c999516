//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Foundation
#include <ApplicationServices/ApplicationServices.h>

static int axq_is_trusted(void) {
    return AXIsProcessTrusted();
}

static int axq_request_trust(void) {
    const void *keys[] = { kAXTrustedCheckOptionPrompt };
    const void *values[] = { kCFBooleanTrue };
    CFDictionaryRef options = CFDictionaryCreate(kCFAllocatorDefault,
        keys, values, 1,
        &kCFTypeDictionaryKeyCallBacks,
        &kCFTypeDictionaryValueCallBacks);
    int trusted = AXIsProcessTrustedWithOptions(options);
    CFRelease(options);
    return trusted;
}
*/
import "C"
import (
	"fmt"

	"github.com/mj1618/axq/internal/ax"
)

// CheckPermission returns ax.ErrPermissionDenied with grant instructions if
// the process lacks macOS accessibility permission.
func CheckPermission() error {
	if C.axq_is_trusted() == 0 {
		return fmt.Errorf("%w\n\n%s", ax.ErrPermissionDenied, ax.PermissionHint)
	}
	return nil
}

// RequestPermission triggers the OS permission prompt if not yet trusted.
// Returns true if the process is trusted.
func RequestPermission() bool {
	return C.axq_request_trust() != 0
}
