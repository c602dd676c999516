package platform

import (
	"fmt"
	"runtime"
	"sync"
)

// Provider bundles the platform backends for the current OS. It is the
// process-wide handle on the accessibility subsystem: resolved once at first
// use, read-only afterward, no teardown.
type Provider struct {
	Inspector Inspector
	Actor     Actor
	Screens   Screens
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("axq is not supported on %s/%s; supported: darwin/amd64, darwin/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin/init.go for the macOS registration.
var NewProviderFunc func() (*Provider, error)

// RequestPermissionFunc triggers the OS accessibility permission prompt and
// reports whether the process is trusted. Set by the same init() that sets
// NewProviderFunc; nil on unsupported platforms.
var RequestPermissionFunc func() bool

// NewProvider returns a fresh Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

var (
	sharedMu sync.Mutex
	shared   *Provider
)

// Shared returns the process-wide Provider, creating it on first use.
func Shared() (*Provider, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		return shared, nil
	}
	p, err := NewProvider()
	if err != nil {
		return nil, err
	}
	shared = p
	return shared, nil
}

// ResetShared drops the cached Provider. Tests use it to swap in fakes.
func ResetShared() {
	sharedMu.Lock()
	shared = nil
	sharedMu.Unlock()
}
