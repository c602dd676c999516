//go:build darwin

// Package darwin binds the accessibility facade to the macOS Accessibility
// and CoreGraphics APIs. All functionality requires CGo (Objective-C
// frameworks). When CGo is disabled, the package compiles as a no-op stub
// and platform.NewProvider reports ErrUnsupported.
package darwin
