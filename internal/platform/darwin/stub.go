//go:build !darwin || !cgo

// Stub so the package always has Go files: importing it on non-darwin (or
// CGo-disabled) builds is a no-op and no provider is registered.
package darwin
