package platform

import (
	"errors"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestShared_CachesProvider(t *testing.T) {
	orig := NewProviderFunc
	defer func() {
		NewProviderFunc = orig
		ResetShared()
	}()

	calls := 0
	NewProviderFunc = func() (*Provider, error) {
		calls++
		return &Provider{}, nil
	}
	ResetShared()

	p1, err := Shared()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Shared()
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("Shared must return the same provider")
	}
	if calls != 1 {
		t.Errorf("provider constructed %d times, want 1", calls)
	}
}

func TestShared_ErrorNotCached(t *testing.T) {
	orig := NewProviderFunc
	defer func() {
		NewProviderFunc = orig
		ResetShared()
	}()

	NewProviderFunc = nil
	ResetShared()

	if _, err := Shared(); err == nil {
		t.Fatal("expected error with no registered backend")
	}

	NewProviderFunc = func() (*Provider, error) { return &Provider{}, nil }
	if _, err := Shared(); err != nil {
		t.Errorf("registration after a failed Shared should work, got: %v", err)
	}
}
