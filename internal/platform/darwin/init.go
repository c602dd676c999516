//go:build darwin && cgo

package darwin

import "github.com/mj1618/axq/internal/platform"

func init() {
	platform.RequestPermissionFunc = RequestPermission
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		inspector := NewInspector()
		return &platform.Provider{
			Inspector: inspector,
			Actor:     NewActor(inspector),
			Screens:   NewScreens(),
		}, nil
	}
}
