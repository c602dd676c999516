package main

import (
	"github.com/mj1618/axq/cmd"

	// Register the macOS backend. On other platforms the package is an
	// empty stub and platform.NewProvider reports ErrUnsupported.
	_ "github.com/mj1618/axq/internal/platform/darwin"
)

func main() {
	cmd.Execute()
}
