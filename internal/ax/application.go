package ax

import "github.com/mj1618/axq/internal/geom"

// Application is one running process's accessible surface.
type Application struct {
	Name string `yaml:"app" json:"app"`
	PID  int    `yaml:"pid" json:"pid"`
}

// Window is an application window. ID is the system window number.
type Window struct {
	App     string `yaml:"app"               json:"app"`
	PID     int    `yaml:"pid"               json:"pid"`
	Title   string `yaml:"title"             json:"title"`
	ID      int    `yaml:"id"                json:"id"`
	Bounds  [4]int `yaml:"bounds"            json:"bounds"`
	Focused bool   `yaml:"focused,omitempty" json:"focused,omitempty"`
}

// Frame returns the window bounds as a screen rectangle.
func (w *Window) Frame() geom.Rect {
	return geom.FromBounds(w.Bounds)
}
