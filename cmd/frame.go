package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

// FrameResult is the output of the frame command. Coordinates are screen
// points with the origin at the top-left of the main display.
type FrameResult struct {
	Target  string        `yaml:"target"            json:"target"`
	Frame   geom.Rect     `yaml:"frame"             json:"frame"`
	Center  geom.Point    `yaml:"center"            json:"center"`
	Display *geom.Display `yaml:"display,omitempty" json:"display,omitempty"`
}

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Report window or element geometry in screen coordinates",
	Long: `Report the frame of a window (--window, --window-id, or the target app's
frontmost window) or of an element (--id within a scope) in top-left-origin
screen coordinates, together with the display that contains its center.

With --draw, the matched frames are also rendered to a PNG for eyeballing.`,
	RunE: runFrame,
}

func init() {
	rootCmd.AddCommand(frameCmd)
	scopeFlags(frameCmd)
	frameCmd.Flags().Int("id", 0, "Element ID from read output (element frame instead of window frame)")
	frameCmd.Flags().String("draw", "", "Write a PNG rendering of the matched frames to this path")
	frameCmd.Flags().Bool("appkit", false, "Report coordinates with the origin at the bottom-left of the main display")
}

func runFrame(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	app, pid, window, windowID := getScopeFlags(cmd)
	if err := requireScope(app, pid, window, windowID); err != nil {
		return err
	}
	id, _ := cmd.Flags().GetInt("id")
	drawPath, _ := cmd.Flags().GetString("draw")
	appkit, _ := cmd.Flags().GetBool("appkit")

	displays, err := provider.Screens.Displays()
	if err != nil {
		return err
	}

	var results []FrameResult
	if id > 0 {
		elements, err := provider.Inspector.ReadTree(platform.TreeOptions{
			App: app, PID: pid, Window: window, WindowID: windowID, ElementID: id,
		})
		if err != nil {
			return err
		}
		if len(elements) == 0 {
			return fmt.Errorf("no element with ID %d in the current scope", id)
		}
		el := elements[0]
		if !el.Caps.Has(ax.CapLocatable) {
			return fmt.Errorf("element %d (%s) reports no on-screen bounds", id, el.Role)
		}
		results = append(results, frameResult(elementLabel(&el), el.Frame(), displays))
	} else {
		windows, err := provider.Inspector.ListWindows(platform.ListOptions{App: app, PID: pid})
		if err != nil {
			return err
		}
		for _, w := range windows {
			if windowID != 0 && w.ID != windowID {
				continue
			}
			if window != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(window)) {
				continue
			}
			label := w.App
			if w.Title != "" {
				label += ": " + w.Title
			}
			results = append(results, frameResult(label, w.Frame(), displays))
		}
		if len(results) == 0 {
			return fmt.Errorf("no window matching the given scope")
		}
	}

	if drawPath != "" {
		if err := drawFrames(drawPath, results, displays); err != nil {
			return err
		}
	}

	if appkit {
		results = flipResults(results, displays)
	}

	if len(results) == 1 {
		return output.Print(results[0])
	}
	return output.Print(results)
}

func frameResult(label string, frame geom.Rect, displays []geom.Display) FrameResult {
	return FrameResult{
		Target:  label,
		Frame:   frame,
		Center:  frame.Center(),
		Display: geom.DisplayAt(displays, frame.Center()),
	}
}

// flipResults converts frames and centers to the AppKit bottom-left-origin
// convention. The display reference keeps the top-left geometry so the two
// conventions stay distinguishable in the output.
func flipResults(results []FrameResult, displays []geom.Display) []FrameResult {
	mainHeight := 0
	for _, d := range displays {
		if d.Main {
			mainHeight = d.Bounds.Height
			break
		}
	}
	if mainHeight == 0 {
		return results
	}
	for i := range results {
		results[i].Frame = geom.FlipY(results[i].Frame, mainHeight)
		results[i].Center = geom.FlipPointY(results[i].Center, mainHeight)
	}
	return results
}

func elementLabel(el *ax.Element) string {
	if el.Title != "" {
		return fmt.Sprintf("%s: %s", el.Role, el.Title)
	}
	return fmt.Sprintf("%s #%d", el.Role, el.ID)
}
