package cmd

import (
	"fmt"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

// PressResult is the output of a successful press command.
type PressResult struct {
	OK     bool         `yaml:"ok"               json:"ok"`
	Action string       `yaml:"action"           json:"action"`
	ID     int          `yaml:"id"               json:"id"`
	Target *ElementInfo `yaml:"target,omitempty" json:"target,omitempty"`
}

var pressCmd = &cobra.Command{
	Use:   "press",
	Short: "Delegate an accessibility action to an element",
	Long: `Delegate an accessibility action (default: press) to a UI element by ID.

Actions are the same as shown in the 'a' field of read output:
  press      - Press/activate (buttons, links, menu items)
  cancel     - Cancel the current operation
  pick       - Pick/select (dropdowns, menus)
  increment  - Increase value (sliders, steppers)
  decrement  - Decrease value (sliders, steppers)
  confirm    - Confirm a dialog or selection
  showmenu   - Show the element's context menu
  raise      - Bring the element's window to front

No mouse or keyboard events are simulated: the action is delegated to the
element itself and fails if the element does not support it.`,
	RunE: runPress,
}

func init() {
	rootCmd.AddCommand(pressCmd)
	scopeFlags(pressCmd)
	pressCmd.Flags().Int("id", 0, "Element ID from read output")
	pressCmd.Flags().String("action", ax.ActionPress, "Action to delegate")
}

func runPress(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	app, pid, window, windowID := getScopeFlags(cmd)
	if err := requireScope(app, pid, window, windowID); err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("id")
	if id <= 0 {
		return fmt.Errorf("--id is required (run read first to get element IDs)")
	}
	action, _ := cmd.Flags().GetString("action")

	target, err := pressElement(provider, platform.ActionOptions{
		App:      app,
		PID:      pid,
		Window:   window,
		WindowID: windowID,
		ID:       id,
		Action:   action,
	})
	if err != nil {
		return err
	}

	return output.Print(PressResult{OK: true, Action: action, ID: id, Target: target})
}
