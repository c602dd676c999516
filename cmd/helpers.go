package cmd

import (
	"fmt"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/platform"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// scopeFlags registers the common target-scope flags on a command.
func scopeFlags(cmd *cobra.Command) {
	cmd.Flags().String("app", "", "Target application by name")
	cmd.Flags().Int("pid", 0, "Target process by PID")
	cmd.Flags().String("window", "", "Restrict to window by title substring")
	cmd.Flags().Int("window-id", 0, "Restrict to window by system ID")
}

// getScopeFlags reads the common target-scope flags.
func getScopeFlags(cmd *cobra.Command) (app string, pid int, window string, windowID int) {
	app, _ = cmd.Flags().GetString("app")
	pid, _ = cmd.Flags().GetInt("pid")
	window, _ = cmd.Flags().GetString("window")
	windowID, _ = cmd.Flags().GetInt("window-id")
	return
}

// requireScope ensures at least one scope flag was given.
func requireScope(app string, pid int, window string, windowID int) error {
	if app == "" && pid == 0 && window == "" && windowID == 0 {
		return fmt.Errorf("no target specified: use --app, --pid, --window, or --window-id")
	}
	return nil
}

// ElementInfo is the compact element summary embedded in command results.
type ElementInfo struct {
	ID     int     `yaml:"id"              json:"id"`
	Role   string  `yaml:"role"            json:"role"`
	Kind   ax.Kind `yaml:"kind,omitempty"  json:"kind,omitempty"`
	Title  string  `yaml:"title,omitempty" json:"title,omitempty"`
	Bounds [4]int  `yaml:"bounds"          json:"bounds"`
}

func elementInfo(el *ax.Element) *ElementInfo {
	if el == nil {
		return nil
	}
	return &ElementInfo{
		ID:     el.ID,
		Role:   el.Role,
		Kind:   el.Kind,
		Title:  el.Title,
		Bounds: el.Bounds,
	}
}

// ensureActionable checks that the element advertises the requested action
// before anything is delegated to the platform, so an unsupported press
// never reaches the OS.
func ensureActionable(el *ax.Element, action string) error {
	if !el.Caps.Has(ax.CapActionable) || !el.SupportsAction(action) {
		return fmt.Errorf("element %d (%s): %w: %s", el.ID, el.Role, ax.ErrActionUnsupported, action)
	}
	return nil
}

// pressElement resolves the target element in the given scope, verifies the
// action capability, and delegates the action. Separated from the cobra
// handler so the whole flow is testable against fake providers.
func pressElement(p *platform.Provider, opts platform.ActionOptions) (*ElementInfo, error) {
	tree, err := p.Inspector.ReadTree(platform.TreeOptions{
		App:      opts.App,
		PID:      opts.PID,
		Window:   opts.Window,
		WindowID: opts.WindowID,
	})
	if err != nil {
		return nil, err
	}

	el := ax.FindByID(tree, opts.ID)
	if el == nil {
		return nil, fmt.Errorf("no element with ID %d in the current scope", opts.ID)
	}
	if err := ensureActionable(el, opts.Action); err != nil {
		return elementInfo(el), err
	}

	logrus.WithFields(logrus.Fields{
		"id":     opts.ID,
		"action": opts.Action,
		"role":   el.Role,
	}).Debug("delegating action")

	if err := p.Actor.Perform(opts); err != nil {
		return elementInfo(el), err
	}
	return elementInfo(el), nil
}
