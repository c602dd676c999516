package cmd

import (
	"strings"
	"time"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

// ReadResult is the top-level output of the read command.
type ReadResult struct {
	App      string       `yaml:"app,omitempty"    json:"app,omitempty"`
	PID      int          `yaml:"pid,omitempty"    json:"pid,omitempty"`
	Window   string       `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64        `yaml:"ts"               json:"ts"`
	Elements []ax.Element `yaml:"elements"         json:"elements"`
}

// ReadFlatResult is the output when --flat is used.
type ReadFlatResult struct {
	App      string           `yaml:"app,omitempty"    json:"app,omitempty"`
	PID      int              `yaml:"pid,omitempty"    json:"pid,omitempty"`
	Window   string           `yaml:"window,omitempty" json:"window,omitempty"`
	TS       int64            `yaml:"ts"               json:"ts"`
	Elements []ax.FlatElement `yaml:"elements"         json:"elements"`
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the accessibility element tree",
	Long: `Read the UI element tree from an application's accessibility layer.

Elements get sequential IDs valid for this read; pass an ID back via --id to
read just that element's subtree (--id N --depth 1 lists its direct children).`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
	scopeFlags(readCmd)
	readCmd.Flags().Int("id", 0, "Restrict to the subtree of this element ID")
	readCmd.Flags().Int("depth", 0, "Max depth to traverse (0 = unlimited)")
	readCmd.Flags().String("roles", "", "Only include these roles (comma-separated)")
	readCmd.Flags().String("bounds", "", "Only include elements intersecting this screen region (x,y,w,h)")
	readCmd.Flags().String("text", "", "Only include elements matching this text")
	readCmd.Flags().Bool("flat", false, "Flat list with path breadcrumbs instead of a tree")
	readCmd.Flags().Bool("all", false, "Keep anonymous container nodes (skip pruning)")
}

func runRead(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	app, pid, window, windowID := getScopeFlags(cmd)
	if err := requireScope(app, pid, window, windowID); err != nil {
		return err
	}

	id, _ := cmd.Flags().GetInt("id")
	depth, _ := cmd.Flags().GetInt("depth")
	rolesFlag, _ := cmd.Flags().GetString("roles")
	boundsFlag, _ := cmd.Flags().GetString("bounds")
	text, _ := cmd.Flags().GetString("text")
	flat, _ := cmd.Flags().GetBool("flat")
	all, _ := cmd.Flags().GetBool("all")

	if depth == 0 {
		depth = cfg.Depth
	}

	var roles []string
	if rolesFlag != "" {
		roles = strings.Split(rolesFlag, ",")
	}
	var within *geom.Rect
	if boundsFlag != "" {
		r, err := geom.ParseRect(boundsFlag)
		if err != nil {
			return err
		}
		within = &r
	}

	elements, err := provider.Inspector.ReadTree(platform.TreeOptions{
		App:       app,
		PID:       pid,
		Window:    window,
		WindowID:  windowID,
		ElementID: id,
		Depth:     depth,
		Roles:     roles,
		Within:    within,
	})
	if err != nil {
		return err
	}

	if text != "" {
		elements = ax.FilterByText(elements, text)
	}
	if !all {
		elements = ax.PruneEmptyGroups(elements)
	}
	if elements == nil {
		elements = []ax.Element{}
	}

	ts := time.Now().Unix()
	if flat {
		return output.Print(ReadFlatResult{
			App: app, PID: pid, Window: window, TS: ts,
			Elements: ax.FlattenElements(elements),
		})
	}
	return output.Print(ReadResult{
		App: app, PID: pid, Window: window, TS: ts,
		Elements: elements,
	})
}
