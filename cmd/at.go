package cmd

import (
	"fmt"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

// AtResult is the output of the at command.
type AtResult struct {
	Point   geom.Point  `yaml:"point"             json:"point"`
	Found   bool        `yaml:"found"             json:"found"`
	Element *ax.Element `yaml:"element,omitempty" json:"element,omitempty"`
}

var atCmd = &cobra.Command{
	Use:   "at x,y",
	Short: "Hit-test the accessibility tree at a screen point",
	Long:  "Report the accessible element at the given screen coordinates, or found: false when nothing accessible is there.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAt,
}

func init() {
	rootCmd.AddCommand(atCmd)
	atCmd.Flags().Int("x", 0, "X screen coordinate")
	atCmd.Flags().Int("y", 0, "Y screen coordinate")
}

func runAt(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	var p geom.Point
	if len(args) == 1 {
		p, err = geom.ParsePoint(args[0])
		if err != nil {
			return err
		}
	} else if cmd.Flags().Changed("x") || cmd.Flags().Changed("y") {
		p.X, _ = cmd.Flags().GetInt("x")
		p.Y, _ = cmd.Flags().GetInt("y")
	} else {
		return fmt.Errorf("specify a point: axq at 100,200 or --x / --y")
	}

	el, err := provider.Inspector.ElementAt(p)
	if err != nil {
		return err
	}
	return output.Print(AtResult{Point: p, Found: el != nil, Element: el})
}
