package cmd

import (
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List open windows",
	Long:  "List open windows with their app name, title, PID, window ID, and bounds.",
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().String("app", "", "Filter by application name")
	windowsCmd.Flags().Int("pid", 0, "Filter by PID")
}

func runWindows(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	appName, _ := cmd.Flags().GetString("app")
	pid, _ := cmd.Flags().GetInt("pid")

	windows, err := provider.Inspector.ListWindows(platform.ListOptions{App: appName, PID: pid})
	if err != nil {
		return err
	}
	return output.Print(windows)
}
