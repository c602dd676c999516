package cmd

import (
	"fmt"

	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/spf13/cobra"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "List running accessible applications",
	Long:  "List running applications that expose accessible UI, or look one up by PID.",
	RunE:  runApps,
}

func init() {
	rootCmd.AddCommand(appsCmd)
	appsCmd.Flags().Int("pid", 0, "Look up a single application by PID")
	appsCmd.Flags().Bool("request-permission", false, "Trigger the OS accessibility permission prompt first")
}

func runApps(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	if request, _ := cmd.Flags().GetBool("request-permission"); request {
		if platform.RequestPermissionFunc == nil || !platform.RequestPermissionFunc() {
			return fmt.Errorf("accessibility permission not granted")
		}
	}

	pid, _ := cmd.Flags().GetInt("pid")
	if pid != 0 {
		app, err := provider.Inspector.ApplicationForPID(pid)
		if err != nil {
			return err
		}
		if app == nil {
			return fmt.Errorf("no application with PID %d", pid)
		}
		return output.Print(app)
	}

	apps, err := provider.Inspector.ListApplications()
	if err != nil {
		return err
	}
	return output.Print(apps)
}
