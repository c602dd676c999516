package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/axq/internal/config"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "axq",
	Short: "Inspect desktop UI accessibility trees",
	Long:  "A read-only CLI over the platform accessibility API: list applications and windows, read element trees, hit-test points, and delegate accessibility actions.",
}

// cfg is the loaded user configuration, available to all commands.
var cfg = config.Default()

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml or json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.WarnLevel)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logrus.WithField("path", config.Path()).Debug("config loaded")

		// Flag beats config beats default.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		if format == "" {
			format = cfg.Format
		}
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
