package cmd

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/output"
	"github.com/mj1618/axq/internal/platform"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ObserveEvent is printed for each polling cycle that detected changes.
type ObserveEvent struct {
	Session string      `yaml:"session" json:"session"`
	Seq     int         `yaml:"seq"     json:"seq"`
	TS      int64       `yaml:"ts"      json:"ts"`
	Diff    ax.TreeDiff `yaml:"diff"    json:"diff"`
}

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Poll an application's tree and report changes",
	Long: `Repeatedly read an application's element tree and print a diff whenever it
changes. Reads are matched by content hash, so elements keep their identity
across reads even when traversal IDs shift.`,
	RunE: runObserve,
}

func init() {
	rootCmd.AddCommand(observeCmd)
	scopeFlags(observeCmd)
	observeCmd.Flags().Duration("interval", 0, "Polling interval (default from config, 1s)")
	observeCmd.Flags().Int("count", 0, "Stop after this many polls (0 = run until interrupted)")
}

func runObserve(cmd *cobra.Command, args []string) error {
	provider, err := platform.Shared()
	if err != nil {
		return err
	}

	app, pid, window, windowID := getScopeFlags(cmd)
	if err := requireScope(app, pid, window, windowID); err != nil {
		return err
	}

	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		interval = cfg.ObserveInterval
	}
	count, _ := cmd.Flags().GetInt("count")

	session := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"session":  session,
		"interval": interval,
	}).Debug("observe session started")

	// Expired snapshots from earlier sessions are swept on start.
	ax.CleanSnapshots("", time.Hour)
	defer ax.CleanSnapshots(session, 0)

	opts := platform.TreeOptions{App: app, PID: pid, Window: window, WindowID: windowID}

	read := func() ([]ax.FlatElement, error) {
		elements, err := provider.Inspector.ReadTree(opts)
		if err != nil {
			return nil, err
		}
		return ax.FlattenElements(ax.PruneEmptyGroups(elements)), nil
	}

	prev, err := read()
	if err != nil {
		return err
	}
	if err := ax.SaveSnapshot(session, 0, prev); err != nil {
		return fmt.Errorf("save initial snapshot: %w", err)
	}

	for seq := 1; count == 0 || seq <= count; seq++ {
		time.Sleep(interval)

		curr, err := read()
		if err != nil {
			return err
		}

		diff := ax.DiffElements(prev, curr)
		if !diff.Empty() {
			event := ObserveEvent{
				Session: session,
				Seq:     seq,
				TS:      time.Now().Unix(),
				Diff:    diff,
			}
			if err := output.Print(event); err != nil {
				return err
			}
			if err := ax.SaveSnapshot(session, seq, curr); err != nil {
				logrus.WithError(err).Debug("snapshot save failed")
			}
		}
		prev = curr
	}
	return nil
}
