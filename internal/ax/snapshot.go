package ax

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshots are throwaway files in the temp dir used by observe sessions to
// diff successive reads. They are not a persistence layer.

const snapshotPrefix = "axq-snapshot-"

func snapshotPath(session string, seq int) string {
	safe := strings.ReplaceAll(session, "/", "_")
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s%s-%d.json", snapshotPrefix, safe, seq))
}

// SaveSnapshot writes a flat element list for later diffing.
func SaveSnapshot(session string, seq int, elements []FlatElement) error {
	data, err := json.Marshal(elements)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return os.WriteFile(snapshotPath(session, seq), data, 0o644)
}

// LoadSnapshot reads a previously saved snapshot.
func LoadSnapshot(session string, seq int) ([]FlatElement, error) {
	data, err := os.ReadFile(snapshotPath(session, seq))
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var elements []FlatElement
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return elements, nil
}

// CleanSnapshots removes snapshot files for the session older than maxAge.
// Passing an empty session cleans every axq snapshot.
func CleanSnapshots(session string, maxAge time.Duration) {
	prefix := snapshotPrefix
	if session != "" {
		prefix += strings.ReplaceAll(session, "/", "_") + "-"
	}

	entries, err := os.ReadDir(os.TempDir())
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(os.TempDir(), entry.Name()))
		}
	}
}
