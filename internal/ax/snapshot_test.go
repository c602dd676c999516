package ax

import (
	"testing"
	"time"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	session := "test-session-roundtrip"
	defer CleanSnapshots(session, 0)

	want := []FlatElement{
		{ID: 1, Role: "window", Title: "Main", Path: "window"},
		{ID: 2, Role: "btn", Title: "Save", Path: "window > btn", Actions: []string{ActionPress}},
	}
	if err := SaveSnapshot(session, 0, want); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSnapshot(session, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(want) {
		t.Fatalf("loaded %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Title != want[i].Title || got[i].Path != want[i].Path {
			t.Errorf("element %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadSnapshot_Missing(t *testing.T) {
	if _, err := LoadSnapshot("no-such-session", 42); err == nil {
		t.Error("expected error for missing snapshot")
	}
}

func TestCleanSnapshots_RemovesSessionFiles(t *testing.T) {
	session := "test-session-clean"
	if err := SaveSnapshot(session, 0, []FlatElement{{ID: 1, Role: "window"}}); err != nil {
		t.Fatal(err)
	}

	// maxAge 0 removes everything for the session regardless of age.
	CleanSnapshots(session, 0)

	if _, err := LoadSnapshot(session, 0); err == nil {
		t.Error("snapshot should be gone after cleaning")
	}

	// Cleaning an absent session is a no-op, not a panic.
	CleanSnapshots("never-existed", time.Hour)
}
