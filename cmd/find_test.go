package cmd

import (
	"testing"

	"github.com/mj1618/axq/internal/ax"
)

func findFixture() []ax.Element {
	return []ax.Element{
		{
			ID: 1, Role: "window", Title: "Preferences",
			Children: []ax.Element{
				{ID: 2, Role: "btn", Title: "Save Document"},
				{ID: 3, Role: "btn", Title: "Cancel"},
				{ID: 4, Role: "txt", Value: "autosave enabled"},
				{ID: 5, Role: "group", Children: []ax.Element{
					{ID: 6, Role: "chk", Description: "Save on exit"},
				}},
			},
		},
	}
}

func TestMatchElements_Substring(t *testing.T) {
	matches := matchElements(findFixture(), "save", false)

	got := []int{}
	for _, m := range matches {
		got = append(got, m.ID)
	}
	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("matched IDs %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("matched IDs %v, want %v", got, want)
		}
	}
}

func TestMatchElements_Exact(t *testing.T) {
	matches := matchElements(findFixture(), "cancel", true)
	if len(matches) != 1 || matches[0].ID != 3 {
		t.Fatalf("exact match = %+v, want only the Cancel button", matches)
	}

	// Substring-only hits must not qualify in exact mode.
	if m := matchElements(findFixture(), "save", true); len(m) != 0 {
		t.Errorf("exact %q matched %d elements, want 0", "save", len(m))
	}
}

func TestMatchElements_PathBreadcrumb(t *testing.T) {
	matches := matchElements(findFixture(), "save on exit", false)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Path != "window > group > chk" {
		t.Errorf("path = %q, want %q", matches[0].Path, "window > group > chk")
	}
}

func TestMatchElements_NoMatch(t *testing.T) {
	matches := matchElements(findFixture(), "nonexistent", false)
	if matches == nil {
		t.Fatal("matches should be an empty slice, not nil")
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}
