package ax

import (
	"errors"
	"testing"
)

func TestResolve_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		actions []string
		want    Kind
	}{
		{"button role", "btn", []string{ActionPress}, KindButton},
		{"checkbox is a button", "chk", []string{ActionPress}, KindButton},
		{"menu item is a button", "menuitem", nil, KindButton},
		{"group is a view", "group", nil, KindView},
		{"scroll area is a view", "scroll", nil, KindView},
		{"window", "window", nil, KindWindow},
		{"static text is generic", "txt", nil, KindGeneric},
		{"pressable unknown role is a button", "other", []string{ActionPress}, KindButton},
		{"non-pressable unknown role is generic", "other", []string{ActionShowMenu}, KindGeneric},
	}
	for _, tt := range tests {
		el := Element{Role: tt.role, Actions: tt.actions}
		Resolve(&el)
		if el.Kind != tt.want {
			t.Errorf("%s: Kind = %q, want %q", tt.name, el.Kind, tt.want)
		}
	}
}

func TestResolve_Caps(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want Capability
	}{
		{
			"full button",
			Element{Role: "btn", Title: "OK", Bounds: [4]int{0, 0, 80, 24}, Actions: []string{ActionPress}},
			CapLocatable | CapTitled | CapActionable,
		},
		{
			"anonymous group",
			Element{Role: "group", Bounds: [4]int{0, 0, 800, 600}},
			CapLocatable,
		},
		{
			"offscreen titled text",
			Element{Role: "txt", Title: "hidden"},
			CapTitled,
		},
		{
			"description counts as titled",
			Element{Role: "img", Description: "logo", Bounds: [4]int{1, 1, 10, 10}},
			CapLocatable | CapTitled,
		},
	}
	for _, tt := range tests {
		el := tt.el
		Resolve(&el)
		if el.Caps != tt.want {
			t.Errorf("%s: Caps = %b, want %b", tt.name, el.Caps, tt.want)
		}
	}
}

func TestCapability_Has(t *testing.T) {
	c := CapLocatable | CapTitled
	if !c.Has(CapLocatable) {
		t.Error("expected CapLocatable")
	}
	if !c.Has(CapLocatable | CapTitled) {
		t.Error("expected combined capabilities")
	}
	if c.Has(CapActionable) {
		t.Error("did not expect CapActionable")
	}
	if c.Has(CapTitled | CapActionable) {
		t.Error("partial match must not satisfy Has")
	}
}

func TestSupportsAction(t *testing.T) {
	el := Element{Actions: []string{ActionPress, ActionShowMenu}}
	if !el.SupportsAction(ActionPress) {
		t.Error("expected press support")
	}
	if el.SupportsAction(ActionIncrement) {
		t.Error("did not expect increment support")
	}
}

func testTree() []Element {
	return []Element{
		{
			ID: 1, Role: "window", Title: "Main",
			Children: []Element{
				{ID: 2, Role: "toolbar", Children: []Element{
					{ID: 3, Role: "btn", Title: "Back"},
					{ID: 4, Role: "btn", Title: "Forward"},
				}},
				{ID: 5, Role: "group", Children: []Element{
					{ID: 6, Role: "txt", Value: "hello"},
				}},
			},
		},
	}
}

func TestFindByID(t *testing.T) {
	tree := testTree()

	el := FindByID(tree, 4)
	if el == nil || el.Title != "Forward" {
		t.Fatalf("FindByID(4) = %+v, want Forward button", el)
	}
	if FindByID(tree, 99) != nil {
		t.Error("FindByID(99) should be nil")
	}
}

func TestWalkElements_Order(t *testing.T) {
	var ids []int
	WalkElements(testTree(), func(el *Element) bool {
		ids = append(ids, el.ID)
		return true
	})
	want := []int{1, 2, 3, 4, 5, 6}
	if len(ids) != len(want) {
		t.Fatalf("visited %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("visited %v, want pre-order %v", ids, want)
		}
	}
}

func TestWalkElements_EarlyStop(t *testing.T) {
	visits := 0
	WalkElements(testTree(), func(el *Element) bool {
		visits++
		return el.ID != 3
	})
	if visits != 3 {
		t.Errorf("visited %d elements, want 3", visits)
	}
}

func TestSentinelErrors(t *testing.T) {
	wrapped := errors.Join(ErrActionUnsupported)
	if !errors.Is(wrapped, ErrActionUnsupported) {
		t.Error("wrapped ErrActionUnsupported must match errors.Is")
	}
	if errors.Is(ErrActionUnsupported, ErrPermissionDenied) {
		t.Error("sentinels must be distinct")
	}
}
