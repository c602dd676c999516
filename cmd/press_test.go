package cmd

import (
	"errors"
	"testing"

	"github.com/mj1618/axq/internal/ax"
	"github.com/mj1618/axq/internal/geom"
	"github.com/mj1618/axq/internal/platform"
)

// stubInspector hands out a fixed tree regardless of scope.
type stubInspector struct {
	tree []ax.Element
}

func (s *stubInspector) ListApplications() ([]ax.Application, error) { return nil, nil }
func (s *stubInspector) ApplicationForPID(int) (*ax.Application, error) {
	return nil, nil
}
func (s *stubInspector) ListWindows(platform.ListOptions) ([]ax.Window, error) {
	return nil, nil
}
func (s *stubInspector) ReadTree(platform.TreeOptions) ([]ax.Element, error) {
	return s.tree, nil
}
func (s *stubInspector) ElementAt(geom.Point) (*ax.Element, error) { return nil, nil }

// recordingActor counts delegated actions.
type recordingActor struct {
	calls []platform.ActionOptions
	err   error
}

func (a *recordingActor) Perform(opts platform.ActionOptions) error {
	if a.err != nil {
		return a.err
	}
	a.calls = append(a.calls, opts)
	return nil
}

func pressFixture() (*platform.Provider, *recordingActor) {
	tree := []ax.Element{
		{
			ID: 1, Role: "window", Title: "Main", Bounds: [4]int{0, 0, 400, 300},
			Children: []ax.Element{
				{ID: 2, Role: "btn", Title: "OK", Bounds: [4]int{10, 10, 80, 24},
					Actions: []string{ax.ActionPress}},
				{ID: 3, Role: "txt", Value: "label", Bounds: [4]int{10, 40, 80, 24}},
			},
		},
	}
	ax.WalkElements(tree, func(el *ax.Element) bool {
		ax.Resolve(el)
		return true
	})
	actor := &recordingActor{}
	return &platform.Provider{
		Inspector: &stubInspector{tree: tree},
		Actor:     actor,
	}, actor
}

func TestPressElement_DelegatesSupportedAction(t *testing.T) {
	provider, actor := pressFixture()

	target, err := pressElement(provider, platform.ActionOptions{
		App: "Demo", ID: 2, Action: ax.ActionPress,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(actor.calls) != 1 {
		t.Fatalf("expected 1 delegated action, got %d", len(actor.calls))
	}
	if actor.calls[0].ID != 2 || actor.calls[0].Action != ax.ActionPress {
		t.Errorf("delegated %+v", actor.calls[0])
	}
	if target == nil || target.Kind != ax.KindButton {
		t.Errorf("target = %+v, want the OK button", target)
	}
}

func TestPressElement_UnsupportedAction_NoSideEffect(t *testing.T) {
	provider, actor := pressFixture()

	_, err := pressElement(provider, platform.ActionOptions{
		App: "Demo", ID: 3, Action: ax.ActionPress,
	})
	if !errors.Is(err, ax.ErrActionUnsupported) {
		t.Fatalf("expected ErrActionUnsupported, got: %v", err)
	}
	if len(actor.calls) != 0 {
		t.Errorf("unsupported action must not reach the platform, got %d calls", len(actor.calls))
	}
}

func TestPressElement_UnknownID(t *testing.T) {
	provider, actor := pressFixture()

	_, err := pressElement(provider, platform.ActionOptions{
		App: "Demo", ID: 99, Action: ax.ActionPress,
	})
	if err == nil {
		t.Fatal("expected error for unknown element ID")
	}
	if len(actor.calls) != 0 {
		t.Error("no action should be delegated for an unknown ID")
	}
}

func TestPressElement_ActionVariants(t *testing.T) {
	provider, actor := pressFixture()

	// The button advertises press only; every other action must be refused
	// before it reaches the platform.
	for _, action := range []string{ax.ActionIncrement, ax.ActionPick, ax.ActionShowMenu} {
		_, err := pressElement(provider, platform.ActionOptions{App: "Demo", ID: 2, Action: action})
		if !errors.Is(err, ax.ErrActionUnsupported) {
			t.Errorf("action %q: expected ErrActionUnsupported, got: %v", action, err)
		}
	}
	if len(actor.calls) != 0 {
		t.Errorf("expected no delegated actions, got %d", len(actor.calls))
	}
}

// Element IDs are traversal indices within one window-scoped read, so the
// action must be delegated under the exact scope that produced them.
func TestPressElement_KeepsWindowScope(t *testing.T) {
	provider, actor := pressFixture()

	opts := platform.ActionOptions{
		App: "Demo", Window: "Main", WindowID: 42, ID: 2, Action: ax.ActionPress,
	}
	if _, err := pressElement(provider, opts); err != nil {
		t.Fatal(err)
	}
	if len(actor.calls) != 1 {
		t.Fatalf("expected 1 delegated action, got %d", len(actor.calls))
	}
	got := actor.calls[0]
	if got.Window != "Main" || got.WindowID != 42 {
		t.Errorf("delegated scope window=%q windowID=%d, want the read scope Main/42", got.Window, got.WindowID)
	}
}

func TestEnsureActionable(t *testing.T) {
	btn := ax.Element{ID: 2, Role: "btn", Actions: []string{ax.ActionPress}}
	ax.Resolve(&btn)
	if err := ensureActionable(&btn, ax.ActionPress); err != nil {
		t.Errorf("press on a pressable button: %v", err)
	}

	txt := ax.Element{ID: 3, Role: "txt"}
	ax.Resolve(&txt)
	if err := ensureActionable(&txt, ax.ActionPress); !errors.Is(err, ax.ErrActionUnsupported) {
		t.Errorf("expected ErrActionUnsupported, got: %v", err)
	}
}
