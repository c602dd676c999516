package cmd

import (
	"testing"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{"apps", "windows", "read", "at", "press", "frame", "find", "observe"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered on root", name)
		}
	}
}

func TestRootPersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"format", "string"},
		{"pretty", "bool"},
		{"verbose", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestReadCommand_Flags(t *testing.T) {
	flags := readCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"app", "string"},
		{"pid", "int"},
		{"window", "string"},
		{"window-id", "int"},
		{"id", "int"},
		{"depth", "int"},
		{"roles", "string"},
		{"bounds", "string"},
		{"text", "string"},
		{"flat", "bool"},
		{"all", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestPressCommand_Flags(t *testing.T) {
	flags := pressCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"app", "string"},
		{"pid", "int"},
		{"id", "int"},
		{"action", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestRequireScope(t *testing.T) {
	if err := requireScope("", 0, "", 0); err == nil {
		t.Error("expected error when no scope is given")
	}
	if err := requireScope("TextEdit", 0, "", 0); err != nil {
		t.Errorf("--app alone should satisfy scope: %v", err)
	}
	if err := requireScope("", 4242, "", 0); err != nil {
		t.Errorf("--pid alone should satisfy scope: %v", err)
	}
	if err := requireScope("", 0, "", 7); err != nil {
		t.Errorf("--window-id alone should satisfy scope: %v", err)
	}
}
