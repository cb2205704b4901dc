package cmd

import (
	"testing"
)

func TestNewRootCmd(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{
		"run":    false,
		"scan":   false,
		"verify": false,
		"seed":   false,
	}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
			if sub.GroupID == "" {
				t.Errorf("subcommand %s has no group", sub.Name())
			}
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %s not registered", name)
		}
	}

	if root.Version == "" {
		t.Error("root command has no version")
	}
}

func TestRunCmdFlags(t *testing.T) {
	run := NewRunCmd()
	for _, flag := range []string{"config", "source", "output", "images-only", "move", "dry-run", "verbose"} {
		if run.Flags().Lookup(flag) == nil {
			t.Errorf("run command missing --%s", flag)
		}
	}
}
