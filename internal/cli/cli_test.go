package cli

import (
	"bytes"
	"testing"
)

func TestRootCommand_RegistersGenerateSubcommand(t *testing.T) {
	c := New(&bytes.Buffer{})
	root := c.RootCommand()

	cmd, _, err := root.Find([]string{"generate"})
	if err != nil {
		t.Fatalf("unexpected error finding generate command: %v", err)
	}
	if cmd.Use != "generate" {
		t.Fatalf("expected the generate subcommand, got %q", cmd.Use)
	}
}

func TestGenerateCommand_RequiresLevelFlag(t *testing.T) {
	c := New(&bytes.Buffer{})
	root := c.RootCommand()
	root.SetArgs([]string{"generate"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected an error when --level is not supplied")
	}
}
