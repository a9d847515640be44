package cmd

import "testing"

// The dispatch surface is fixed; a renamed or dropped command would silently
// break scripts built on top of pydev.
func TestAllCommandsRegistered(t *testing.T) {
	want := []string{
		"init", "install", "dev", "tree", "lint", "format",
		"build", "clean", "obliviate", "python-version",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Fatalf("command %s is not registered", name)
		}
	}
}

func TestCommandsHaveShortHelp(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		if c.Short == "" {
			t.Fatalf("command %s has no help text", c.Name())
		}
	}
}
