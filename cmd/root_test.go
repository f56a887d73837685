package cmd

import "testing"

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"list", "search", "class", "info",
		"activate", "minimize", "maximize", "fullscreen", "close",
		"monitor", "app-save", "app-list", "app-delete", "toggle", "serve",
	}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}

func TestRootCommand_AcceptsBareAppName(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"firefox"}); err != nil {
		t.Errorf("bare app name should be accepted: %v", err)
	}
}
