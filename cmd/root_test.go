package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{
			name:    "version flag",
			args:    []string{"--version"},
			wantErr: false,
		},
		{
			name:    "help flag",
			args:    []string{"--help"},
			wantErr: false,
		},
		{
			name:    "unknown command",
			args:    []string{"no-such-command"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			var stdout, stderr bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&stderr)

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Errorf("rootCmd.Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRootCommand_HelpListsSubcommands(t *testing.T) {
	rootCmd.SetArgs([]string{"--help"})
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("rootCmd.Execute() error = %v", err)
	}
	help := stdout.String()
	for _, sub := range []string{"import", "stats", "threads", "footers", "export"} {
		if !strings.Contains(help, sub) {
			t.Errorf("help output missing subcommand %q", sub)
		}
	}
}

func TestDataCommands_RequireSource(t *testing.T) {
	for _, sub := range []string{"stats", "threads", "footers", "export"} {
		t.Run(sub, func(t *testing.T) {
			rootCmd.SetArgs([]string{sub})
			rootCmd.SetOut(&bytes.Buffer{})
			rootCmd.SetErr(&bytes.Buffer{})

			resetSourceFlags()
			if err := rootCmd.Execute(); err == nil {
				t.Errorf("%s without a source should fail", sub)
			}
		})
	}
}

// resetSourceFlags clears the shared source flag state between test runs;
// cobra keeps flag values across Execute calls.
func resetSourceFlags() {
	mboxPath = ""
	listservPath = ""
	csvPath = ""
	dbPath = ""
}
