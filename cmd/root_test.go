package cmd

import (
	"context"
	"testing"
)

// TestExecute_Version verifies --version prints a version string.
func TestExecute_Version(t *testing.T) {
	err := Execute(context.Background(), []string{"--version"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_Help verifies --help returns without error.
func TestExecute_Help(t *testing.T) {
	err := Execute(context.Background(), []string{"--help"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_DryRun verifies --dry-run validates and exits cleanly.
func TestExecute_DryRun(t *testing.T) {
	err := Execute(context.Background(), []string{
		"-p", "18080", "--dry-run",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_DryRunInvalid verifies --dry-run still catches bad
// configs.
func TestExecute_DryRunInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad port", []string{"-p", "70000", "--dry-run"}},
		{"hostname bind", []string{"-H", "example.com", "--dry-run"}},
		{"metrics collision", []string{"-p", "9000", "-m", "9000", "--dry-run"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Execute(context.Background(), tt.args); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestExecute_FlagsOverrideEnv verifies the precedence chain end to
// end: environment values reach validation when no flag is given, and
// a flag beats the environment in both directions.
func TestExecute_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PORT", "70000")
	t.Setenv("HOST", "203.0.113.7")

	// No port flag: the unusable env port must reach validation.
	if err := Execute(context.Background(), []string{"--dry-run"}); err == nil {
		t.Fatal("expected the env port to fail validation")
	}

	// A valid flag port wins over the unusable env port.
	err := Execute(context.Background(), []string{"-p", "18080", "--dry-run"})
	if err != nil {
		t.Fatalf("flag did not override env port: %v", err)
	}

	// A bad flag host wins over the valid env host, so validation
	// rejects it.
	err = Execute(context.Background(), []string{
		"-H", "example.com", "-p", "18080", "--dry-run",
	})
	if err == nil {
		t.Fatal("expected the flag hostname to fail validation")
	}
}

// TestExecute_Quiet verifies -q is accepted alongside a normal run
// configuration.
func TestExecute_Quiet(t *testing.T) {
	err := Execute(context.Background(), []string{"-q", "-p", "18080", "--dry-run"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestExecute_InvalidFlags verifies unknown flags produce an error.
func TestExecute_InvalidFlags(t *testing.T) {
	if err := Execute(context.Background(), []string{"--nonexistent-flag"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

// TestExecute_RejectsPositionalArgs verifies stray arguments error out.
func TestExecute_RejectsPositionalArgs(t *testing.T) {
	if err := Execute(context.Background(), []string{"extra"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
