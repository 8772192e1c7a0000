package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the binary and checks its behavior per mode.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	tmpDir := t.TempDir()
	binName := "bigcalc"
	if runtime.GOOS == "windows" {
		binName = "bigcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/bigcalc")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build bigcalc: %v", err)
	}

	vectorsFile := filepath.Join(tmpDir, "mismatch.toml")
	if err := os.WriteFile(vectorsFile, []byte("[[vector]]\nname = \"x\"\nop = \"xor\"\na = \"F\"\nb = \"F\"\nwant = \"1\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  string // case-insensitive substring
		wantCode int
	}{
		{"Help", []string{"--help"}, "", "usage", 0},
		{"Version", []string{"--version"}, "", "bigcalc", 0},
		{"Multiply", []string{"-q", "mul", "0x7d7deab2affa38154326e96d350deee1", "0x97f92a75b3faf8939e8e98b96476fd22"}, "",
			"4A7F69B908E167EB0DC9AF7BBAA5456039C38359E4DE4F169CA10C44D0A416E2", 0},
		{"Infix Shift", []string{"-q", "-o", "bin", "0b1111", ">>", "2"}, "", "00000000000000000000000000000011", 0},
		{"Modulo", []string{"-q", "0xFFFFFFFF", "%", "65536"}, "", "65535", 0},
		{"Syntax", []string{"frob", "1"}, "", "unknown operation", 1},
		{"Underflow", []string{"sub", "1", "2"}, "", "underflow", 1},
		{"Builtin Vectors", []string{"--verify"}, "", "Global Status: Success", 0},
		{"Mismatch", []string{"--vectors", vectorsFile}, "", "Global Status: Failure", 3},
		{"Conflicting Modes", []string{"--repl", "--verify"}, "", "choose only one", 4},
		{"Bad Env", []string{"--verify"}, "", "workers", 4},
		{"REPL", []string{"--repl"}, "set a 0xFFFFFFFF\n$a + 1\nexit\n", "0000000100000000", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			if tt.name == "Bad Env" {
				cmd.Env = append(cmd.Env, "BIGCALC_WORKERS=-2")
			}
			if tt.stdin != "" {
				cmd.Stdin = strings.NewReader(tt.stdin)
			}
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run bigcalc: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code %d, want %d\nOutput:\n%s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
