package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bfvm/config"
)

func writeProgram(t *testing.T, code string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.bf")
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, code string, cfg config.Config, input string) (int, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	r := NewRuntime(Options{
		FilePath: writeProgram(t, code),
		Config:   cfg,
		Stdout:   stdout,
		Stderr:   stderr,
		Stdin:    strings.NewReader(input),
	})

	return r.Run(), stdout, stderr
}

func TestRunHelloWorld(t *testing.T) {
	code := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

	status, stdout, stderr := execute(t, code, config.Default(), "")

	if status != 0 {
		t.Fatalf("Incorrect exit status expected 0 found %d", status)
	}
	if stdout.String() != "Hello World!\n" {
		t.Errorf("Incorrect stdout found %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Running Brainfuck program from:") {
		t.Error("Expected the banner on stderr")
	}
	if !strings.Contains(stderr.String(), "Configuration: Memory Size=30000, Wrapping=Disabled, Debug=Disabled, EOF=Set to Unchanged") {
		t.Errorf("Incorrect configuration line in %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Program execution complete.") {
		t.Error("Expected the footer on stderr")
	}
}

func TestRunMissingFile(t *testing.T) {
	stderr := &bytes.Buffer{}
	r := NewRuntime(Options{
		FilePath: filepath.Join(t.TempDir(), "missing.bf"),
		Config:   config.Default(),
		Stdout:   &bytes.Buffer{},
		Stderr:   stderr,
		Stdin:    strings.NewReader(""),
	})

	if status := r.Run(); status != 1 {
		t.Fatalf("Incorrect exit status expected 1 found %d", status)
	}
	if !strings.Contains(stderr.String(), "Error: could not open file") {
		t.Errorf("Incorrect report %q", stderr.String())
	}
}

func TestRunOversizedProgram(t *testing.T) {
	cfg := config.Default()
	cfg.MaxProgramSize = 4

	status, _, stderr := execute(t, "+++++", cfg, "")

	if status != 1 {
		t.Fatalf("Incorrect exit status expected 1 found %d", status)
	}
	if !strings.Contains(stderr.String(), "Error: program exceeds maximum size (4 bytes)") {
		t.Errorf("Incorrect report %q", stderr.String())
	}
}

func TestRunFatalError(t *testing.T) {
	cfg := config.Default()
	cfg.MemorySize = 1

	status, stdout, stderr := execute(t, ".>", cfg, "")

	if status != 1 {
		t.Fatalf("Incorrect exit status expected 1 found %d", status)
	}
	if !strings.Contains(stderr.String(), "Error: data pointer out of bounds at position 1") {
		t.Errorf("Incorrect report %q", stderr.String())
	}
	if stdout.Len() != 1 {
		t.Error("Expected output produced before the failure to remain visible")
	}
	if strings.Contains(stderr.String(), "Program execution complete.") {
		t.Error("Expected no footer after a fatal error")
	}
}

func TestRunUnclosedLoopDiagnostic(t *testing.T) {
	status, _, stderr := execute(t, "+[", config.Default(), "")

	if status != 0 {
		t.Fatalf("Incorrect exit status expected 0 found %d", status)
	}
	if !strings.Contains(stderr.String(), "Error: 1 unclosed loops") {
		t.Errorf("Incorrect report %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Program execution complete.") {
		t.Error("Expected the footer after a diagnostic")
	}
}

func TestRunBadMemorySize(t *testing.T) {
	cfg := config.Default()
	cfg.MemorySize = -1

	status, _, stderr := execute(t, "+", cfg, "")

	if status != 1 {
		t.Fatalf("Incorrect exit status expected 1 found %d", status)
	}
	if !strings.Contains(stderr.String(), "Error: memory allocation failed for tape") {
		t.Errorf("Incorrect report %q", stderr.String())
	}
}

func TestRunDebugTrace(t *testing.T) {
	cfg := config.Default()
	cfg.DebugMode = true

	status, _, stderr := execute(t, "+", cfg, "")

	if status != 0 {
		t.Fatalf("Incorrect exit status expected 0 found %d", status)
	}
	if !strings.Contains(stderr.String(), "[DEBUG] PC: 0, Instruction: +") {
		t.Errorf("Expected a debug trace in %q", stderr.String())
	}
}

func TestRunJSONTrace(t *testing.T) {
	cfg := config.Default()
	cfg.DebugMode = true
	cfg.TraceFormat = "json"

	status, _, stderr := execute(t, "+", cfg, "")

	if status != 0 {
		t.Fatalf("Incorrect exit status expected 0 found %d", status)
	}
	if !strings.Contains(stderr.String(), `"instruction":"+"`) {
		t.Errorf("Expected a json trace in %q", stderr.String())
	}
}

func TestRunConsumesInput(t *testing.T) {
	cfg := config.Default()
	cfg.ZeroOnEOF = true

	status, stdout, _ := execute(t, ",[.,]", cfg, "hi\n")

	if status != 0 {
		t.Fatalf("Incorrect exit status expected 0 found %d", status)
	}
	if stdout.String() != "hi\n" {
		t.Errorf("Incorrect stdout found %q", stdout.String())
	}
}
