package runtime

import (
	"fmt"
	"io"
	"os"
	"path"

	"bfvm/bf_errors"
	"bfvm/bf_io"
	"bfvm/config"
	"bfvm/debugger"
	"bfvm/engine"
	"bfvm/program"
	"bfvm/sanitizer"
)

type Options struct {
	FilePath string
	Config   config.Config
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Tracer   debugger.Tracer
}

// Runtime wires the boundary together: it loads and sanitizes the
// source file, reports to the user streams and turns engine results
// into a process exit code.
type Runtime struct {
	Path   string
	Name   string
	Config config.Config
	Io     bf_io.Streams
	Tracer debugger.Tracer
}

func NewRuntime(options Options) *Runtime {
	r := &Runtime{
		Path:   options.FilePath,
		Name:   path.Base(options.FilePath),
		Config: options.Config,
		Tracer: options.Tracer,
	}

	r.Io.Init(bf_io.Streams{
		Out: options.Stdout,
		Err: options.Stderr,
		In:  options.Stdin,
	})

	return r
}

// Run executes the program and returns the exit code: 0 on completion,
// including a trailing unclosed-loop diagnostic, 1 on any startup or
// fatal runtime error.
func (r *Runtime) Run() int {
	code, err := r.load()
	if err != nil {
		fmt.Fprintf(r.Io.Err, "Error: %s\n", err)
		return 1
	}

	r.banner()

	e, err := engine.New(engine.Options{
		Program: program.New(sanitizer.Sanitize(code)),
		Config:  r.Config,
		Input:   bf_io.NewLineReader(r.Io.In, r.Io.Out, r.Config.Interactive),
		Output:  r.Io.Out,
		Tracer:  r.tracer(),
	})
	if err != nil {
		fmt.Fprintf(r.Io.Err, "Error: %s\n", err)
		return 1
	}

	if err := e.Run(); err != nil {
		fmt.Fprintf(r.Io.Err, "Error: %s\n", err)
		if !bf_errors.IsDiagnostic(err) {
			return 1
		}
	}

	fmt.Fprint(r.Io.Err, "\n\nProgram execution complete.\n")
	return 0
}

// load reads the source file through a limit so an oversized program is
// a clean startup error instead of a silent truncation.
func (r *Runtime) load() ([]byte, error) {
	file, err := os.Open(r.Path)
	if err != nil {
		return nil, bf_errors.CreateStartupError(fmt.Errorf("could not open file %s", r.Path))
	}
	defer file.Close()

	limit := int64(r.Config.MaxProgramSize)
	code, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, bf_errors.CreateStartupError(fmt.Errorf("could not read file %s: %w", r.Path, err))
	}
	if int64(len(code)) > limit {
		return nil, bf_errors.CreateStartupError(fmt.Errorf("program exceeds maximum size (%d bytes)", limit))
	}

	return code, nil
}

func (r *Runtime) tracer() debugger.Tracer {
	if r.Tracer != nil {
		return r.Tracer
	}
	if !r.Config.DebugMode {
		return nil
	}
	if r.Config.TraceFormat == "json" {
		return debugger.NewClient(r.Io.Err)
	}
	return debugger.Console{W: r.Io.Err}
}

func (r *Runtime) banner() {
	eof := "Unchanged"
	if r.Config.ZeroOnEOF {
		eof = "0"
	}

	fmt.Fprintf(r.Io.Err, "Running Brainfuck program from: %s\n", r.Path)
	fmt.Fprintf(r.Io.Err, "Configuration: Memory Size=%d, Wrapping=%s, Debug=%s, EOF=Set to %s\n\n",
		r.Config.MemorySize, enabled(r.Config.WrapMemory), enabled(r.Config.DebugMode), eof)
}

func enabled(on bool) string {
	if on {
		return "Enabled"
	}
	return "Disabled"
}
