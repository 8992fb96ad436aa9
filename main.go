package main

import (
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"bfvm/bf_io"
	"bfvm/config"
	"bfvm/runtime"
)

var cli struct {
	Wrap   bool   `short:"w" help:"Enable memory wrapping (instead of bounds checking)."`
	Debug  bool   `short:"d" help:"Enable debug mode."`
	Memory string `short:"m" placeholder:"SIZE" help:"Set memory size (default: ${default_memory})."`
	Zero   bool   `short:"z" help:"Set cell to 0 on EOF (default: leave unchanged)."`
	Config string `placeholder:"PATH" help:"Path to a YAML config file."`

	Version kong.VersionFlag `help:"Print version and exit."`

	File string `arg:"" help:"Brainfuck source file." type:"path"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("bfvm"),
		kong.Description("A configurable brainfuck interpreter."),
		kong.UsageOnError(),
		kong.Vars{
			"version":        "bfvm 1.0.0",
			"default_memory": strconv.Itoa(config.DefaultMemorySize),
		},
	)

	cfg, err := resolve()
	ctx.FatalIfErrorf(err)

	cfg.Interactive = bf_io.IsInteractive(os.Stdin)

	r := runtime.NewRuntime(runtime.Options{
		FilePath: cli.File,
		Config:   cfg,
	})

	os.Exit(r.Run())
}

// resolve layers the configuration: defaults, then the config file,
// then the flags. An explicit --config must load; the default path is
// optional and silently skipped when absent.
func resolve() (config.Config, error) {
	cfg := config.Default()

	if cli.Config != "" {
		loaded, err := config.LoadFile(cli.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	} else if loaded, err := config.LoadFile(config.DefaultPath()); err == nil {
		cfg = loaded
	}

	if cli.Wrap {
		cfg.WrapMemory = true
	}
	if cli.Debug {
		cfg.DebugMode = true
	}
	if cli.Zero {
		cfg.ZeroOnEOF = true
	}
	if cli.Memory != "" {
		// a non-numeric or zero size falls back through Normalize
		if size, err := strconv.Atoi(cli.Memory); err == nil {
			cfg.MemorySize = size
		} else {
			cfg.MemorySize = 0
		}
	}

	return cfg.Normalize(), nil
}
