// Package main is the entry point for the smartkey editor.
//
// With a terminal on stdin smartkey opens the file in a small full-screen
// editor. Otherwise it reads keystrokes from stdin, types them into the
// file's contents and prints the result, which makes the keystroke
// features scriptable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/smartkey/internal/config"
	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/features"
	"github.com/dshills/smartkey/internal/host"
	"github.com/dshills/smartkey/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath   string
	logLevel     string
	logFile      string
	exportConfig bool
	file         string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	if opts.exportConfig {
		data, err := config.EncodeJSON(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	log, closeLog, err := openLog(opts.logFile, cfg.Level(), interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	doc, err := openDocument(opts.file, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	builder := features.NewBuilder(cfg, log)
	if !interactive {
		if err := host.RunBatch(ctx, os.Stdin, os.Stdout, doc, builder.Chain()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := runEditor(ctx, opts, doc, builder, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runEditor(ctx context.Context, opts options, doc *document.Document, builder *features.Builder, log *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer screen.Fini()

	ed := host.NewEditor(screen, doc, builder, log)

	if opts.configPath != "" {
		w, err := config.Watch(opts.configPath, log, func(c *config.Config) {
			if opts.logLevel != "" {
				c.LogLevel = opts.logLevel
			}
			log.SetLevel(c.Level())
			ed.Reconfigure(features.NewBuilder(c, log))
		})
		if err != nil {
			log.Warn("config reload disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	go func() {
		<-ctx.Done()
		ed.Quit()
	}()

	return ed.Run()
}

func openDocument(path string, cfg *config.Config) (*document.Document, error) {
	opts := []document.Option{document.WithIndentSize(cfg.IndentSize)}
	if path == "" {
		return document.New(opts...), nil
	}
	return document.Open(path, opts...)
}

// openLog creates the logger. An interactive session owns the terminal, so
// without a log file nothing is logged.
func openLog(path string, level logging.Level, interactive bool) (*logging.Logger, func(), error) {
	cfg := logging.DefaultConfig()
	cfg.Level = level

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		cfg.Output = f
		return logging.New(cfg), func() { f.Close() }, nil
	case interactive:
		return logging.Nop(), func() {}, nil
	default:
		cfg.Output = os.Stderr
		return logging.New(cfg), func() {}, nil
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .json or .lua)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.BoolVar(&opts.exportConfig, "export-config", false, "Print the effective configuration as JSON and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "smartkey - keystroke templates for source files\n\n")
		fmt.Fprintf(os.Stderr, "Usage: smartkey [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Ctrl-S save, Ctrl-Q quit, Ctrl-Z/Ctrl-Y undo/redo,\n")
		fmt.Fprintf(os.Stderr, "      Ctrl-D/Ctrl-U duplicate lines down/up, Ctrl-_ toggle comments\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smartkey -c smartkey.toml main.go      Edit a file\n")
		fmt.Fprintf(os.Stderr, "  echo 'todo x' | smartkey -c s.toml     Type keystrokes, print the result\n")
		fmt.Fprintf(os.Stderr, "  smartkey -c s.lua -export-config       Show the effective config\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("smartkey %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "Error: at most one file can be opened\n")
		os.Exit(1)
	}
	opts.file = flag.Arg(0)

	return opts
}
