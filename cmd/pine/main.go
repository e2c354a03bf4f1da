// Package main is the entry point for the pine editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/pine/internal/app"
	"github.com/dshills/pine/internal/config"
	"github.com/dshills/pine/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	path, code, done := parseArgs(os.Args[1:], os.Stdout, os.Stderr)
	if done {
		return code
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "pine: standard input and output must be a terminal")
		return exitError
	}

	cfg, cfgErr := config.Load()

	log, closer, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pine: logging disabled: %v\n", err)
	} else {
		defer closer.Close()
	}
	if cfgErr != nil && log != nil {
		log.WithError(cfgErr).Warn("config load failed, using defaults")
	}

	application, err := app.New(path, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pine: %v\n", err)
		return exitError
	}

	terminal, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pine: failed to create terminal: %v\n", err)
		return exitError
	}
	if err := application.SetBackend(terminal); err != nil {
		fmt.Fprintf(os.Stderr, "pine: %v\n", err)
		return exitError
	}

	// Signals end the session like Ctrl+C, so the buffer is still written.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go watchSignals(signals, terminal.PostEvent)

	// Run restores the terminal before returning, so errors print cleanly.
	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "pine: %v\n", err)
		return exitError
	}

	return exitOK
}

// watchSignals posts an interrupt for every signal received until signals
// is closed.
func watchSignals(signals <-chan os.Signal, post func(backend.Event)) {
	for range signals {
		post(backend.Event{Type: backend.EventInterrupt})
	}
}

// parseArgs parses the command line. done is true if the program should
// exit immediately with code.
func parseArgs(args []string, stdout, stderr io.Writer) (path string, code int, done bool) {
	fs := flag.NewFlagSet("pine", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Show version information")
	fs.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "pine - a minimal terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: pine [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nThe file is created if it does not exist and saved on Ctrl+C.\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", exitOK, true
		}
		return "", exitUsage, true
	}

	if showHelp {
		fs.Usage()
		return "", exitOK, true
	}

	if showVersion {
		fmt.Fprintf(stdout, "pine %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return "", exitOK, true
	}

	if fs.NArg() != 1 {
		fmt.Fprintf(stderr, "pine: expected exactly one file, got %d\n", fs.NArg())
		fs.Usage()
		return "", exitUsage, true
	}

	return fs.Arg(0), exitOK, false
}
