// Package main is an interactive tour of the keybind widgets: click a
// binding, press the keys or mouse button to rebind it, and trigger it
// to bump a counter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/bind"
	"github.com/dshills/keybind/internal/applog"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
	"github.com/dshills/keybind/tcellhost"
)

type options struct {
	logFile  string
	logLevel string
	mac      bool
	symbols  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	// The screen belongs to tcell, so logs go to a file or nowhere.
	log := applog.Nop()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = applog.New(f, applog.ParseLevel(opts.logLevel))
	}

	host, err := tcellhost.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := host.WithLogger(log).Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer host.Close()

	names := key.Names
	if opts.symbols {
		names = key.Symbols
	}

	// The bound values outlive the widgets, which are rebuilt per frame.
	shortcut := bind.MustParseShortcut("Ctrl+Shift+D")
	var chord bind.OptionalChord
	var button bind.OptionalButton
	quit := bind.NewShortcut(key.MustParseChord("Ctrl+Q"), mouse.ButtonNone)
	presses := 0

	host.Run(func(f *tcellhost.Frame) bool {
		f.Text("keybind demo. Ctrl+Q quits.")
		f.Space()

		resp := keybind.New(&shortcut, "demo-shortcut").
			WithText("Shortcut (Escape resets to Ctrl+Shift+D)").
			WithResetKey(key.NewChord(key.KeyEscape, key.ModNone)).
			WithModifierNames(names).
			WithMac(opts.mac).
			Render(f)
		if resp.Changed {
			log.Info("shortcut rebound to %s", shortcut.String())
		}

		keybind.New(&chord, "demo-chord").
			WithText("Keyboard only (capture clears on mouse)").
			WithModifierNames(names).
			WithMac(opts.mac).
			Render(f)

		keybind.New(&button, "demo-button").
			WithText("Mouse only (try Middle, Back, Forward)").
			Render(f)

		f.Space()
		if shortcut.Pressed(f.Input()) {
			presses++
		}
		f.Text(fmt.Sprintf("Shortcut pressed %d times", presses))

		return !quit.Pressed(f.Input())
	})
	return 0
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: no logging)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.mac, "mac", false, "Use macOS modifier names (Cmd, Option)")
	flag.BoolVar(&opts.symbols, "symbols", false, "Use modifier symbols instead of names")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybind-demo - interactive binding capture demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybind-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	return opts
}
