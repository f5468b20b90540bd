// Package main is a settings screen over a TOML bindings file. Widgets
// edit the shortcuts in place and every change is written back; edits
// made outside the program are hot-reloaded into the running screen.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/bind"
	"github.com/dshills/keybind/bindings"
	"github.com/dshills/keybind/internal/applog"
	"github.com/dshills/keybind/key"
	"github.com/dshills/keybind/mouse"
	"github.com/dshills/keybind/tcellhost"
)

// defaults seed the bindings file on first run.
var defaults = map[string]string{
	"save":       "Ctrl+S",
	"open":       "Ctrl+O",
	"find":       "Ctrl+Shift+F",
	"navigate":   "Back",
	"screenshot": "F12",
}

type options struct {
	path     string
	logFile  string
	logLevel string
	debounce time.Duration
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

	set, err := loadOrSeed(opts.path, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
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

	// The widget mutates shortcuts on the UI goroutine; the watcher
	// swaps the whole set from its own.
	var mu sync.Mutex
	status := "loaded " + opts.path

	watcher, err := bindings.Watch(opts.path, opts.debounce, log, func() {
		reloaded, err := bindings.Load(opts.path)
		mu.Lock()
		if err != nil {
			status = "reload failed: " + err.Error()
			log.Warn("reload failed: %v", err)
		} else {
			set = reloaded
			status = "reloaded from disk"
		}
		mu.Unlock()
		host.Wake()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer watcher.Close()

	quit := bind.NewShortcut(key.MustParseChord("Ctrl+Q"), mouse.ButtonNone)

	host.Run(func(f *tcellhost.Frame) bool {
		mu.Lock()
		defer mu.Unlock()

		f.Text("keybind settings: " + opts.path + " (Ctrl+Q quits)")
		f.Space()

		dirty := false
		for _, name := range set.Names() {
			resp := keybind.New(set.Get(name), "binding-"+name).
				WithText(name).
				Render(f)
			if resp.Changed {
				dirty = true
			}
		}

		if dirty {
			if err := set.Save(opts.path); err != nil {
				status = "save failed: " + err.Error()
				log.Error("save failed: %v", err)
			} else {
				status = "saved"
			}
		}

		f.Space()
		f.Text(status)
		return !quit.Pressed(f.Input())
	})
	return 0
}

// loadOrSeed loads the bindings file, creating it with the default
// bindings when it does not exist yet.
func loadOrSeed(path string, log *applog.Logger) (*bindings.Set, error) {
	set, err := bindings.Load(path)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	log.Info("creating %s with default bindings", path)
	set = bindings.NewSet()
	for name, spec := range defaults {
		set.Define(name, bind.MustParseShortcut(spec))
	}
	if err := set.Save(path); err != nil {
		return nil, err
	}
	return set, nil
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.path, "file", "bindings.toml", "Path to the bindings file")
	flag.StringVar(&opts.path, "f", "bindings.toml", "Path to the bindings file (shorthand)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: no logging)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.DurationVar(&opts.debounce, "debounce", 100*time.Millisecond, "Reload debounce interval")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybind-settings - edit a TOML bindings file interactively\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybind-settings [options]\n\n")
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
