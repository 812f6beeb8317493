// Package main is a demonstration host for the forceime shim.
//
// The loop below is deliberately written the way the shim's target hosts
// are: it consumes at most one character per event notification. Run with
// -script to feed a multi-character commit through a scripted backend and
// watch the shim deliver it one character per round; run without flags to
// drive it from a live terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/iamgreaser/forceime/internal/backend"
	"github.com/iamgreaser/forceime/internal/config"
	"github.com/iamgreaser/forceime/internal/diag"
	"github.com/iamgreaser/forceime/internal/segbuf"
	"github.com/iamgreaser/forceime/internal/shim"
	"github.com/iamgreaser/forceime/internal/symtab"
	"github.com/iamgreaser/forceime/internal/winsys"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	script     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}

	logger := diag.New(diag.Config{
		Level:  cfg.LogLevel(),
		Output: os.Stderr,
		Prefix: "forceime",
	})
	diag.SetDefault(logger)

	if opts.configPath != "" {
		w, err := config.NewWatcher(opts.configPath, func(next config.Config) {
			logger.SetLevel(next.LogLevel())
		}, logger)
		if err != nil {
			logger.Warn("config watching disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	if opts.script != "" {
		return runScripted(cfg, logger, opts.script)
	}
	return runTerminal(cfg, logger)
}

// runScripted drives the host loop from a replay backend: one key press
// whose lookup commits the whole script text at once.
func runScripted(cfg config.Config, logger *diag.Logger, script string) int {
	press := winsys.Event{Type: winsys.KeyPress, Keycode: 38, Rune: 'k'}
	display := backend.NewReplay(backend.ReplayStep{Event: press, Commit: script})

	sess := shim.New(display,
		shim.WithLogger(logger),
		shim.WithBuffer(segbuf.New(cfg.BufferOptions(logger)...)),
	)
	ctx := sess.WrapContext(display)
	table := symtab.New(sess, ctx, nil)
	logger.Debug("dispatch table covers: %v", table.Names())

	delivered := hostLoop(table, func(chunk string) {
		fmt.Println(chunk)
	})
	logger.Info("scripted run delivered %d characters", delivered)
	return 0
}

// runTerminal drives the host loop from a live tcell screen. Escape quits.
func runTerminal(cfg config.Config, logger *diag.Logger) int {
	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init terminal: %v\n", err)
		return 1
	}
	defer term.Shutdown()

	sess := shim.New(term,
		shim.WithLogger(logger),
		shim.WithBuffer(segbuf.New(cfg.BufferOptions(logger)...)),
	)

	im, err := sess.OpenInputMethod()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer im.Close()

	ctx, err := sess.CreateContext(im,
		winsys.ICOption{Name: winsys.OptClientWindow, Value: backend.TerminalWindow},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer ctx.Destroy()

	table := symtab.New(sess, ctx, nil)

	screen := term.Screen()
	x, y := 0, 0
	hostLoopUntilQuit(table, func(chunk string) {
		r, _ := utf8.DecodeRuneInString(chunk)
		screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
		w, _ := screen.Size()
		if x >= w {
			x, y = 0, y+1
		}
		screen.Show()
	})
	return 0
}

// resolve pulls a typed entry point out of the dispatch table the way a
// dynamically linking host would, failing hard when it is missing.
func resolve[T any](table *symtab.Table, name string) T {
	fn, ok := table.Resolve(name)
	if !ok {
		panic("unresolvable entry point: " + name)
	}
	typed, ok := fn.(T)
	if !ok {
		panic("entry point has unexpected shape: " + name)
	}
	return typed
}

// hostLoop is the one-character-per-notification consumer. It runs until
// the display reports nothing pending, returning the delivery count.
func hostLoop(table *symtab.Table, deliver func(string)) int {
	nextEvent := resolve[func(*winsys.Event) winsys.Status](table, symtab.NameNextEvent)
	filterEvent := resolve[func(*winsys.Event, winsys.Window) bool](table, symtab.NameFilterEvent)
	pending := resolve[func() bool](table, symtab.NamePending)
	lookup := resolve[func(*winsys.Event, []byte) int](table, symtab.NameLookupString)

	buf := make([]byte, 4)
	count := 0
	for pending() {
		var ev winsys.Event
		nextEvent(&ev)
		if filterEvent(&ev, winsys.WindowNone) {
			continue
		}
		if ev.Type != winsys.KeyPress {
			continue
		}
		if n := lookup(&ev, buf); n > 0 {
			deliver(string(buf[:n]))
			count++
		}
	}
	return count
}

// hostLoopUntilQuit is the blocking variant for the live terminal: it waits
// for events and exits on Escape or a client message.
func hostLoopUntilQuit(table *symtab.Table, deliver func(string)) {
	nextEvent := resolve[func(*winsys.Event) winsys.Status](table, symtab.NameNextEvent)
	filterEvent := resolve[func(*winsys.Event, winsys.Window) bool](table, symtab.NameFilterEvent)
	lookup := resolve[func(*winsys.Event, []byte) int](table, symtab.NameLookupString)

	buf := make([]byte, 4)
	for {
		var ev winsys.Event
		nextEvent(&ev)
		if ev.Type == winsys.ClientMessage {
			return
		}
		if filterEvent(&ev, winsys.WindowNone) {
			continue
		}
		if ev.Type != winsys.KeyPress {
			continue
		}
		if backend.IsEscape(ev) {
			return
		}
		if n := lookup(&ev, buf); n > 0 {
			deliver(string(buf[:n]))
		}
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.script, "script", "", "Run a scripted commit through the shim and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "forceime - single-character input-method delivery shim\n\n")
		fmt.Fprintf(os.Stderr, "Usage: forceime [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  forceime -script héllo      Drain a scripted commit, one rune per line\n")
		fmt.Fprintf(os.Stderr, "  forceime                    Echo live terminal input (Esc to quit)\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("forceime %s (%s)\n", version, commit)
		os.Exit(0)
	}
	return opts
}
