// Package main is the entry point for the vimbridge terminal frontend.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimbridge/internal/config"
	"github.com/dshills/vimbridge/internal/editor"
	"github.com/dshills/vimbridge/internal/host"
	"github.com/dshills/vimbridge/internal/host/tcellhost"
	"github.com/dshills/vimbridge/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	filePath   string
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

	log := editor.NewLogger(os.Stderr, editor.ParseLogLevel(opts.logLevel), "vimbridge")
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: opening log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log = editor.NewLogger(f, editor.ParseLogLevel(opts.logLevel), "vimbridge")
	}

	var text string
	if opts.filePath != "" {
		data, err := os.ReadFile(opts.filePath)
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		text = string(data)
	}

	edOpts := []editor.Option{
		editor.WithLogger(log),
		editor.WithMaxCount(cfg.Macro.MaxCount),
		editor.WithTracking(cfg.Tracker.Enabled),
	}
	if cfg.Tracker.NormalizeBlanks {
		edOpts = append(edOpts, editor.WithNormalizeBlanks(config.NormalizeBlanks(cfg.Editor.TabWidth)))
	}
	ed := editor.New(text, edOpts...)

	if err := runInitScript(ed, opts.configPath, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: init script: %v\n", err)
		return 1
	}

	if err := uiLoop(ed, opts, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runInitScript executes init.lua next to the config file, if present.
func runInitScript(ed *editor.Editor, configPath string, log *editor.Logger) error {
	path := filepath.Join(filepath.Dir(configPath), "init.lua")
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	state := lua.NewState()
	defer state.Close()
	state.InstallAPI(ed)

	log.Info("running %s", path)
	return state.DoFile(path)
}

// eventConfig carries a reloaded configuration into the event loop so
// settings are applied on the dispatching goroutine.
type eventConfig struct {
	tcell.EventTime
	cfg config.Config
}

// uiLoop runs the terminal frontend until the user quits with Ctrl-Q.
func uiLoop(ed *editor.Editor, opts options, log *editor.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	watcher, err := config.Watch(opts.configPath, func(next config.Config) {
		ev := &eventConfig{cfg: next}
		ev.SetEventNow()
		_ = screen.PostEvent(ev)
	})
	if err == nil {
		defer watcher.Close()
	}

	var status string
	for {
		draw(screen, ed, status)

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *eventConfig:
			log.SetLevel(editor.ParseLogLevel(ev.cfg.Log.Level))
			ed.SetMaxCount(ev.cfg.Macro.MaxCount)
			log.Info("configuration reloaded")
			status = "configuration reloaded"
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyCtrlQ:
				return nil
			case tcell.KeyCtrlS:
				status = save(ed, opts.filePath)
				continue
			}

			cmd, ok := tcellhost.Translate(ev)
			if !ok {
				continue
			}
			status = handle(ed, cmd, log)
		}
	}
}

// handle decodes one host command and dispatches it to the editor.
func handle(ed *editor.Editor, cmd host.Command, log *editor.Logger) string {
	dec, err := host.Decode(cmd)
	if err != nil {
		log.Debug("decode %s: %v", cmd, err)
		return ""
	}
	// Commands owned by the native environment never reach the editor.
	if !dec.IsUserInput() {
		log.Debug("host command %s ignored", cmd)
		return ""
	}

	if _, err := ed.Dispatch(dec.Event); err != nil {
		log.Debug("dispatch %s: %v", dec.Event.VimString(), err)
		return err.Error()
	}
	return ""
}

func save(ed *editor.Editor, filePath string) string {
	if filePath == "" {
		return "no file to save"
	}
	if err := os.WriteFile(filePath, []byte(ed.Text()), 0o644); err != nil {
		return err.Error()
	}
	return "saved " + filePath
}

// draw renders the buffer with a one-line status bar.
func draw(screen tcell.Screen, ed *editor.Editor, status string) {
	screen.Clear()
	width, height := screen.Size()

	lines := ed.Lines()
	for y := 0; y < height-1 && y < len(lines); y++ {
		x := 0
		for _, r := range lines[y] {
			if x >= width {
				break
			}
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}

	bar := fmt.Sprintf("-- %s --", ed.Mode())
	if reg := ed.Recorder().RecordingRegister(); reg != 0 {
		bar += fmt.Sprintf(" recording @%c", reg)
	}
	if status != "" {
		bar += "  " + status
	}
	barStyle := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(bar) {
			r = rune(bar[x])
		}
		screen.SetContent(x, height-1, r, nil, barStyle)
	}

	line, col := ed.CaretLineCol()
	screen.ShowCursor(col, line)
	screen.Show()
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vimbridge - modal command layer for host editors\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vimbridge [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys: Ctrl-S saves, Ctrl-Q quits.\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vimbridge %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		opts.filePath = flag.Arg(0)
	}
	return opts
}
