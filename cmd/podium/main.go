package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/vanderheijden86/podium/pkg/config"
	"github.com/vanderheijden86/podium/pkg/debug"
	"github.com/vanderheijden86/podium/pkg/deck"
	"github.com/vanderheijden86/podium/pkg/metrics"
	"github.com/vanderheijden86/podium/pkg/ui"
	"github.com/vanderheijden86/podium/pkg/version"
	"github.com/vanderheijden86/podium/pkg/watcher"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultDeck = "slides.md"

func main() {
	cpuProfile := flag.String("cpu-profile", "", "Write CPU profile to file")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	configFlag := flag.String("config", "", "Config file (default ~/.config/podium/config.yaml)")
	notesFlag := flag.String("notes", "", "YAML speaker notes file (default <deck>.notes.yaml when present)")
	kioskFlag := flag.Duration("kiosk", 0, "Auto-advance every DURATION, looping back to the first slide")
	outlineFlag := flag.Bool("outline", false, "Print the deck outline as JSON and exit")
	plainFlag := flag.Bool("plain", false, "Present in line mode on stdin/stdout")
	metricsFlag := flag.Bool("metrics", false, "Print load and render timings as JSON to stderr on exit")
	flag.Parse()

	if *metricsFlag {
		defer writeMetrics()
	}

	// CPU profiling support
	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not create CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Could not start CPU profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	if *help {
		fmt.Println("Usage: podium [options] [deck.md]")
		fmt.Println("\nPresent a markdown slide deck in the terminal.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("podium %s\n", version.Version)
		os.Exit(0)
	}

	deckPath := defaultDeck
	if flag.NArg() > 0 {
		deckPath = flag.Arg(0)
	}
	notesPath := *notesFlag
	if notesPath == "" {
		notesPath = sidecarNotesPath(deckPath)
	}

	cfg, err := loadConfig(*configFlag, *kioskFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	done := debug.LogEnterExit("load deck")
	bundle, err := deck.LoadBundle(context.Background(), deckPath, notesPath)
	done()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading deck: %v\n", err)
		if errors.Is(err, deck.ErrEmptyDeck) {
			fmt.Fprintln(os.Stderr, "Separate slides with a line containing only ---.")
		}
		os.Exit(1)
	}

	if *outlineFlag {
		if err := deck.WriteOutlineJSON(os.Stdout, deck.BuildOutline(deckPath, bundle.Registry, bundle.Notes)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rememberDeck(*configFlag, deckPath)

	if *plainFlag {
		if err := runPlain(bundle, cfg, os.Stdin, os.Stdout, plainPrompter); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	w := startWatcher(deckPath, notesPath)
	if w != nil {
		defer w.Stop()
	}

	m, err := ui.NewModel(bundle, ui.Options{
		Config:    cfg,
		DeckPath:  deckPath,
		Watcher:   w,
		AltScreen: tty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runTUIProgram(m, tty && cfg.UI.Fullscreen); err != nil {
		fmt.Printf("Error running podium: %v\n", err)
		os.Exit(1)
	}
}

func writeMetrics() {
	if err := metrics.Snapshot().WriteJSON(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// loadConfig resolves configuration with flags over env over file over
// defaults. A missing or unreadable file is not fatal; a bad environment
// value is.
func loadConfig(path string, kiosk time.Duration) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		// Non-fatal: continue without config
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if kiosk < 0 {
		return cfg, fmt.Errorf("--kiosk must be positive, got %v", kiosk)
	}
	if kiosk > 0 {
		cfg.Kiosk.Enabled = true
		cfg.Kiosk.Interval = kiosk
	}
	return cfg, nil
}

// sidecarNotesPath returns "<deck>.notes.yaml" when that file exists.
func sidecarNotesPath(deckPath string) string {
	candidate := strings.TrimSuffix(deckPath, filepath.Ext(deckPath)) + ".notes.yaml"
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// rememberDeck records deckPath in the recent list of the config file.
// The file is reloaded so env and flag overrides never persist, and it is
// left alone when it cannot be parsed. Best-effort.
func rememberDeck(configPath, deckPath string) {
	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		debug.Log("not saving recent decks: %v", err)
		return
	}

	cfg.AddRecent(deckPath)
	if configPath != "" {
		err = config.SaveTo(cfg, configPath)
	} else {
		err = config.Save(cfg)
	}
	debug.LogIf(err != nil, "saving recent decks: %v", err)
}

// startWatcher watches the deck and its notes file. Failures leave the
// presenter running without change notices.
func startWatcher(paths ...string) *watcher.Watcher {
	var files []string
	for _, p := range paths {
		if p != "" {
			files = append(files, p)
		}
	}
	w, err := watcher.NewWatcher(files,
		watcher.WithOnError(func(err error) {
			debug.Log("watcher: %v", err)
		}),
	)
	if err != nil {
		debug.Log("watcher: %v", err)
		return nil
	}
	if err := w.Start(); err != nil {
		debug.Log("watcher start: %v", err)
		return nil
	}
	return w
}

func runTUIProgram(m ui.Model, altScreen bool) error {
	opts := []tea.ProgramOption{
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, opts...)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set PODIUM_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("PODIUM_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
