package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dermotk/heart-chase/internal/audio"
	"github.com/dermotk/heart-chase/internal/config"
	"github.com/dermotk/heart-chase/internal/platform/tui"
	"github.com/dermotk/heart-chase/internal/storage"
)

var (
	flagConfig  string
	flagMute    bool
	flagLogPath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Arrows/WASD - Move
  Enter       - Confirm menu selection
  R           - Serial override: confirm / nudge right
  Q/Ctrl+C    - Quit

Examples:
  heartchase play
  heartchase play --mute
  heartchase play --config ./my-config.yaml
  heartchase play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable tone output")
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write the game log to a file (default: discard)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	// The view needs room for the 64x40 playfield plus the status line.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.ViewCols || h < tui.ViewRows+1 {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs at least %dx%d\n",
				w, h, tui.ViewCols, tui.ViewRows+1)
		}
	}

	logger := newLogger()

	// Tone output through the default audio device; fall back to silence.
	var sink audio.Sink = audio.Muted{}
	if cfg.Audio.Enabled {
		speaker, spkErr := audio.NewSpeaker()
		if spkErr != nil {
			logger.Warn("no audio device, playing silent", "error", spkErr)
		} else {
			defer speaker.Close()
			sink = speaker
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runErr := tui.Run(cfg, sink, store, logger, seed)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger returns a file logger when --log is set, a silent one otherwise.
// Logging to the terminal would scribble over the game view.
func newLogger() *log.Logger {
	if flagLogPath == "" {
		return log.New(io.Discard)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard)
	}
	return log.NewWithOptions(f, log.Options{ReportTimestamp: true})
}
