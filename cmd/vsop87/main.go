// Command vsop87 is a terminal orrery built on the VSOP87D planetary theory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/vsop87/internal/logging"
	"github.com/litescript/vsop87/internal/orrery"
	"github.com/litescript/vsop87/internal/ui"
)

// CLI flags for headless mode
var (
	dateStr       string
	jdFlag        float64
	tableMode     bool
	jsonPath      string
	watchInterval time.Duration
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&dateStr, "date", "", "Evaluate at a UTC date (RFC 3339 or YYYY-MM-DD)")
	flag.Float64Var(&jdFlag, "jd", 0, "Evaluate at a Julian Day (overrides -date)")
	flag.BoolVar(&tableMode, "table", false, "Print positions table instead of TUI")
	flag.StringVar(&jsonPath, "json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat table output at interval (e.g., 30s)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	jdSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "jd" {
			jdSet = true
		}
	})

	jd, fixedEpoch, err := resolveEpoch(dateStr, jdFlag, jdSet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// Headless mode: no TUI
	headless := tableMode || jsonPath != "" || watchInterval > 0 ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(ctx, jd, fixedEpoch, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Debug("starting TUI at JD %.5f", jd)

	p := tea.NewProgram(ui.New(jd), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveEpoch picks the starting Julian Day from the flags. The boolean
// reports whether the user pinned an explicit epoch. jdSet distinguishes
// an explicit -jd from an absent one, so JD 0.0 itself is a valid epoch.
func resolveEpoch(date string, jd float64, jdSet bool) (float64, bool, error) {
	if jdSet {
		return jd, true, nil
	}
	if date == "" {
		return orrery.JulianDay(time.Now()), false, nil
	}

	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		t, err = time.Parse("2006-01-02", date)
	}
	if err != nil {
		return 0, false, fmt.Errorf("parse -date %q: %w", date, err)
	}
	return orrery.JulianDay(t), true, nil
}

// runHeadless handles table and JSON output without starting the TUI.
func runHeadless(ctx context.Context, jd float64, fixedEpoch bool, logger *logging.Logger) error {
	outputOnce := func(jd float64) error {
		snap := orrery.Compute(jd)

		if jsonPath != "" {
			export := snap.Export()
			if jsonPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if tableMode || jsonPath == "" {
			orrery.WriteTable(os.Stdout, snap)
		}
		return nil
	}

	// Single run
	if watchInterval == 0 {
		return outputOnce(jd)
	}

	// Watch mode: repeat at interval. A pinned epoch stays fixed;
	// otherwise the clock follows wall time.
	if err := outputOnce(jd); err != nil {
		return err
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("watch loop shutting down")
			return nil
		case <-ticker.C:
			fmt.Println()
			if !fixedEpoch {
				jd = orrery.JulianDay(time.Now())
			}
			if err := outputOnce(jd); err != nil {
				return err
			}
		}
	}
}
