// Package runner drives one flatten pass: scan, plan, then either preview
// the renames or perform them, reporting per file and summarizing at the end.
package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnyUserName/imgflat-cli/internal/naming"
	"github.com/AnyUserName/imgflat-cli/internal/plan"
	"github.com/AnyUserName/imgflat-cli/internal/scan"
)

// Config holds the parameters for a single run.
type Config struct {
	// Root is the absolute reference directory, captured once at start.
	Root string
	// DryRun reports intended renames without touching the filesystem.
	DryRun bool
	// Verbose adds per-file notes for skipped entries.
	Verbose bool
	// Out receives all report output.
	Out io.Writer
}

// Stats aggregates the outcome of a run.
type Stats struct {
	Found     int // matching files discovered
	Previewed int // renames reported in dry-run mode
	Renamed   int // renames performed
	Skipped   int // files whose name already matches the proposal
	Failed    int // renames attempted and failed
}

// Run executes one flatten pass. Only a scan failure is returned as an
// error; per-file rename failures are reported on cfg.Out and counted in
// Stats, and never abort the batch.
func Run(cfg Config) (Stats, error) {
	var stats Stats

	mode := "execute"
	if cfg.DryRun {
		mode = "preview (dry-run)"
	}
	fmt.Fprintf(cfg.Out, "imgflat: root %s\n", cfg.Root)
	fmt.Fprintf(cfg.Out, "imgflat: mode %s\n\n", mode)

	sources, err := scan.Scan(cfg.Root)
	if err != nil {
		return stats, fmt.Errorf("scan %s: %w", cfg.Root, err)
	}
	stats.Found = len(sources)

	if len(sources) == 0 {
		fmt.Fprintf(cfg.Out, "No .jpg/.jpeg files found under %s\n", cfg.Root)
		printSummary(cfg.Out, cfg.DryRun, stats)
		return stats, nil
	}

	entries := plan.Build(cfg.Root, sources)
	for _, e := range entries {
		if e.NoOp() {
			stats.Skipped++
			if cfg.Verbose {
				fmt.Fprintf(cfg.Out, "skip:   %s (name unchanged)\n", e.Source.AbsPath)
			}
			continue
		}
		if cfg.DryRun {
			previewEntry(cfg.Out, e)
			stats.Previewed++
			continue
		}
		executeEntry(cfg.Out, e, &stats)
	}

	printSummary(cfg.Out, cfg.DryRun, stats)
	return stats, nil
}

func previewEntry(out io.Writer, e plan.Entry) {
	fmt.Fprintf(out, "would rename: %s -> %s\n",
		e.Source.AbsPath, filepath.Join(e.Source.Dir, e.Proposed))
}

// executeEntry resolves conflicts against the live directory and performs
// the rename. Failures are reported and counted, never propagated.
func executeEntry(out io.Writer, e plan.Entry, stats *Stats) {
	final, err := naming.ResolveConflict(e.Source.Dir, e.Proposed)
	if err != nil {
		fmt.Fprintf(out, "error:  %s: %v\n", e.Source.AbsPath, err)
		stats.Failed++
		return
	}
	if err := os.Rename(e.Source.AbsPath, filepath.Join(e.Source.Dir, final)); err != nil {
		fmt.Fprintf(out, "error:  %s: %v\n", e.Source.AbsPath, err)
		stats.Failed++
		return
	}
	fmt.Fprintf(out, "renamed: %s -> %s\n", e.Source.Name, final)
	stats.Renamed++
}

func printSummary(out io.Writer, dryRun bool, stats Stats) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Found:    %d\n", stats.Found)
	if dryRun {
		fmt.Fprintf(out, "  Planned:  %d (no files were modified)\n", stats.Previewed)
	} else {
		fmt.Fprintf(out, "  Renamed:  %d\n", stats.Renamed)
	}
	fmt.Fprintf(out, "  Skipped:  %d\n", stats.Skipped)
	if stats.Failed > 0 {
		fmt.Fprintf(out, "  Failed:   %d\n", stats.Failed)
	}
}
