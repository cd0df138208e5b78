package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgflat-cli/internal/inspect"
)

var statsCmd = &cobra.Command{
	Use:   "stats [dir]",
	Short: "Inspect a JPEG tree: dimensions, EXIF dates, duplicate content",
	Long: `Scans a directory tree for .jpg/.jpeg files and reports image dimensions,
EXIF capture dates, corrupt files, and groups of byte-identical duplicates.
Read-only; useful before flattening and consolidating a collection.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	bar := progressbar.Default(-1, "Inspecting")
	rep, err := inspect.Inspect(root, func() { _ = bar.Add(1) })
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return err
	}

	printStatsReport(rep)
	return nil
}

func printStatsReport(rep *inspect.Report) {
	fmt.Println()
	fmt.Printf("  Root:        %s\n", rep.Root)
	fmt.Printf("  Files:       %d\n", len(rep.Files))
	fmt.Printf("  Total size:  %s\n", formatBytes(rep.TotalBytes))
	fmt.Printf("  EXIF dated:  %d / %d\n", rep.Dated, len(rep.Files))
	if rep.Corrupt > 0 {
		fmt.Printf("  Corrupt:     %d\n", rep.Corrupt)
	}
	fmt.Println()

	if first, last, ok := dateRange(rep); ok {
		fmt.Printf("  Date range:  %s – %s\n\n",
			first.Format("2006-01-02"), last.Format("2006-01-02"))
	}

	if len(rep.Duplicates) > 0 {
		fmt.Printf("  Duplicate groups (%d):\n", len(rep.Duplicates))
		for _, group := range rep.Duplicates {
			fmt.Printf("    %d× identical:\n", len(group))
			for _, rel := range group {
				fmt.Printf("      %s\n", rel)
			}
		}
		fmt.Println()
	}

	if rep.Corrupt > 0 {
		fmt.Println("  Corrupt files:")
		for _, f := range rep.Files {
			if f.Err != nil {
				fmt.Printf("    %s: %v\n", f.RelPath, f.Err)
			}
		}
		fmt.Println()
	}
}

func dateRange(rep *inspect.Report) (first, last time.Time, ok bool) {
	for _, f := range rep.Files {
		if f.TakenAt.IsZero() {
			continue
		}
		if !ok || f.TakenAt.Before(first) {
			first = f.TakenAt
		}
		if !ok || f.TakenAt.After(last) {
			last = f.TakenAt
		}
		ok = true
	}
	return first, last, ok
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
