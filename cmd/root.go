package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/imgflat-cli/internal/runner"
)

var (
	version = "0.1.0"
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "imgflat",
	Short: "Flatten JPEG collections by folding directory paths into filenames",
	Long: `imgflat renames every .jpg/.jpeg under the current directory in place,
prefixing each filename with its folder path relative to here, separators
turned into underscores (photos/vacation/IMG1.jpg -> photos_vacation_IMG1.jpg).

Name collisions get a numeric suffix. Run with --dry-run first to see what
would change without touching anything.

Known limitation: a file is only skipped when its name already equals the
proposed name exactly. Rerunning before the renamed files are moved out of
their folders prefixes them a second time.`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE:    runFlatten,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report intended renames without performing them")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgflat %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}

func runFlatten(_ *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	root, err := filepath.Abs(wd)
	if err != nil {
		return fmt.Errorf("resolve root path: %w", err)
	}

	logVerbose("root: %s", root)

	_, err = runner.Run(runner.Config{
		Root:    root,
		DryRun:  dryRun,
		Verbose: verbose,
		Out:     os.Stdout,
	})
	return err
}

// logVerbose prints a message only when --verbose is set.
func logVerbose(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[imgflat] "+format+"\n", args...)
	}
}
