package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("jpegdata"), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func TestRunPreviewMutatesNothing(t *testing.T) {
	root := t.TempDir()
	orig := writeFile(t, root, "photos/vacation/IMG1.jpg")

	var out bytes.Buffer
	stats, err := Run(Config{Root: root, DryRun: true, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stats.Found != 1 || stats.Previewed != 1 || stats.Renamed != 0 {
		t.Errorf("stats: %+v", stats)
	}
	if !exists(orig) {
		t.Error("preview must not touch the file")
	}
	if exists(filepath.Join(root, "photos", "vacation", "photos_vacation_IMG1.jpg")) {
		t.Error("preview must not create the proposed file")
	}
	if !strings.Contains(out.String(), "photos_vacation_IMG1.jpg") {
		t.Errorf("output missing proposed name:\n%s", out.String())
	}
}

func TestRunExecuteRenamesInPlace(t *testing.T) {
	root := t.TempDir()
	orig := writeFile(t, root, "photos/vacation/IMG1.jpg")

	var out bytes.Buffer
	stats, err := Run(Config{Root: root, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stats.Renamed != 1 {
		t.Errorf("renamed: got %d, want 1", stats.Renamed)
	}
	if exists(orig) {
		t.Error("original name still present after rename")
	}
	if !exists(filepath.Join(root, "photos", "vacation", "photos_vacation_IMG1.jpg")) {
		t.Error("renamed file missing")
	}
}

func TestRunExecuteResolvesCollision(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "photos/vacation/IMG1.jpg")
	// Already occupies the name IMG1.jpg would be renamed to.
	writeFile(t, root, "photos/vacation/photos_vacation_IMG1.jpg")

	var out bytes.Buffer
	stats, err := Run(Config{Root: root, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if !exists(filepath.Join(root, "photos", "vacation", "photos_vacation_IMG1 (1).jpg")) {
		t.Errorf("collision not disambiguated:\n%s", out.String())
	}
	// The occupying file matches the extension set, so it is processed too.
	if stats.Renamed != 2 {
		t.Errorf("renamed: got %d, want 2", stats.Renamed)
	}
}

func TestRunSkipsFilesInRoot(t *testing.T) {
	root := t.TempDir()
	orig := writeFile(t, root, "IMG2.jpg")

	var out bytes.Buffer
	stats, err := Run(Config{Root: root, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Errorf("stats: %+v", stats)
	}
	if !exists(orig) {
		t.Error("root file must stay untouched")
	}
	if strings.Contains(out.String(), "renamed:") {
		t.Errorf("unexpected rename line:\n%s", out.String())
	}
}

func TestRunSecondPassIsNoOpAfterConsolidation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a/b/x.jpg")

	var out bytes.Buffer
	if _, err := Run(Config{Root: root, Out: &out}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	renamed := filepath.Join(root, "a", "b", "a_b_x.jpg")
	if !exists(renamed) {
		t.Fatal("first run did not rename")
	}

	// Consolidate into the root, as the tool is meant to be followed by.
	final := filepath.Join(root, "a_b_x.jpg")
	if err := os.Rename(renamed, final); err != nil {
		t.Fatalf("move: %v", err)
	}

	out.Reset()
	stats, err := Run(Config{Root: root, Out: &out})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if stats.Skipped != 1 || stats.Renamed != 0 {
		t.Errorf("second pass stats: %+v", stats)
	}
	if !exists(final) {
		t.Error("consolidated file must stay untouched")
	}
}

func TestRunEmptyTree(t *testing.T) {
	root := t.TempDir()

	var out bytes.Buffer
	stats, err := Run(Config{Root: root, Out: &out})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Found != 0 {
		t.Errorf("found: got %d", stats.Found)
	}
	if !strings.Contains(out.String(), "No .jpg/.jpeg files found") {
		t.Errorf("missing empty-result notice:\n%s", out.String())
	}
}

func TestRunMissingRootIsFatal(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(Config{Root: filepath.Join(t.TempDir(), "nope"), Out: &out})
	if err == nil {
		t.Error("expected error for inaccessible root")
	}
}

func TestRunBannerShowsRootAndMode(t *testing.T) {
	root := t.TempDir()

	var out bytes.Buffer
	if _, err := Run(Config{Root: root, DryRun: true, Out: &out}); err != nil {
		t.Fatalf("run: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, root) {
		t.Error("banner missing root path")
	}
	if !strings.Contains(s, "preview") {
		t.Error("banner missing mode")
	}
}
