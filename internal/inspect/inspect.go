// Package inspect gathers read-only diagnostics about a JPEG tree:
// dimensions, EXIF capture dates, and duplicate content.
package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/AnyUserName/imgflat-cli/internal/hasher"
	"github.com/AnyUserName/imgflat-cli/internal/scan"
)

// hashHexLen is the truncation used for duplicate grouping.
const hashHexLen = 16

// File holds the per-file inspection result.
type File struct {
	RelPath string
	Size    int64
	Width   int
	Height  int
	TakenAt time.Time // zero when the file carries no EXIF date
	Hash    string
	Err     error // decode failure; dimensions are zero in that case
}

// Report is the aggregate outcome of one inspection pass.
type Report struct {
	Root       string
	Files      []File
	TotalBytes int64
	Corrupt    int        // files that failed to decode
	Dated      int        // files with an EXIF capture date
	Duplicates [][]string // groups of rel paths with identical content, >1 member each
}

// Inspect scans root and examines every JPEG under it. progress, when
// non-nil, is called once per examined file. Only the scan itself can fail;
// per-file decode errors are recorded on the File and counted as corrupt.
func Inspect(root string, progress func()) (*Report, error) {
	sources, err := scan.Scan(root)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	rep := &Report{Root: root}
	dupes := make(map[string][]string) // "<size>/<hash>" → rel paths

	for _, src := range sources {
		f := examine(root, src)
		rep.TotalBytes += f.Size
		if f.Err != nil {
			rep.Corrupt++
		}
		if !f.TakenAt.IsZero() {
			rep.Dated++
		}
		if f.Hash != "" {
			key := fmt.Sprintf("%d/%s", f.Size, f.Hash)
			dupes[key] = append(dupes[key], f.RelPath)
		}
		rep.Files = append(rep.Files, f)
		if progress != nil {
			progress()
		}
	}

	for _, group := range dupes {
		if len(group) > 1 {
			sort.Strings(group)
			rep.Duplicates = append(rep.Duplicates, group)
		}
	}
	sort.Slice(rep.Duplicates, func(i, j int) bool {
		return rep.Duplicates[i][0] < rep.Duplicates[j][0]
	})

	return rep, nil
}

// examine inspects a single file. Every sub-step is best-effort: a missing
// EXIF block or a failed decode degrades the result, it does not abort.
func examine(root string, src scan.Source) File {
	f := File{Size: src.Size}

	rel, err := filepath.Rel(root, src.AbsPath)
	if err != nil {
		rel = src.AbsPath
	}
	f.RelPath = filepath.ToSlash(rel)

	img, err := imaging.Open(src.AbsPath)
	if err != nil {
		f.Err = fmt.Errorf("decode: %w", err)
	} else {
		bounds := img.Bounds()
		f.Width = bounds.Dx()
		f.Height = bounds.Dy()
	}

	f.TakenAt = exifDate(src.AbsPath)

	if h, err := hashFile(src.AbsPath); err == nil {
		f.Hash = h
	}

	return f
}

// exifDate returns the EXIF capture date, or the zero time when the file has
// no usable EXIF block.
func exifDate(path string) time.Time {
	fh, err := os.Open(path)
	if err != nil {
		return time.Time{}
	}
	defer fh.Close()

	x, err := exif.Decode(fh)
	if err != nil {
		return time.Time{}
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}
	}
	return t
}

func hashFile(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()
	return hasher.ContentHashReader(fh, hashHexLen)
}
