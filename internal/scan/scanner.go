package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Source represents a discovered JPEG file.
type Source struct {
	// AbsPath is the absolute path to the file on disk.
	AbsPath string
	// Dir is the absolute path of the containing directory.
	Dir string
	// Name is the base filename.
	Name string
	// Size is the file size in bytes.
	Size int64
}

// jpegExtensions lists recognized extensions (lowercase, with leading dot).
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// Scan walks root and returns all JPEG files under it, including files in
// hidden directories, sorted by absolute path for deterministic processing
// order. A walk error aborts the scan.
func Scan(root string) ([]Source, error) {
	var sources []Source

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !jpegExtensions[ext] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		sources = append(sources, Source{
			AbsPath: path,
			Dir:     filepath.Dir(path),
			Name:    d.Name(),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].AbsPath < sources[j].AbsPath
	})
	return sources, nil
}
