package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ResolveConflict returns a leaf filename that does not currently exist in
// dir. If name is free it is returned unchanged; otherwise "<base> (<n>)<ext>"
// is probed for n = 1, 2, ... until a free name is found. The check is
// advisory: nothing prevents another process from claiming the name between
// the probe and the rename.
func ResolveConflict(dir, name string) (string, error) {
	free, err := nameFree(dir, name)
	if err != nil {
		return "", err
	}
	if free {
		return name, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		free, err := nameFree(dir, candidate)
		if err != nil {
			return "", err
		}
		if free {
			return candidate, nil
		}
	}
}

func nameFree(dir, name string) (bool, error) {
	_, err := os.Lstat(filepath.Join(dir, name))
	if err == nil {
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	return false, fmt.Errorf("probe %s: %w", name, err)
}
