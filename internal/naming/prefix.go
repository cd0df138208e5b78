// Package naming turns directory locations into filename prefixes and
// resolves collisions against files already on disk.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// separatorRun matches one or more path separators, either style.
var separatorRun = regexp.MustCompile(`[/\\]+`)

// DirPrefix returns the underscore-joined path segments between root and dir,
// or "" when dir is root itself. The root prefix is matched case-insensitively.
// When dir does not live under root (e.g. a different volume), only the volume
// qualifier is stripped and the remainder is used; the result is then a
// best-effort name rather than a true relative path.
func DirPrefix(root, dir string) string {
	rel := dir
	if len(dir) >= len(root) && strings.EqualFold(dir[:len(root)], root) {
		rel = dir[len(root):]
	} else {
		rel = dir[len(filepath.VolumeName(dir)):]
	}

	joined := separatorRun.ReplaceAllString(rel, "_")
	return strings.Trim(joined, "_")
}

// TargetName builds the proposed filename for a file with the given prefix.
// An empty prefix means the file sits directly in the root and keeps its name.
func TargetName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}
