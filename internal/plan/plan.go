// Package plan computes the rename mapping for a set of scanned files.
// It performs no filesystem access and no output, so the naming logic can
// be tested without mutating anything.
package plan

import (
	"github.com/AnyUserName/imgflat-cli/internal/naming"
	"github.com/AnyUserName/imgflat-cli/internal/scan"
)

// Entry pairs a scanned file with its proposed filename.
type Entry struct {
	Source   scan.Source
	Proposed string
}

// NoOp reports whether the entry leaves the filename unchanged.
// Only an exact match between proposed and current name counts: a file whose
// name merely starts with the directory-derived prefix (e.g. after a manual
// move) is not recognized and will be prefixed again on a rerun.
func (e Entry) NoOp() bool {
	return e.Proposed == e.Source.Name
}

// Build computes one entry per source, using root as the reference point for
// every prefix. Entries keep the order of sources.
func Build(root string, sources []scan.Source) []Entry {
	entries := make([]Entry, 0, len(sources))
	for _, src := range sources {
		prefix := naming.DirPrefix(root, src.Dir)
		entries = append(entries, Entry{
			Source:   src,
			Proposed: naming.TargetName(prefix, src.Name),
		})
	}
	return entries
}
