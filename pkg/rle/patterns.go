package rle

import (
	"embed"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"sparse-life/pkg/life"
)

//go:embed patterns/*.rle
var patternFiles embed.FS

// Decoded once per process; a bundled pattern's cells never change.
var bundled = sync.OnceValue(loadBundled)

func loadBundled() map[string][]life.Point {
	out := make(map[string][]life.Point)
	entries, err := fs.ReadDir(patternFiles, "patterns")
	if err != nil {
		return out
	}
	for _, e := range entries {
		data, err := patternFiles.ReadFile("patterns/" + e.Name())
		if err != nil {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".rle")
		out[name] = Decode(string(data))
	}
	return out
}

// Pattern returns the decoded cells of a bundled pattern. Callers must not
// mutate the returned slice; it is shared between lookups.
func Pattern(name string) ([]life.Point, bool) {
	cells, ok := bundled()[name]
	return cells, ok
}

// Names lists the bundled pattern names in sorted order.
func Names() []string {
	catalogue := bundled()
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
