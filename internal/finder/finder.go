// Package finder discovers candidate image files for theme generation and
// ranks them against interactive search queries.
package finder

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/extract"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".git":         true,
}

// Find walks root and returns every supported image file, sorted by path.
func Find(root string) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skipDirs[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if extract.Supported(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, core.ErrIO(core.CodeImageDecodeFailed, "walking "+root).WithCause(err)
	}
	sort.Strings(found)
	return found, nil
}

// Filter ranks paths against a fuzzy query, best match first. An empty
// query returns the input unchanged.
func Filter(paths []string, query string) []string {
	if strings.TrimSpace(query) == "" {
		return paths
	}
	matches := fuzzy.Find(query, paths)
	ranked := make([]string, 0, len(matches))
	for _, m := range matches {
		ranked = append(ranked, paths[m.Index])
	}
	return ranked
}
