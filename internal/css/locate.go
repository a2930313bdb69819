// Package css locates a project stylesheet and rewrites its :root custom
// property block with generated theme values, keeping a backup of the
// original file.
package css

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/davidlopes/tinge/internal/core"
)

// conventionalPaths are checked in order when no stylesheet is given
// explicitly. They cover the common Vite/Next/plain layouts.
var conventionalPaths = []string{
	"src/index.css",
	"src/globals.css",
	"src/app/globals.css",
	"styles/globals.css",
	"css/style.css",
	"style.css",
	"index.css",
}

// Locate resolves the stylesheet to patch. An explicit path wins and must
// exist; otherwise the conventional locations under root are probed.
func Locate(root, explicit string) (string, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", core.ErrNotFound("stylesheet", path).WithCause(err)
		}
		return path, nil
	}

	for _, rel := range conventionalPaths {
		path := filepath.Join(root, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", core.ErrIO(core.CodeStylesheetNotFound,
		fmt.Sprintf("no stylesheet found under %s; pass one with --css", root))
}
