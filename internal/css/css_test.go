package css

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/theme"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLocate_ExplicitPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "theme.css", ":root {}")

	got, err := Locate(dir, "theme.css")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	// Absolute explicit path is used as-is.
	got, err = Locate(t.TempDir(), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestLocate_ExplicitMissing(t *testing.T) {
	t.Parallel()

	_, err := Locate(t.TempDir(), "nope.css")
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatNotFound))
}

func TestLocate_ConventionalOrder(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "style.css", "")
	want := writeFile(t, dir, "src/index.css", "")

	// src/index.css outranks style.css.
	got, err := Locate(dir, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocate_NothingFound(t *testing.T) {
	t.Parallel()

	_, err := Locate(t.TempDir(), "")
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatIO))
}

func TestMergeRoot_ReplacesExisting(t *testing.T) {
	t.Parallel()

	in := `body { margin: 0; }

:root {
  --background: hsl(0, 0%, 100%);
  --spacing: 4px;
}
`
	out := MergeRoot(in, []theme.Declaration{
		{Name: "--background", Value: "hsl(220, 40%, 5%)"},
	})

	assert.Contains(t, out, "--background: hsl(220, 40%, 5%);")
	assert.NotContains(t, out, "hsl(0, 0%, 100%)")
	// Untouched declarations and rules survive.
	assert.Contains(t, out, "--spacing: 4px;")
	assert.Contains(t, out, "body { margin: 0; }")
}

func TestMergeRoot_AppendsMissing(t *testing.T) {
	t.Parallel()

	in := ":root {\n  --background: #fff;\n}\n"
	out := MergeRoot(in, []theme.Declaration{
		{Name: "--background", Value: "#000"},
		{Name: "--primary", Value: "#6366f1"},
		{Name: "--radius", Value: "0.50rem"},
	})

	assert.Contains(t, out, "--background: #000;")
	assert.Contains(t, out, "--primary: #6366f1;")
	assert.Contains(t, out, "--radius: 0.50rem;")

	// Appended declarations stay inside the block.
	closing := strings.Index(out, "}")
	assert.Greater(t, closing, strings.Index(out, "--radius"))
}

func TestMergeRoot_NoRootBlock(t *testing.T) {
	t.Parallel()

	in := "body { color: red; }\n"
	out := MergeRoot(in, []theme.Declaration{{Name: "--primary", Value: "#123456"}})

	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "  --primary: #123456;")
	assert.True(t, strings.Index(out, "body") < strings.Index(out, ":root"))
}

func TestMergeRoot_EmptyContent(t *testing.T) {
	t.Parallel()

	out := MergeRoot("", []theme.Declaration{{Name: "--ring", Value: "#fff"}})
	assert.Contains(t, out, ":root {")
	assert.Contains(t, out, "--ring: #fff;")
}

func TestMergeRoot_PreservesIndentation(t *testing.T) {
	t.Parallel()

	in := ":root {\n\t--background: #fff;\n}\n"
	out := MergeRoot(in, []theme.Declaration{{Name: "--border", Value: "#ccc"}})
	assert.Contains(t, out, "\t--border: #ccc;")
}

func TestMergeRoot_SkipsPseudoRootInSelector(t *testing.T) {
	t.Parallel()

	// ":root" inside another context without a block must not be patched.
	in := "/* :root notes */\n:root {\n  --a: 1;\n}\n"
	out := MergeRoot(in, []theme.Declaration{{Name: "--b", Value: "2"}})
	assert.Contains(t, out, "--b: 2;")
	assert.Equal(t, 1, strings.Count(out, "--b: 2;"))
}

func TestMergeRoot_NestedBraces(t *testing.T) {
	t.Parallel()

	in := ":root {\n  --a: 1;\n}\n@media (prefers-color-scheme: dark) {\n  :root {\n    --a: 2;\n  }\n}\n"
	out := MergeRoot(in, []theme.Declaration{{Name: "--a", Value: "9"}})

	// Only the first :root block is rewritten.
	assert.Contains(t, out, "--a: 9;")
	assert.Contains(t, out, "--a: 2;")
	assert.NotContains(t, out, "--a: 1;")
}

func TestPatch_WritesBackupAndMerges(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	orig := ":root {\n  --background: #ffffff;\n}\n"
	path := writeFile(t, dir, "index.css", orig)

	backup, err := Patch(path, []theme.Declaration{
		{Name: "--background", Value: "hsl(230, 30%, 8%)"},
		{Name: "--foreground", Value: "hsl(0, 0%, 95%)"},
	})
	require.NoError(t, err)
	assert.Equal(t, path+BackupSuffix, backup)

	backupData, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, orig, string(backupData), "backup must hold the pre-patch content")

	patched, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(patched), "--background: hsl(230, 30%, 8%);")
	assert.Contains(t, string(patched), "--foreground: hsl(0, 0%, 95%);")
}

func TestPatch_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Patch(filepath.Join(t.TempDir(), "ghost.css"), nil)
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatIO))
}
