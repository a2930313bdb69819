package css

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/google/renameio/v2"

	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/fsutil"
	"github.com/davidlopes/tinge/internal/theme"
)

// BackupSuffix is appended to the stylesheet path for the pre-patch copy.
const BackupSuffix = ".bak"

// Patch merges the theme's declarations into the stylesheet's :root block,
// writing a backup of the original next to it first. The rewrite itself is
// atomic.
func Patch(path string, decls []theme.Declaration) (backupPath string, err error) {
	data, err := fsutil.ReadFileScoped(path)
	if err != nil {
		return "", core.ErrIO(core.CodeStylesheetNotFound,
			fmt.Sprintf("reading %s", path)).WithCause(err)
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	backupPath = path + BackupSuffix
	if err := renameio.WriteFile(backupPath, data, perm); err != nil {
		return "", core.ErrIO(core.CodeBackupFailed,
			fmt.Sprintf("writing backup %s", backupPath)).WithCause(err)
	}

	merged := MergeRoot(string(data), decls)
	if err := renameio.WriteFile(path, []byte(merged), perm); err != nil {
		return backupPath, core.ErrIO(core.CodeStylesheetMalformed,
			fmt.Sprintf("writing %s", path)).WithCause(err)
	}
	return backupPath, nil
}

// MergeRoot merges declarations into the first :root block of the CSS
// source: existing declarations of the same name are replaced in place,
// missing ones are appended before the closing brace. When no :root block
// exists one is appended to the end of the file.
func MergeRoot(content string, decls []theme.Declaration) string {
	start := rootBlockIndex(content)
	if start < 0 {
		var b strings.Builder
		b.WriteString(content)
		if content != "" && !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n:root {\n")
		for _, d := range decls {
			fmt.Fprintf(&b, "  %s: %s;\n", d.Name, d.Value)
		}
		b.WriteString("}\n")
		return b.String()
	}

	open := strings.Index(content[start:], "{") + start
	end := blockEnd(content, open) // index just past the closing brace
	body := content[open+1 : end-1]
	indent := detectIndent(body)

	var additions strings.Builder
	for _, d := range decls {
		re := regexp.MustCompile(`(` + regexp.QuoteMeta(d.Name) + `\s*:\s*)[^;}]*`)
		if re.MatchString(body) {
			body = re.ReplaceAllString(body, "${1}"+d.Value)
			continue
		}
		fmt.Fprintf(&additions, "%s%s: %s;\n", indent, d.Name, d.Value)
	}

	if additions.Len() > 0 {
		if !strings.HasSuffix(body, "\n") {
			body += "\n"
		}
		body += additions.String()
	}

	return content[:open+1] + body + content[end-1:]
}

// rootBlockIndex finds the position of the first top-level :root selector.
func rootBlockIndex(content string) int {
	idx := 0
	for {
		rel := strings.Index(content[idx:], ":root")
		if rel < 0 {
			return -1
		}
		pos := idx + rel
		rest := content[pos+len(":root"):]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if strings.HasPrefix(trimmed, "{") {
			return pos
		}
		idx = pos + len(":root")
	}
}

// blockEnd returns the index just past the brace matching the one at open.
func blockEnd(content string, open int) int {
	depth := 0
	for i := open; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(content)
}

// detectIndent guesses the indentation of declarations in a block body,
// defaulting to two spaces.
func detectIndent(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, "--") {
			return line[:len(line)-len(trimmed)]
		}
	}
	return "  "
}
