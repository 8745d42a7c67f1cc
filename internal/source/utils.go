package source

import (
	"bytes"
	"path/filepath"
	"slices"
	"strings"
)

// hasCRLF reports whether content contains at least one "\r\n".
func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte("\r\n"))
}

// hasBOM reports whether content starts with the UTF-8 byte order mark.
func hasBOM(content []byte) bool {
	return bytes.HasPrefix(content, utf8BOM)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// бинпоиск: первая строка, чей '\n' стоит не раньше off
	line, _ := slices.BinarySearch(lineIdx, off)

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line + 1), Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// RelativePath returns target relative to baseDir, or the cleaned absolute
// path when target lies outside baseDir.
func RelativePath(target, baseDir string) (string, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(absTarget), nil
	}
	return normalizePath(rel), nil
}
