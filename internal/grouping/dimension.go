// Package grouping implements dimension-value extraction, the sort
// pipeline (flat and tree modes), and folder-key resolution shared with
// internal/filterengine.
package grouping

import (
	"path/filepath"
	"strings"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/markkind"
)

// ExtractDimensionValue returns the string value of dim for mark, given
// the configured roots (needed for the Folder dimension) and the stage's
// own configuration (needed for Mark priority overrides and Folder
// depth). It reports false only for a Dimension value it does not know;
// every mark yields a Mark value (see ExtractMarkValue).
func ExtractDimensionValue(stage domain.DimensionStage, mark domain.Mark, roots []string) (string, bool) {
	switch stage.Dim {
	case domain.DimMark:
		return ExtractMarkValue(mark)
	case domain.DimLanguage:
		return mark.Language, true
	case domain.DimPath:
		return *mark.Path, true
	case domain.DimFolder:
		return FolderKey(*mark.Path, roots, stage.Folder.Depth), true
	default:
		return "", false
	}
}

// ExtractMarkValue returns the mark's kind as its Mark-dimension value
// and always reports true. Every mark produced by internal/markscan.Find
// already has one of the six canonical names. A caller-supplied kind
// outside that set is returned unchanged (its own group key), and an
// empty kind is returned as markkind.Unranked.
func ExtractMarkValue(mark domain.Mark) (string, bool) {
	if _, ok := markkind.DefaultPriorities[mark.MarkKind]; ok {
		return mark.MarkKind, true
	}
	if mark.MarkKind == "" {
		return markkind.Unranked, true
	}
	return mark.MarkKind, true
}

// FolderKey computes the Folder dimension's grouping key for path: the
// root-relative parent directory, truncated to depth path components.
// If no configured root is a prefix of path, it uses path's own parent
// directory instead, truncated the same way (a leading separator is
// dropped). depth == 0 yields an empty key (grouping
// everything under one root folder bucket).
func FolderKey(path string, roots []string, depth int) string {
	rel := path
	for _, root := range roots {
		cleaned := filepath.Clean(root)
		if cleaned == "." {
			continue
		}
		if p, ok := stripPrefix(path, cleaned); ok {
			rel = p
			break
		}
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return ""
	}
	return truncateComponents(dir, depth)
}

func stripPrefix(path, root string) (string, bool) {
	if path == root {
		return "", true
	}
	prefix := root + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return path[len(prefix):], true
	}
	return "", false
}

func truncateComponents(dir string, depth int) string {
	if depth <= 0 {
		return ""
	}
	var parts []string
	for _, p := range strings.Split(filepath.ToSlash(dir), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) > depth {
		parts = parts[:depth]
	}
	return filepath.Join(parts...)
}
