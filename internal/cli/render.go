package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/utakotoba/doto"
)

// snippetCache caches one file's lines at a time, since marks from the
// same file arrive contiguous after grouping and rarely need more than
// the previously opened file.
type snippetCache struct {
	path  string
	lines []string
}

func (c *snippetCache) line(path string, n uint32) string {
	if c.path != path {
		c.path = path
		c.lines = nil
		data, err := os.ReadFile(path)
		if err == nil {
			c.lines = strings.Split(string(data), "\n")
		}
	}
	idx := int(n) - 1
	if idx < 0 || idx >= len(c.lines) {
		return ""
	}
	return strings.TrimRight(c.lines[idx], "\r")
}

// RenderList writes tree to w as an indented, grouped listing: each
// GroupNode becomes a header line, each leaf mark becomes a
// "path:line:col MARK" line followed by its source snippet. fileHeader
// controls whether consecutive marks in the same file get a filename
// header line (suppressed by --no-file-header).
func RenderList(w io.Writer, tree doto.GroupTree, roots []string, fileHeader bool) {
	cache := &snippetCache{}
	renderNode(w, doto.GroupNode{Groups: tree.Groups, Items: tree.Items, Count: tree.Total()}, roots, 0, fileHeader, cache)
}

func renderNode(w io.Writer, node doto.GroupNode, roots []string, depth int, fileHeader bool, cache *snippetCache) {
	indent := strings.Repeat("  ", depth)
	if node.Key != "" {
		fmt.Fprintf(w, "%s%s (%d)\n", indent, node.Key, node.Count)
	}

	if len(node.Groups) > 0 {
		for _, child := range node.Groups {
			renderNode(w, child, roots, depth+1, fileHeader, cache)
		}
		return
	}

	lastFile := ""
	for _, m := range node.Items {
		path := relativize(*m.Path, roots)
		if fileHeader && path != lastFile {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth+1), path)
			lastFile = path
		}
		fmt.Fprintf(w, "%s%s:%d:%d %s\n", strings.Repeat("  ", depth+1), path, m.Line, m.Column, m.MarkKind)
		snippet := cache.line(*m.Path, m.Line)
		if snippet != "" {
			fmt.Fprintf(w, "%s  %s\n", strings.Repeat("  ", depth+1), strings.TrimSpace(snippet))
		}
	}
}

// relativize returns path relative to whichever configured root is its
// most specific prefix, falling back to a cwd-relative path, then the
// basename if neither applies.
func relativize(path string, roots []string) string {
	best := ""
	for _, root := range roots {
		cleaned := filepath.Clean(root)
		rel, err := filepath.Rel(cleaned, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			continue
		}
		if best == "" || len(rel) < len(best) {
			best = rel
		}
	}
	if best != "" {
		return best
	}
	if cwd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(cwd, path); err == nil {
			return rel
		}
	}
	return filepath.Base(path)
}

// RenderPlain writes a flat ScanResult as "path:line:col MARK" lines,
// one per mark, used by the non-grouped `doto --flat` path.
func RenderPlain(w io.Writer, result doto.ScanResult, roots []string) {
	bw := bufio.NewWriter(w)
	defer bw.Flush()
	for _, m := range result.Marks {
		fmt.Fprintf(bw, "%s:%d:%d %s\n", relativize(*m.Path, roots), m.Line, m.Column, m.MarkKind)
	}
}
