package walkscan

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pattern is one compiled glob with its negation flag, carrying the
// directory it was declared relative to so nested ignore files only
// apply below their own directory.
type pattern struct {
	glob    string
	negated bool
	base    string // absolute directory the pattern is rooted at
}

// ignoreSet resolves whether a path should be ignored, combining
// built-in excludes, the .gitignore/.ignore files discovered while
// walking, and user include/exclude globs. No global git excludes file
// and no .git/info/exclude are read. Exclude patterns are evaluated in
// declaration order and the last match wins, so a later `!`-prefixed
// pattern re-includes a path an earlier pattern excluded. User Include
// globs are a whitelist: when any are set, a path matching none of them
// is skipped; matching one does not lift an exclude.
type ignoreSet struct {
	builtin  []pattern
	dynamic  []pattern // discovered while walking, grows as nested ignore files are found
	include  []pattern
	exclude  []pattern
	hidden   bool // true: include_hidden, i.e. never skip dotfiles for that reason alone
}

func newIgnoreSet(builtinEnabled, includeHidden bool, include, exclude []string) *ignoreSet {
	s := &ignoreSet{hidden: includeHidden}
	if builtinEnabled {
		for _, g := range builtinExcludes {
			s.builtin = append(s.builtin, pattern{glob: g})
		}
	}
	for _, g := range include {
		s.include = append(s.include, toPattern(g))
	}
	for _, g := range exclude {
		s.exclude = append(s.exclude, toPattern(g))
	}
	return s
}

func toPattern(raw string) pattern {
	if strings.HasPrefix(raw, "!") {
		return pattern{glob: strings.TrimPrefix(raw, "!"), negated: true}
	}
	return pattern{glob: raw}
}

// loadIgnoreFileInto reads a gitignore-style file and appends its
// patterns (rooted at dir) to the dynamic set.
func (s *ignoreSet) loadIgnoreFileInto(path, dir string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.dynamic = append(s.dynamic, pattern{glob: normalizeGlob(line), base: dir})
	}
}

func normalizeGlob(raw string) string {
	neg := strings.HasPrefix(raw, "!")
	g := strings.TrimPrefix(raw, "!")
	if !strings.Contains(g, "/") {
		g = "**/" + g
	} else if strings.HasPrefix(g, "/") {
		g = strings.TrimPrefix(g, "/")
	}
	if !strings.HasSuffix(g, "/**") && strings.HasSuffix(raw, "/") {
		g = g + "**"
	}
	if neg {
		g = "!" + g
	}
	return g
}

// discoverIgnoreFiles loads .gitignore/.ignore from dir into the dynamic
// set, called once per directory as the walk descends into it.
func (s *ignoreSet) discoverIgnoreFiles(dir string, followGitignore bool) {
	if !followGitignore {
		return
	}
	s.loadIgnoreFileInto(filepath.Join(dir, ".gitignore"), dir)
	s.loadIgnoreFileInto(filepath.Join(dir, ".ignore"), dir)
}

// match reports whether rel (path relative to the scan root, using
// forward slashes) matches glob.
func match(glob, rel string) bool {
	ok, err := doublestar.Match(glob, rel)
	if err != nil {
		return false
	}
	return ok
}

// shouldSkip decides whether path should be excluded, applying builtin
// excludes, discovered ignore-file patterns (each scoped to the
// directory its file was found in), and user excludes in declaration
// order, then requires a match against the user includes (when any are
// set) as a whitelist check. rel is
// path relative to the scan root (forward-slash) and base is its
// basename.
func (s *ignoreSet) shouldSkip(path, rel, base string) bool {
	if !s.hidden && strings.HasPrefix(base, ".") {
		return true
	}

	ignored := false
	apply := func(patterns []pattern) {
		for _, p := range patterns {
			g := strings.TrimPrefix(p.glob, "!")
			negated := p.negated || strings.HasPrefix(p.glob, "!")
			if match(g, rel) || match(g, base) {
				ignored = !negated
			}
		}
	}

	apply(s.builtin)
	apply(s.exclude)

	for _, p := range s.dynamic {
		relToBase, ok := stripPrefix(path, p.base)
		if !ok {
			continue
		}
		relToBase = filepath.ToSlash(relToBase)
		g := strings.TrimPrefix(p.glob, "!")
		negated := p.negated || strings.HasPrefix(p.glob, "!")
		if match(g, relToBase) || match(g, base) {
			ignored = !negated
		}
	}

	if len(s.include) > 0 {
		included := false
		for _, p := range s.include {
			if match(p.glob, rel) || match(p.glob, base) {
				included = true
			}
		}
		if !included {
			return true
		}
	}

	return ignored
}

// stripPrefix reports path relative to root when root is a directory
// prefix of path.
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
