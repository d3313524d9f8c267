// Package markkind defines the closed set of canonical mark names doto
// recognizes inside comments, their default priority ordering, and the
// default detection regex.
package markkind

import "regexp"

// Canonical mark names, in default priority order (lower index sorts first).
const (
	Error = "ERROR"
	Warn  = "WARN"
	Fixme = "FIXME"
	Todo  = "TODO"
	Note  = "NOTE"
	Info  = "INFO"

	// Unranked is the synthetic Mark-dimension key for a mark with an
	// empty kind. Scans never produce one: markscan.Find only emits the
	// six canonical names above, with the default or a custom regex.
	Unranked = "unranked"
)

// DefaultPriorities maps each canonical name to its default sort priority.
var DefaultPriorities = map[string]int{
	Error: 0,
	Warn:  1,
	Fixme: 2,
	Todo:  3,
	Note:  4,
	Info:  5,
}

// DefaultRegex is the detection pattern used when ScanConfig does not
// override it: any of the six canonical names, case-insensitive, as a
// whole word.
var DefaultRegex = regexp.MustCompile(`(?i)\b(?:ERROR|WARN|FIXME|TODO|NOTE|INFO)\b`)

var canonical = map[string]string{
	"ERROR": Error,
	"WARN":  Warn,
	"FIXME": Fixme,
	"TODO":  Todo,
	"NOTE":  Note,
	"INFO":  Info,
}

// Normalize maps raw matched text to one of the six canonical names.
// The match is case-insensitive; it reports false if the text is not one
// of the six recognized words.
func Normalize(raw string) (string, bool) {
	upper := toUpperASCII(raw)
	name, ok := canonical[upper]
	return name, ok
}

func toUpperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Priority returns the sort priority for mark, consulting overrides first
// (case-insensitive), then DefaultPriorities, then Unranked's priority of
// len(DefaultPriorities) so unranked marks always sort last.
func Priority(mark string, overrides map[string]int) int {
	for k, v := range overrides {
		if toUpperASCII(k) == toUpperASCII(mark) {
			return v
		}
	}
	if p, ok := DefaultPriorities[mark]; ok {
		return p
	}
	return len(DefaultPriorities)
}
