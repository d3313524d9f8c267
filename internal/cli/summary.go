package cli

import (
	"fmt"
	"sort"

	"github.com/utakotoba/doto"
)

// maxDisplayResults matches the original CLI's threshold past which it
// warns instead of rendering a (likely overwhelming) full tree.
const maxDisplayResults = 76

// PushResultMessages composes the warning/skip/summary lines the
// original CLI prints after a grouped scan: propagated walk/metadata/IO
// warnings, a "too many results" notice in place of rendering when the
// tree is large, a top-3 skip-reason breakdown when verbose, and a final
// scan summary line.
func PushResultMessages(sink *MessageSink, result doto.GroupedScanResult, verbose bool) bool {
	render := true
	total := result.Tree.Total()
	if total == 0 {
		sink.Push(LevelSuccess, "no marks found")
	} else if total > maxDisplayResults {
		sink.Push(LevelWarning, fmt.Sprintf("%d results found; too many to display well in the terminal (use filters to narrow the scan)", total))
		render = false
	}

	for _, w := range result.Warnings {
		sink.Push(LevelWarning, formatWarning(w))
	}

	pushIssueSummary(sink, result.Stats)
	if verbose {
		pushSkipSummary(sink, result.Stats)
	}
	pushScanSummary(sink, result.Stats)

	return render
}

func formatWarning(w doto.ScanWarning) string {
	if w.Path == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

func pushIssueSummary(sink *MessageSink, stats doto.ScanStats) {
	if stats.WarnWalkCount == 0 && stats.WarnMetadataCount == 0 && stats.WarnIOCount == 0 {
		return
	}
	sink.Push(LevelWarning, fmt.Sprintf(
		"issues: %d walk, %d metadata, %d io",
		stats.WarnWalkCount, stats.WarnMetadataCount, stats.WarnIOCount,
	))
}

func pushSkipSummary(sink *MessageSink, stats doto.ScanStats) {
	type reason struct {
		name  string
		count uint64
	}
	reasons := []reason{
		{"max file size", stats.SkipMaxFileSizeCount},
		{"metadata error", stats.SkipMetadataCount},
		{"io error", stats.SkipIOCount},
		{"unsupported syntax", stats.SkipUnsupportedSyntaxCount},
		{"binary", stats.SkipBinaryCount},
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i].count > reasons[j].count })
	shown := 0
	for _, r := range reasons {
		if r.count == 0 || shown >= 3 {
			continue
		}
		sink.Push(LevelInfo, fmt.Sprintf("skipped %d files (%s)", r.count, r.name))
		shown++
	}
}

func pushScanSummary(sink *MessageSink, stats doto.ScanStats) {
	msg := fmt.Sprintf(
		"scanned %d files, skipped %d (%d issues), %d matches",
		stats.FilesScanned, stats.FilesSkipped, stats.SkippedIssues, stats.Matches,
	)
	if stats.Cancelled {
		msg += " (cancelled)"
	}
	sink.Push(LevelInfo, msg)
}
