package walkscan

import (
	"sync/atomic"

	"github.com/utakotoba/doto/internal/domain"
)

// counters accumulates scan statistics with lock-free atomics so every
// worker goroutine can update them without contending on a mutex.
type counters struct {
	filesScanned atomic.Uint64
	filesSkipped atomic.Uint64
	matches      atomic.Uint64
	cancelled    atomic.Bool

	skippedExpected atomic.Uint64
	skippedIssues   atomic.Uint64

	skipMaxFileSize       atomic.Uint64
	skipMetadata          atomic.Uint64
	skipIO                atomic.Uint64
	skipUnsupportedSyntax atomic.Uint64
	skipBinary            atomic.Uint64

	warnWalk     atomic.Uint64
	warnMetadata atomic.Uint64
	warnIO       atomic.Uint64
}

func (c *counters) recordScanned() {
	c.filesScanned.Add(1)
}

func (c *counters) recordMatch() {
	c.matches.Add(1)
}

func (c *counters) recordSkip(reason domain.SkipReason) {
	c.filesSkipped.Add(1)
	switch reason {
	case domain.SkipMaxFileSize:
		c.skipMaxFileSize.Add(1)
		c.skippedExpected.Add(1)
	case domain.SkipUnsupportedSyntax:
		c.skipUnsupportedSyntax.Add(1)
		c.skippedExpected.Add(1)
	case domain.SkipBinary:
		c.skipBinary.Add(1)
		c.skippedExpected.Add(1)
	case domain.SkipMetadata:
		c.skipMetadata.Add(1)
		c.skippedIssues.Add(1)
	case domain.SkipIO:
		c.skipIO.Add(1)
		c.skippedIssues.Add(1)
	}
}

func (c *counters) recordIssue(kind domain.WarningKind) {
	switch kind {
	case domain.WarnWalk:
		c.warnWalk.Add(1)
	case domain.WarnMetadata:
		c.warnMetadata.Add(1)
	case domain.WarnIO:
		c.warnIO.Add(1)
	}
}

// markCancelled transitions the counters to cancelled and reports
// whether this call performed that transition (true the first time,
// false on every subsequent call), so OnCancelled fires exactly once.
func (c *counters) markCancelled() bool {
	return c.cancelled.CompareAndSwap(false, true)
}

func (c *counters) snapshot() domain.ScanStats {
	return domain.ScanStats{
		FilesScanned:               c.filesScanned.Load(),
		FilesSkipped:               c.filesSkipped.Load(),
		Matches:                    c.matches.Load(),
		Cancelled:                  c.cancelled.Load(),
		SkippedExpected:            c.skippedExpected.Load(),
		SkippedIssues:              c.skippedIssues.Load(),
		SkipMaxFileSizeCount:       c.skipMaxFileSize.Load(),
		SkipMetadataCount:          c.skipMetadata.Load(),
		SkipIOCount:                c.skipIO.Load(),
		SkipUnsupportedSyntaxCount: c.skipUnsupportedSyntax.Load(),
		SkipBinaryCount:            c.skipBinary.Load(),
		WarnWalkCount:              c.warnWalk.Load(),
		WarnMetadataCount:          c.warnMetadata.Load(),
		WarnIOCount:                c.warnIO.Load(),
	}
}
