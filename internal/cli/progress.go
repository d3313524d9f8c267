package cli

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/utakotoba/doto"
)

// DeferredProgress implements doto.ProgressReporter but only starts
// printing once a scan survives longer than delay and stderr is a
// terminal, so short scans stay quiet — matching the original CLI's
// indicatif-based spinner that only appears for slow scans. No spinner
// library appears anywhere in the example corpus, so this degrades to a
// single rewritten status line using a carriage return instead of
// bringing in an unfounded dependency.
type DeferredProgress struct {
	out     io.Writer
	active  atomic.Bool
	done    atomic.Bool
	matches atomic.Uint64
	mu      sync.Mutex
	timer   *time.Timer
}

var _ doto.ProgressReporter = (*DeferredProgress)(nil)

// NewDeferredProgress returns a progress reporter that starts showing
// status on stderr after delay, provided stderr is a terminal and the
// scan hasn't already finished.
func NewDeferredProgress(delay time.Duration) *DeferredProgress {
	p := &DeferredProgress{out: os.Stderr}
	if !isTerminal(os.Stderr) {
		p.done.Store(true)
		return p
	}
	p.timer = time.AfterFunc(delay, func() {
		if !p.done.Load() {
			p.active.Store(true)
			fmt.Fprint(p.out, "scanning...\r")
		}
	})
	return p
}

func (p *DeferredProgress) OnFileScanned(string) {}

func (p *DeferredProgress) OnFileSkipped(string, doto.SkipReason) {}

func (p *DeferredProgress) OnMatch(doto.Mark) {
	n := p.matches.Add(1)
	if p.active.Load() && n%100 == 0 {
		p.mu.Lock()
		fmt.Fprintf(p.out, "scanning... %d matches\r", n)
		p.mu.Unlock()
	}
}

func (p *DeferredProgress) OnWarning(doto.ScanWarning) {}

func (p *DeferredProgress) OnCancelled() {
	p.Finish()
}

// Finish stops the spinner and clears its line if it was active.
func (p *DeferredProgress) Finish() {
	p.done.Store(true)
	if p.timer != nil {
		p.timer.Stop()
	}
	if p.active.Load() {
		fmt.Fprint(p.out, "\r\033[K")
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
