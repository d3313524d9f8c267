package walkscan

import (
	"sync"

	"github.com/utakotoba/doto/internal/domain"
)

// collector is the single mutex-guarded sink every worker flushes marks
// and warnings into. A mutex (rather than a lock-free structure) is fine
// here because flushes happen once per completed file, not once per
// mark: the common case of many marks in one file costs one lock
// acquisition, not many.
type collector struct {
	mu       sync.Mutex
	marks    []domain.Mark
	warnings []domain.ScanWarning
}

func (c *collector) pushMarks(marks []domain.Mark) {
	if len(marks) == 0 {
		return
	}
	c.mu.Lock()
	c.marks = append(c.marks, marks...)
	c.mu.Unlock()
}

func (c *collector) pushWarning(w domain.ScanWarning, progress domain.ProgressReporter) {
	if progress != nil {
		progress.OnWarning(w)
	}
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

func (c *collector) drain() ([]domain.Mark, []domain.ScanWarning) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.marks, c.warnings
}

func reportFileScanned(progress domain.ProgressReporter, path string) {
	if progress != nil {
		progress.OnFileScanned(path)
	}
}

func reportFileSkipped(progress domain.ProgressReporter, path string, reason domain.SkipReason) {
	if progress != nil {
		progress.OnFileSkipped(path, reason)
	}
}
