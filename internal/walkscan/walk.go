// Package walkscan walks configured root directories, resolves ignore
// rules, and dispatches each eligible file to internal/filescan through
// a bounded worker pool.
package walkscan

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/filescan"
	"github.com/utakotoba/doto/internal/langsyntax"
)

// Run walks every configured root and scans eligible files, returning
// the accumulated marks, stats, and warnings.
func Run(opts Options) (domain.ScanResult, error) {
	if len(opts.Roots) == 0 {
		return domain.ScanResult{}, domain.ErrEmptyRoots
	}

	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}

	ignore := newIgnoreSet(opts.BuiltinExcludes, opts.IncludeHidden, opts.Include, opts.Exclude)
	stats := &counters{}
	out := &collector{}

	isCancelled := func() bool {
		return opts.Cancellation != nil && opts.Cancellation.IsCancelled()
	}

	group := new(errgroup.Group)
	group.SetLimit(threads)

	for _, root := range opts.Roots {
		root := root
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if isCancelled() {
				return filepath.SkipAll
			}
			if err != nil {
				out.pushWarning(domain.ScanWarning{Path: path, Kind: domain.WarnWalk, Message: err.Error()}, opts.Progress)
				stats.recordIssue(domain.WarnWalk)
				stats.recordSkip(domain.SkipIO)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			base := filepath.Base(path)

			if d.IsDir() {
				if path != root && ignore.shouldSkip(path, rel, base) {
					return filepath.SkipDir
				}
				ignore.discoverIgnoreFiles(path, opts.FollowGitignore)
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}
			if path != root && ignore.shouldSkip(path, rel, base) {
				return nil
			}

			group.Go(func() error {
				scanOneFile(path, opts, stats, out)
				return nil
			})
			return nil
		})
		if err != nil {
			out.pushWarning(domain.ScanWarning{Path: root, Kind: domain.WarnWalk, Message: err.Error()}, opts.Progress)
			stats.recordIssue(domain.WarnWalk)
		}
	}

	_ = group.Wait()

	if isCancelled() && stats.markCancelled() {
		if opts.Progress != nil {
			opts.Progress.OnCancelled()
		}
	}

	marks, warnings := out.drain()
	result := domain.ScanResult{
		Marks:    marks,
		Stats:    stats.snapshot(),
		Warnings: warnings,
	}
	return result, nil
}

func scanOneFile(path string, opts Options, stats *counters, out *collector) {
	isCancelled := func() bool {
		return opts.Cancellation != nil && opts.Cancellation.IsCancelled()
	}
	if isCancelled() {
		return
	}

	info, err := os.Lstat(path)
	if err != nil {
		stats.recordSkip(domain.SkipMetadata)
		out.pushWarning(domain.ScanWarning{Path: path, Kind: domain.WarnMetadata, Message: err.Error()}, opts.Progress)
		stats.recordIssue(domain.WarnMetadata)
		reportFileSkipped(opts.Progress, path, domain.SkipMetadata)
		return
	}
	if opts.MaxFileSize > 0 && info.Size() > opts.MaxFileSize {
		stats.recordSkip(domain.SkipMaxFileSize)
		reportFileSkipped(opts.Progress, path, domain.SkipMaxFileSize)
		return
	}

	if _, ok := langsyntax.ForPath(path); !ok {
		stats.recordSkip(domain.SkipUnsupportedSyntax)
		reportFileSkipped(opts.Progress, path, domain.SkipUnsupportedSyntax)
		return
	}

	language := langsyntax.LanguageTag(path)
	sharedPath := new(string)
	*sharedPath = path

	var localMarks []domain.Mark
	outcome, err := filescan.ScanFile(
		sharedPath,
		language,
		opts.ReadBufferSize,
		opts.Regex,
		isCancelled,
		opts.Progress,
		func(m domain.Mark) {
			localMarks = append(localMarks, m)
			stats.recordMatch()
		},
	)

	switch outcome.Kind {
	case filescan.Skipped:
		stats.recordSkip(outcome.Reason)
		reportFileSkipped(opts.Progress, path, outcome.Reason)
		if err != nil {
			out.pushWarning(domain.ScanWarning{Path: path, Kind: domain.WarnIO, Message: err.Error()}, opts.Progress)
			stats.recordIssue(domain.WarnIO)
		}
	case filescan.Cancelled:
		// no-op per file; the top-level walk notices cancellation too
	default: // Completed
		stats.recordScanned()
		reportFileScanned(opts.Progress, path)
		if err != nil {
			out.pushWarning(domain.ScanWarning{Path: path, Kind: domain.WarnIO, Message: err.Error()}, opts.Progress)
			stats.recordIssue(domain.WarnIO)
		}
	}

	out.pushMarks(localMarks)
}
