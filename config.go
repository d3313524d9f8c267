package doto

import (
	"errors"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/utakotoba/doto/internal/domain"
	"github.com/utakotoba/doto/internal/markkind"
)

var errInvalidGlobSyntax = errors.New("invalid glob pattern syntax")

const defaultReadBufferSize = 64 * 1024
const minReadBufferSize = 8 * 1024

// ScanConfig is the immutable, validated configuration for a scan.
// Construct one with ScanConfigBuilder.
type ScanConfig struct {
	roots           []string
	regexPattern    string
	regex           *regexp.Regexp
	include         []string
	exclude         []string
	followGitignore bool
	includeHidden   bool
	builtinExcludes bool
	maxFileSize     int64
	threads         int
	readBufferSize  int
	sortConfig      SortConfig
	filterConfig    FilterConfig
	progress        ProgressReporter
	cancellation    *CancellationToken
}

func (c ScanConfig) Roots() []string                 { return c.roots }
func (c ScanConfig) MaxFileSize() int64              { return c.maxFileSize }
func (c ScanConfig) Threads() int                    { return c.threads }
func (c ScanConfig) ReadBufferSize() int             { return c.readBufferSize }
func (c ScanConfig) SortConfigValue() SortConfig     { return c.sortConfig }
func (c ScanConfig) FilterConfigValue() FilterConfig { return c.filterConfig }

// WithProgress returns a copy of c with its progress reporter replaced,
// leaving every other field (including unexported ones like the
// compiled regex and ignore globs) untouched. Exported so CLI callers
// can attach a reporter after Build without having to re-specify every
// option through the builder.
func (c ScanConfig) WithProgress(p ProgressReporter) ScanConfig {
	c.progress = p
	return c
}

// WithCancellation returns a copy of c with its cancellation token replaced.
func (c ScanConfig) WithCancellation(t *CancellationToken) ScanConfig {
	c.cancellation = t
	return c
}

// ScanConfigBuilder builds a ScanConfig fluently.
type ScanConfigBuilder struct {
	roots           []string
	regexPattern    string
	include         []string
	exclude         []string
	followGitignore bool
	includeHidden   bool
	builtinExcludes bool
	maxFileSize     int64
	threads         int
	readBufferSize  int
	sortConfig      SortConfig
	filterConfig    FilterConfig
	progress        ProgressReporter
	cancellation    *CancellationToken
}

// NewScanConfigBuilder returns a builder seeded with the same defaults
// as the original implementation: follow .gitignore, skip hidden files,
// apply built-in excludes, a 64 KiB read buffer, and the default
// [Mark, Language] sort pipeline.
func NewScanConfigBuilder() *ScanConfigBuilder {
	return &ScanConfigBuilder{
		followGitignore: true,
		includeHidden:   false,
		builtinExcludes: true,
		readBufferSize:  defaultReadBufferSize,
		sortConfig:      DefaultSortConfig(),
	}
}

func (b *ScanConfigBuilder) Root(root string) *ScanConfigBuilder {
	b.roots = append(b.roots, root)
	return b
}

func (b *ScanConfigBuilder) Roots(roots ...string) *ScanConfigBuilder {
	b.roots = append(b.roots, roots...)
	return b
}

func (b *ScanConfigBuilder) Regex(pattern string) *ScanConfigBuilder {
	b.regexPattern = pattern
	return b
}

func (b *ScanConfigBuilder) Include(patterns ...string) *ScanConfigBuilder {
	b.include = append(b.include, patterns...)
	return b
}

func (b *ScanConfigBuilder) Exclude(patterns ...string) *ScanConfigBuilder {
	b.exclude = append(b.exclude, patterns...)
	return b
}

func (b *ScanConfigBuilder) FollowGitignore(v bool) *ScanConfigBuilder {
	b.followGitignore = v
	return b
}

func (b *ScanConfigBuilder) IncludeHidden(v bool) *ScanConfigBuilder {
	b.includeHidden = v
	return b
}

func (b *ScanConfigBuilder) BuiltinExcludes(v bool) *ScanConfigBuilder {
	b.builtinExcludes = v
	return b
}

func (b *ScanConfigBuilder) MaxFileSize(n int64) *ScanConfigBuilder {
	b.maxFileSize = n
	return b
}

func (b *ScanConfigBuilder) Threads(n int) *ScanConfigBuilder {
	b.threads = n
	return b
}

// ReadBufferSize sets the per-file read buffer size; values below 8 KiB
// are clamped up to 8 KiB at Build time.
func (b *ScanConfigBuilder) ReadBufferSize(n int) *ScanConfigBuilder {
	b.readBufferSize = n
	return b
}

func (b *ScanConfigBuilder) SortPipeline(stages ...DimensionStage) *ScanConfigBuilder {
	b.sortConfig = SortConfig{Pipeline: stages}
	return b
}

func (b *ScanConfigBuilder) SortConfigValue(cfg SortConfig) *ScanConfigBuilder {
	b.sortConfig = cfg
	return b
}

func (b *ScanConfigBuilder) FilterConfigValue(cfg FilterConfig) *ScanConfigBuilder {
	b.filterConfig = cfg
	return b
}

func (b *ScanConfigBuilder) ProgressReporter(p ProgressReporter) *ScanConfigBuilder {
	b.progress = p
	return b
}

func (b *ScanConfigBuilder) CancellationToken(t *CancellationToken) *ScanConfigBuilder {
	b.cancellation = t
	return b
}

// Build validates the builder and produces an immutable ScanConfig.
func (b *ScanConfigBuilder) Build() (ScanConfig, error) {
	if len(b.roots) == 0 {
		return ScanConfig{}, domain.ErrEmptyRoots
	}

	re := markkind.DefaultRegex
	pattern := b.regexPattern
	if pattern != "" {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return ScanConfig{}, &InvalidRegexError{Pattern: pattern, Err: err}
		}
		re = compiled
	}

	for _, p := range append(append([]string{}, b.include...), b.exclude...) {
		if !doublestar.ValidatePattern(p) {
			return ScanConfig{}, &InvalidPatternError{Pattern: p, Err: errInvalidGlobSyntax}
		}
	}

	bufSize := b.readBufferSize
	if bufSize < minReadBufferSize {
		bufSize = minReadBufferSize
	}

	return ScanConfig{
		roots:           b.roots,
		regexPattern:    pattern,
		regex:           re,
		include:         b.include,
		exclude:         b.exclude,
		followGitignore: b.followGitignore,
		includeHidden:   b.includeHidden,
		builtinExcludes: b.builtinExcludes,
		maxFileSize:     b.maxFileSize,
		threads:         b.threads,
		readBufferSize:  bufSize,
		sortConfig:      b.sortConfig,
		filterConfig:    b.filterConfig,
		progress:        b.progress,
		cancellation:    b.cancellation,
	}, nil
}
