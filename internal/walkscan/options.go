package walkscan

import (
	"regexp"

	"github.com/utakotoba/doto/internal/domain"
)

// Options is everything the walker needs, translated from the public
// ScanConfig by the root facade package (walkscan intentionally has no
// dependency on the facade, to avoid an import cycle).
type Options struct {
	Roots           []string
	Regex           *regexp.Regexp
	Include         []string
	Exclude         []string
	FollowGitignore bool
	IncludeHidden   bool
	BuiltinExcludes bool
	MaxFileSize     int64 // 0 means unlimited
	Threads         int
	ReadBufferSize  int
	Progress        domain.ProgressReporter
	Cancellation    *domain.CancellationToken
}
