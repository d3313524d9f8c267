package doto

import "github.com/utakotoba/doto/internal/domain"

// ErrEmptyRoots is returned by Build when no root directories were configured.
var ErrEmptyRoots = domain.ErrEmptyRoots

// InvalidRegexError wraps a regexp compile failure for a configured
// detection pattern.
type InvalidRegexError = domain.InvalidRegexError

// InvalidPatternError wraps a glob compile failure for a configured
// include/exclude pattern.
type InvalidPatternError = domain.InvalidPatternError
