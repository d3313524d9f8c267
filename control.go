package doto

import "github.com/utakotoba/doto/internal/domain"

// ProgressReporter receives scan events as they happen. All methods are
// called from arbitrary worker goroutines and must be safe for
// concurrent use.
type ProgressReporter = domain.ProgressReporter

// NoopProgress implements ProgressReporter with no-op methods.
type NoopProgress = domain.NoopProgress

// CancellationToken is a cooperative, goroutine-safe cancel flag.
type CancellationToken = domain.CancellationToken

// NewCancellationToken returns a token that is not cancelled.
func NewCancellationToken() *CancellationToken {
	return domain.NewCancellationToken()
}
