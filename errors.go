package memorize

import "errors"

// Sentinel errors for the memorize package.
// Use errors.Is to check: errors.Is(err, memorize.ErrUnknownCard)
var (
	ErrInvalidPairCount = errors.New("memorize: pair count must not be negative")
	ErrNoContentSource  = errors.New("memorize: no content source")
	ErrUnknownCard      = errors.New("memorize: unknown card")
	ErrInvalidConfig    = errors.New("memorize: invalid config")
	ErrInvalidPhase     = errors.New("memorize: invalid phase")
	ErrInvalidOutcome   = errors.New("memorize: invalid outcome")
)
