package errdefs

import "errors"

var (
	ErrNotFound           = errors.New("feedback not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrAnalysisParse      = errors.New("failed to parse AI response")
	ErrNoAnalyzedFeedback = errors.New("no analyzed feedback yet")
	ErrDeliveryFailure    = errors.New("digest delivery failed")
	ErrUnconfigured       = errors.New("not configured")
	ErrModelUnavailable   = errors.New("language model unavailable")
	ErrEmptyCompletion    = errors.New("language model returned an empty response")
	ErrRunNotFound        = errors.New("digest run not found")
)
