package montecarlo

import "errors"

var (
	// ErrInvalidParameter is returned when a caller supplies a count,
	// distribution parameter, target or policy outside its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned when a summary or percentile is requested
	// over zero outcomes.
	ErrEmptyInput = errors.New("empty input")
)
