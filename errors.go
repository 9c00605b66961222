package chrocalc

import "errors"

var (
	// ErrInvalidArgument marks configuration mistakes at a call boundary:
	// a chromosome length below the minimum, or a rate outside [0, 1].
	// These are fatal, never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyExpression is returned when a decode yields no tokens. The
	// generational loop treats it as an expected outcome and resamples.
	ErrEmptyExpression = errors.New("empty expression")

	// ErrDivisionByZero is returned when evaluation hits a zero divisor.
	// Also expected; filtered by resampling.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrLengthMismatch is returned by crossover for parents of unequal length.
	ErrLengthMismatch = errors.New("chromosome lengths differ")

	// ErrInfeasibleConfig is returned when a resample loop exhausts its
	// attempt budget without producing a valid member.
	ErrInfeasibleConfig = errors.New("configuration cannot produce valid members")
)
