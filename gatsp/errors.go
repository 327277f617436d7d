package gatsp

import (
	"errors"
	"fmt"
)

// ErrConfig is the umbrella for every configuration problem. All the more
// specific configuration sentinels below match it via errors.Is.
var ErrConfig = errors.New("gatsp: invalid configuration")

var (
	ErrRateOutOfRange     = configError("rate must be within [0, 1]")
	ErrPopulationTooSmall = configError("population too small for the replacement policy")
	ErrNoCities           = configError("at least one city is required")
	ErrEmptyBreedingPool  = configError("breeding pool is empty but offspring are required")
	ErrUnknownFitness     = configError("unknown fitness function")
	ErrBadCity            = configError("malformed city coordinates")
)

// ErrInvariantViolation signals a logic defect in the operators (population
// size drift, a tour that is no longer a permutation). It is never caused by
// user input and a run that hits it is aborted.
var ErrInvariantViolation = errors.New("gatsp: invariant violation")

type sentinel struct {
	msg    string
	parent error
}

func (s *sentinel) Error() string { return "gatsp: " + s.msg }
func (s *sentinel) Unwrap() error { return s.parent }

func configError(msg string) error {
	return &sentinel{msg: msg, parent: ErrConfig}
}

// invariantf wraps ErrInvariantViolation with diagnostic context.
func invariantf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}
