package generator

import (
	"errors"
	"time"
)

// Result is the observable outcome of a Step or Generate call.
type Result int

const (
	// Collapsing means progress was made and the caller should step again.
	Collapsing Result = iota
	// Collapsed means every cell is observed.
	Collapsed
	// Contradicted means a domain emptied; the attempt is dead.
	Contradicted
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Collapsing:
		return "collapsing"
	case Collapsed:
		return "collapsed"
	case Contradicted:
		return "contradicted"
	default:
		return "unknown"
	}
}

// Sentinel errors for generator construction.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("generator: invalid option supplied")
	// ErrNilModel is returned when New receives a nil model.
	ErrNilModel = errors.New("generator: model is nil")
	// ErrEmptyModel is returned for a model without states.
	ErrEmptyModel = errors.New("generator: model has no states")
)

// Stats summarizes the current attempt.
type Stats struct {
	Seed         int64
	Steps        int
	Observations int
	Bans         int
	Elapsed      time.Duration
	// ContradictionCell is the cell whose domain emptied, or -1.
	ContradictionCell int
}

// StepInfo is passed to the OnStep hook after every Step that did work.
type StepInfo struct {
	Step   int
	Cell   int
	Result Result
}
