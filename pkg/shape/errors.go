package shape

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside [-MaxCoord, MaxCoord].
	ErrOutOfBounds = errors.New("shape: coordinate out of bounds")
	// ErrDuplicateCell reports an insertion of an already active cell.
	ErrDuplicateCell = errors.New("shape: cell already active")
	// ErrEmptyPattern reports an operation that needs at least one active cell.
	ErrEmptyPattern = errors.New("shape: empty pattern")
	// ErrCellNotActive reports a seed cell that is not part of the pattern.
	ErrCellNotActive = errors.New("shape: cell not active")
	// ErrInvalidArgument reports a numeric argument outside its domain.
	ErrInvalidArgument = errors.New("shape: invalid argument")
	// ErrMalformedPrototype reports a ragged or non-binary prototype matrix.
	ErrMalformedPrototype = errors.New("shape: malformed prototype")
	// ErrInvalidNeighbourhood reports an empty offset list, a zero offset or a duplicate.
	ErrInvalidNeighbourhood = errors.New("shape: invalid neighbourhood")
	// ErrTooLarge reports a neighbourhood too large to enumerate its categories.
	ErrTooLarge = errors.New("shape: neighbourhood too large")
	// ErrNoSeeds reports a tessellation without seeds.
	ErrNoSeeds = errors.New("shape: no seeds")
	// ErrSeedOutsideDomain reports a tessellation seed that is not a domain cell.
	ErrSeedOutsideDomain = errors.New("shape: seed outside domain")
	// ErrTooManyLabels reports more components than printable labels.
	ErrTooManyLabels = errors.New("shape: too many components to label")
)
