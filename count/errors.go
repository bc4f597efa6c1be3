package count

import "github.com/pkg/errors"

var (
	// ErrOverflow indicates the result does not fit in a uint64.
	ErrOverflow = errors.New("count: result overflows uint64")

	// ErrNegative indicates an argument that must be non-negative was not.
	ErrNegative = errors.New("count: negative argument")
)
