package matrix

import "errors"

var (
	// ErrEmpty is returned when a constructor receives no rows or no columns.
	ErrEmpty = errors.New("matrix: empty input")

	// ErrRagged is returned when input rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrDimMismatch is returned when two matrices have incompatible shapes.
	ErrDimMismatch = errors.New("matrix: dimension mismatch")
)
