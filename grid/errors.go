package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice or image has no rows or columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
