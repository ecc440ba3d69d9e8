package targets

import "errors"

var (
	// ErrDuplicate is returned by Add when an equal target is already in the list.
	ErrDuplicate = errors.New("target already in list")
	// ErrFull is returned by Add when the list has reached its capacity.
	ErrFull = errors.New("target list is full")
)
