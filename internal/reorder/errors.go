package reorder

import "errors"

var (
	ErrIndexOutOfRange = errors.New("source index out of range")
	ErrColumnNotFound  = errors.New("column not found on board")
	ErrStaleSnapshot   = errors.New("dragged item does not match the board snapshot")
	ErrUnknownDragType = errors.New("unknown drag type")
	ErrInvalidColumnID = errors.New("invalid column id")
)
