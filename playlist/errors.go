package playlist

import "errors"

var (
	ErrAttributeNotFound       = errors.New("attribute not found")
	ErrAttributeAlreadyPresent = errors.New("attribute already present")
	ErrIndexOutOfBounds        = errors.New("index out of bounds")
)
