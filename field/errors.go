package field

import "errors"

var (
	ErrInvalidSize  = errors.New("field: width and height must be > 0")
	ErrInvalidScale = errors.New("field: scale must be > 0")
	ErrNilSource    = errors.New("field: source must not be nil")
	ErrNilTable     = errors.New("field: noise table must not be nil")
	ErrEmptyField   = errors.New("field: input must not be empty")
	ErrInvalidRange = errors.New("field: range upper bound below lower bound")
	ErrSizeMismatch = errors.New("field: sample count does not match width*height")
)
