package analysis

import "errors"

var (
	ErrEmptyInput = errors.New("analysis: input must not be empty")
	ErrFFTPlan    = errors.New("analysis: fft plan failed")
)
