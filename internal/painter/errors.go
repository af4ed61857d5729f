package painter

import "errors"

// Common errors.
var (
	ErrEmptyImage        = errors.New("image has no pixels")
	ErrImageSizeMismatch = errors.New("training images differ in size")
	ErrNoTrainingData    = errors.New("no training data")
	ErrTopologyMismatch  = errors.New("topology does not fit pixel features")
)
