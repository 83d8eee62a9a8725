package menu

import "errors"

// ErrInvalidArgument is wrapped by every construction and usage error in this
// package. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
