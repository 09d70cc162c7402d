package core

import "errors"

// ErrInvalidArgument is wrapped by every validation failure in this module.
var ErrInvalidArgument = errors.New("invalid argument")
