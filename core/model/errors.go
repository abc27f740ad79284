package model

import "errors"

// ErrNotFound reports an unknown substrate or ratio identifier.
var ErrNotFound = errors.New("not found")

// ErrInvalidParameter reports a constraint violation on a model input.
var ErrInvalidParameter = errors.New("invalid parameter")
