package config

import "errors"

// ErrInvalidConfig is wrapped by every validation and decoding error.
var ErrInvalidConfig = errors.New("invalid config")
