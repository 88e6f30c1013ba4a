package config

import (
	"errors"
)

var (
	// ErrNegativeLength error if config generator.length is negative.
	ErrNegativeLength = errors.New("toml config generator.length can not be negative")

	// ErrNegativeKeyCount error if config generator.keycount is negative.
	ErrNegativeKeyCount = errors.New("toml config generator.keycount can not be negative")
)
