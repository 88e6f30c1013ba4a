package config

import (
	"github.com/keyforge/keyforge/internal/logger"
)

// Generator holds the default generation parameters applied when the
// command line leaves them unset.
type Generator struct {
	Length    int    // default key length
	KeyCount  int    // default collection size for multi-key runs
	Separator string // default separator, empty disables wrapping
	SepWidth  int    // default fixed chunk width
	Exclude   string // default exclusion profile name
	Verbose   bool   // enable diagnostic output
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	Log       logger.Log
	Generator Generator
}
