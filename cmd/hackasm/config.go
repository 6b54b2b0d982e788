package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Urethramancer/hackasm/assembler"
)

const (
	sourceSuffix = ".asm"
	textSuffix   = ".hack"
	binarySuffix = ".bin"
)

// config is everything one invocation needs.
type config struct {
	input   string
	output  string
	binary  bool
	listing bool
	symbols bool
	verbose bool
}

// newConfig validates the input name and derives the output name from it
// unless one was given.
func newConfig(input, output string, binary bool) (*config, error) {
	if input == "" {
		return nil, assembler.ErrMissingInput
	}
	if filepath.Ext(input) != sourceSuffix {
		return nil, fmt.Errorf("%w: %s", assembler.ErrInvalidInputSuffix, input)
	}

	if output == "" {
		suffix := textSuffix
		if binary {
			suffix = binarySuffix
		}
		output = strings.TrimSuffix(input, sourceSuffix) + suffix
	}

	return &config{
		input:  input,
		output: output,
		binary: binary,
	}, nil
}
