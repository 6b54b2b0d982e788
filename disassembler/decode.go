package disassembler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/Urethramancer/hackasm/hack"
)

// ErrUnknownOpcode is returned for words that are not valid Hack instructions.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Decode returns the canonical source text for a single word.
func Decode(w uint16) (string, error) {
	if hack.IsAddress(w) {
		return "@" + strconv.Itoa(int(w&hack.AddressMask)), nil
	}
	if !hack.IsCompute(w) {
		return "", fmt.Errorf("%w: %s", ErrUnknownOpcode, hack.FormatWord(w))
	}

	comp, ok := hack.CompMnemonic((w & hack.CompMask) >> hack.CompShift)
	if !ok {
		return "", fmt.Errorf("%w: comp bits in %s", ErrUnknownOpcode, hack.FormatWord(w))
	}
	// Every 3-bit pattern is a valid dest and jump.
	dest, _ := hack.DestMnemonic((w & hack.DestMask) >> hack.DestShift)
	jump, _ := hack.JumpMnemonic((w & hack.JumpMask) >> hack.JumpShift)

	s := comp
	if dest != "" {
		s = dest + "=" + s
	}
	if jump != "" {
		s += ";" + jump
	}
	return s, nil
}

// isJump reports whether w is a compute instruction with a jump condition.
func isJump(w uint16) bool {
	return hack.IsCompute(w) && w&hack.JumpMask != 0
}
