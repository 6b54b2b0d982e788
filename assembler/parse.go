package assembler

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/glog"
	"github.com/japanoise/numparse"
)

const (
	addressMarker   = "@"
	assignSeparator = "="
	jumpSeparator   = ";"
)

// Parse decomposes one instruction line. Symbols in address instructions are
// resolved against st; unseen names get the next free variable address.
// Compute lines always parse; bad mnemonics are left for Encode to reject.
func Parse(src SourceLine, st *SymbolTable) (*Instruction, error) {
	line := stripComment(src.Text)
	in := &Instruction{Line: src.Line, Text: line}

	if field, ok := strings.CutPrefix(line, addressMarker); ok {
		addr, err := parseAddress(strings.TrimSpace(field), st)
		if err != nil {
			return nil, err
		}
		in.Type = AddressInstruction
		in.Address = addr
		return in, nil
	}

	in.Type = ComputeInstruction
	in.Dest, in.Comp, in.Jump = splitCompute(line)
	return in, nil
}

// parseAddress turns the field after '@' into a number.
func parseAddress(field string, st *SymbolTable) (int, error) {
	switch {
	case field == "":
		return 0, fmt.Errorf("%w: empty address", ErrMalformedLine)

	case reNumeric.MatchString(field):
		// Leading zeros are dropped so the digits are always read as decimal.
		digits := strings.TrimLeft(field, "0")
		if digits == "" {
			return 0, nil
		}
		// Only digits get here, so a parse failure means overflow.
		v, err := numparse.UNumParse(digits)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrAddressOutOfRange, field, err)
		}
		if uint64(v) > math.MaxInt {
			return 0, fmt.Errorf("%w: %s", ErrAddressOutOfRange, field)
		}
		return int(v), nil

	case reSymbol.MatchString(field):
		known := st.Contains(field)
		addr := st.Resolve(field)
		if !known {
			glog.V(1).Infof("variable %s = %d", field, addr)
		}
		return addr, nil

	default:
		return 0, fmt.Errorf("%w: bad symbol %q", ErrMalformedLine, field)
	}
}

// splitCompute cuts "dest=comp;jump" into its fields. Whitespace around the
// separators is dropped; whitespace inside a field is kept and fails to encode.
func splitCompute(line string) (dest, comp, jump string) {
	rest := line
	if d, c, found := strings.Cut(rest, assignSeparator); found {
		dest, rest = strings.TrimSpace(d), c
	}
	comp, jump, _ = strings.Cut(rest, jumpSeparator)
	return dest, strings.TrimSpace(comp), strings.TrimSpace(jump)
}
