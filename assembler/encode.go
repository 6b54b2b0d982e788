package assembler

import (
	"fmt"

	"github.com/Urethramancer/hackasm/hack"
)

// Encode turns an instruction into its machine word.
func Encode(in *Instruction) (uint16, error) {
	switch in.Type {
	case AddressInstruction:
		return encodeAddress(in.Address)
	case ComputeInstruction:
		return encodeCompute(in.Dest, in.Comp, in.Jump)
	default:
		return 0, fmt.Errorf("unknown instruction type: %d", in.Type)
	}
}

func encodeAddress(addr int) (uint16, error) {
	if addr < 0 || addr > hack.MaxAddress {
		return 0, fmt.Errorf("%w: %d exceeds %d", ErrAddressOutOfRange, addr, hack.MaxAddress)
	}
	return uint16(addr), nil
}

func encodeCompute(dest, comp, jump string) (uint16, error) {
	d, ok := hack.DestBits(dest)
	if !ok {
		return 0, fmt.Errorf("%w: dest %q", ErrInvalidMnemonic, dest)
	}
	c, ok := hack.CompBits(comp)
	if !ok {
		return 0, fmt.Errorf("%w: comp %q", ErrInvalidMnemonic, comp)
	}
	j, ok := hack.JumpBits(jump)
	if !ok {
		return 0, fmt.Errorf("%w: jump %q", ErrInvalidMnemonic, jump)
	}
	return hack.ComputePrefix | c<<hack.CompShift | d<<hack.DestShift | j<<hack.JumpShift, nil
}
