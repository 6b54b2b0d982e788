package hack

// Compute instruction layout (bit 15 is the most significant).
const (
	// ComputePrefix marks a compute instruction: the top three bits are 111.
	ComputePrefix uint16 = 0b111 << 13
	// ComputeBit is set in every compute instruction and clear in address instructions.
	ComputeBit uint16 = 1 << 15
	// AddressMask selects the 15-bit payload of an address instruction.
	AddressMask uint16 = ^ComputeBit

	CompShift = 6
	DestShift = 3
	JumpShift = 0

	CompMask uint16 = 0x7F << CompShift
	DestMask uint16 = 0x07 << DestShift
	JumpMask uint16 = 0x07 << JumpShift
)

//
// Mnemonic lookup tables. Bit patterns are unshifted.
//

var (
	destBits = map[string]uint16{
		"":    0b000,
		"M":   0b001,
		"D":   0b010,
		"MD":  0b011,
		"A":   0b100,
		"AM":  0b101,
		"AD":  0b110,
		"AMD": 0b111,
	}

	jumpBits = map[string]uint16{
		"":    0b000,
		"JGT": 0b001,
		"JEQ": 0b010,
		"JGE": 0b011,
		"JLT": 0b100,
		"JNE": 0b101,
		"JLE": 0b110,
		"JMP": 0b111,
	}

	// The high bit (a) selects M instead of A as the second operand.
	compBits = map[string]uint16{
		"0":   0b0101010,
		"1":   0b0111111,
		"-1":  0b0111010,
		"D":   0b0001100,
		"A":   0b0110000,
		"!D":  0b0001101,
		"!A":  0b0110001,
		"-D":  0b0001111,
		"-A":  0b0110011,
		"D+1": 0b0011111,
		"A+1": 0b0110111,
		"D-1": 0b0001110,
		"A-1": 0b0110010,
		"D+A": 0b0000010,
		"D-A": 0b0010011,
		"A-D": 0b0000111,
		"D&A": 0b0000000,
		"D|A": 0b0010101,

		"M":   0b1110000,
		"!M":  0b1110001,
		"-M":  0b1110011,
		"M+1": 0b1110111,
		"M-1": 0b1110010,
		"D+M": 0b1000010,
		"D-M": 0b1010011,
		"M-D": 0b1000111,
		"D&M": 0b1000000,
		"D|M": 0b1010101,
	}

	destNames = invert(destBits)
	jumpNames = invert(jumpBits)
	compNames = invert(compBits)
)

func invert(m map[string]uint16) map[uint16]string {
	out := make(map[uint16]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// DestBits returns the 3-bit pattern for a destination mnemonic.
func DestBits(mnemonic string) (uint16, bool) {
	b, ok := destBits[mnemonic]
	return b, ok
}

// JumpBits returns the 3-bit pattern for a jump mnemonic.
func JumpBits(mnemonic string) (uint16, bool) {
	b, ok := jumpBits[mnemonic]
	return b, ok
}

// CompBits returns the 7-bit pattern (a-bit included) for a computation mnemonic.
func CompBits(mnemonic string) (uint16, bool) {
	b, ok := compBits[mnemonic]
	return b, ok
}

// DestMnemonic is the reverse of DestBits.
func DestMnemonic(bits uint16) (string, bool) {
	s, ok := destNames[bits]
	return s, ok
}

// JumpMnemonic is the reverse of JumpBits.
func JumpMnemonic(bits uint16) (string, bool) {
	s, ok := jumpNames[bits]
	return s, ok
}

// CompMnemonic is the reverse of CompBits.
func CompMnemonic(bits uint16) (string, bool) {
	s, ok := compNames[bits]
	return s, ok
}

// CompMnemonics lists every legal computation mnemonic.
func CompMnemonics() []string {
	out := make([]string, 0, len(compBits))
	for k := range compBits {
		out = append(out, k)
	}
	return out
}
