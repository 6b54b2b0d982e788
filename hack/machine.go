package hack

import "strconv"

// Memory map and word layout of the Hack machine.
const (
	// WordBits is the width of every instruction and data word.
	WordBits = 16
	// MaxAddress is the largest value an address instruction can load (15 bits).
	MaxAddress = 1<<(WordBits-1) - 1
	// Registers is the number of virtual registers R0..R15 at the bottom of RAM.
	Registers = 16
	// VariableBase is the first RAM address handed out to variables.
	VariableBase = Registers
	// Screen is the base of the memory-mapped screen.
	Screen = 16384
	// Keyboard is the memory-mapped keyboard register.
	Keyboard = 24576
)

// Segment pointers used by the VM calling convention.
const (
	SP   = 0
	LCL  = 1
	ARG  = 2
	THIS = 3
	THAT = 4
)

// Symbol is a name bound to an address.
type Symbol struct {
	Name    string
	Address int
}

// Predefined returns the symbols every program starts with, in address order.
func Predefined() []Symbol {
	syms := make([]Symbol, 0, Registers+7)
	for i := 0; i < Registers; i++ {
		syms = append(syms, Symbol{Name: RegisterName(i), Address: i})
	}
	syms = append(syms,
		Symbol{"SP", SP},
		Symbol{"LCL", LCL},
		Symbol{"ARG", ARG},
		Symbol{"THIS", THIS},
		Symbol{"THAT", THAT},
		Symbol{"SCREEN", Screen},
		Symbol{"KBD", Keyboard},
	)
	return syms
}

// RegisterName returns "R<n>".
func RegisterName(n int) string {
	return "R" + strconv.Itoa(n)
}
