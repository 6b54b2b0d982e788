package assembler

// InstructionType tells address and compute instructions apart.
type InstructionType int

const (
	// AddressInstruction is "@value".
	AddressInstruction InstructionType = iota
	// ComputeInstruction is "dest=comp;jump".
	ComputeInstruction
)

func (t InstructionType) String() string {
	if t == AddressInstruction {
		return "address"
	}
	return "compute"
}

// Instruction is one parsed source line, ready for encoding.
type Instruction struct {
	Type InstructionType
	// Address is the resolved value of an address instruction.
	Address int
	// Dest and Jump are empty when absent. Comp holds the raw text when
	// nothing else could be recognised, so the encoder reports it.
	Dest string
	Comp string
	Jump string

	Line int
	Text string
}
