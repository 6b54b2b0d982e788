package assembler

import "errors"

// Error kinds. Callers match them with errors.Is; context is wrapped around them.
var (
	ErrMissingInput       = errors.New("no source provided")
	ErrInvalidInputSuffix = errors.New("source must be a .asm file")
	ErrUnreadableSource   = errors.New("source cannot be read")
	ErrMalformedLine      = errors.New("malformed line")
	ErrDuplicateSymbol    = errors.New("duplicate symbol")
	ErrUnknownSymbol      = errors.New("unknown symbol")
	ErrAddressOutOfRange  = errors.New("address out of range")
	ErrInvalidMnemonic    = errors.New("invalid mnemonic")
)
