package assembler

import (
	"fmt"
	"strings"
)

// Assembler holds the state for one assembly run.
type Assembler struct {
	symbols *SymbolTable
	program []SourceLine
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{}
}

// Assemble translates source lines into machine words. Nothing is returned
// unless every line assembles, and a failed run leaves no symbol table.
func (asm *Assembler) Assemble(lines []string) ([]uint16, error) {
	asm.symbols = nil
	asm.program = nil

	st := NewSymbolTable()
	st.Seed()

	// Pass 1: every label is bound before any variable is allocated.
	program, err := Classify(lines, st)
	if err != nil {
		return nil, err
	}

	// Pass 2: resolve variables and encode.
	words := make([]uint16, 0, len(program))
	for _, src := range program {
		in, err := Parse(src, st)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", src.Line, err)
		}
		w, err := Encode(in)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", src.Line, in.Text, err)
		}
		words = append(words, w)
	}

	asm.symbols = st
	asm.program = program
	return words, nil
}

// Symbols returns the table from the last successful run, or nil.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// SourceLines maps each emitted word to its 1-based source line.
func (asm *Assembler) SourceLines() []int {
	out := make([]int, len(asm.program))
	for i, src := range asm.program {
		out[i] = src.Line
	}
	return out
}

// Assemble runs a fresh Assembler over lines.
func Assemble(lines []string) ([]uint16, error) {
	return New().Assemble(lines)
}

// AssembleString splits src into lines and assembles them.
func AssembleString(src string) ([]uint16, error) {
	return Assemble(SplitLines(src))
}

// SplitLines splits text on newlines, accepting CRLF.
func SplitLines(src string) []string {
	return strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
}
