package assembler

import (
	"fmt"
	"sort"

	"github.com/Urethramancer/hackasm/hack"
)

// SymbolTable maps names to RAM or ROM addresses for one assembly run.
type SymbolTable struct {
	symbols map[string]int
	// next is the address the next variable will get. It only moves forward.
	next int
}

// NewSymbolTable returns an empty table. Call Seed to add the predefined names.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]int),
		next:    hack.VariableBase,
	}
}

// Seed adds R0-R15, the segment pointers, SCREEN and KBD.
func (st *SymbolTable) Seed() {
	for _, s := range hack.Predefined() {
		st.symbols[s.Name] = s.Address
	}
}

// Contains reports whether name is bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.symbols[name]
	return ok
}

// AddEntry binds name to address, replacing any previous binding.
func (st *SymbolTable) AddEntry(name string, address int) error {
	if name == "" {
		return fmt.Errorf("%w: empty symbol name", ErrMalformedLine)
	}
	if address < 0 {
		return fmt.Errorf("%w: %s = %d", ErrAddressOutOfRange, name, address)
	}
	st.symbols[name] = address
	return nil
}

// Address returns the address bound to name.
func (st *SymbolTable) Address(name string) (int, error) {
	addr, ok := st.symbols[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, name)
	}
	return addr, nil
}

// AllocateNextFree hands out the next variable address. The caller registers it.
func (st *SymbolTable) AllocateNextFree() int {
	addr := st.next
	st.next++
	return addr
}

// Resolve returns the address of name, allocating a variable slot on first use.
func (st *SymbolTable) Resolve(name string) int {
	if addr, ok := st.symbols[name]; ok {
		return addr
	}
	addr := st.AllocateNextFree()
	st.symbols[name] = addr
	return addr
}

// Len returns the number of bound names.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Symbols returns a snapshot sorted by address, then name.
func (st *SymbolTable) Symbols() []hack.Symbol {
	out := make([]hack.Symbol, 0, len(st.symbols))
	for name, addr := range st.symbols {
		out = append(out, hack.Symbol{Name: name, Address: addr})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].Name < out[j].Name
	})
	return out
}
