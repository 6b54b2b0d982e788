package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/hackasm/hack"
)

// Instruction represents a single decoded word at a ROM address.
type Instruction struct {
	Address int
	Op      uint16
	Text    string
}

// Disassemble renders words as source, one instruction per line.
func Disassemble(words []uint16) (string, error) {
	insts, err := decodeAll(words)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, inst := range insts {
		out.WriteString(inst.Text)
		out.WriteByte('\n')
	}
	return out.String(), nil
}

// DisassembleWithLabels works like Disassemble, but an address load that
// feeds a jump and points inside the program becomes a label reference,
// and the target gets a label line.
func DisassembleWithLabels(words []uint16) (string, error) {
	insts, err := decodeAll(words)
	if err != nil {
		return "", err
	}

	// --- Find jump targets ---
	targets := make(map[int]bool)
	for i := 0; i+1 < len(words); i++ {
		if !hack.IsAddress(words[i]) || !isJump(words[i+1]) {
			continue
		}
		if t := int(words[i]); t <= len(words) {
			targets[t] = true
		}
	}

	// --- Render ---
	var out strings.Builder
	for i, inst := range insts {
		if targets[i] {
			fmt.Fprintf(&out, "(%s)\n", labelName(i))
		}
		text := inst.Text
		if i+1 < len(words) && hack.IsAddress(inst.Op) && isJump(words[i+1]) && targets[int(inst.Op)] {
			text = "@" + labelName(int(inst.Op))
		}
		fmt.Fprintf(&out, "    %s\n", text)
	}
	// A jump to one past the last instruction still needs its label.
	if targets[len(words)] {
		fmt.Fprintf(&out, "(%s)\n", labelName(len(words)))
	}
	return out.String(), nil
}

func decodeAll(words []uint16) ([]Instruction, error) {
	insts := make([]Instruction, 0, len(words))
	for pc, w := range words {
		text, err := Decode(w)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", pc, err)
		}
		insts = append(insts, Instruction{Address: pc, Op: w, Text: text})
	}
	return insts, nil
}

func labelName(addr int) string {
	return fmt.Sprintf("L%d", addr)
}
