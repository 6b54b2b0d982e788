package hack

import "testing"

func TestPredefined(t *testing.T) {
	want := map[string]int{
		"R0": 0, "R7": 7, "R15": 15,
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"SCREEN": 16384, "KBD": 24576,
	}
	got := make(map[string]int)
	for _, s := range Predefined() {
		got[s.Name] = s.Address
	}
	if len(got) != 23 {
		t.Errorf("expected 23 predefined symbols, got %d", len(got))
	}
	for name, addr := range want {
		if got[name] != addr {
			t.Errorf("%s = %d, want %d", name, got[name], addr)
		}
	}
}

func TestTablesAreBijective(t *testing.T) {
	if len(destBits) != 8 || len(destNames) != 8 {
		t.Errorf("dest table: %d entries, %d patterns", len(destBits), len(destNames))
	}
	if len(jumpBits) != 8 || len(jumpNames) != 8 {
		t.Errorf("jump table: %d entries, %d patterns", len(jumpBits), len(jumpNames))
	}
	if len(compBits) != 28 || len(compNames) != 28 {
		t.Errorf("comp table: %d entries, %d patterns", len(compBits), len(compNames))
	}
	for _, m := range CompMnemonics() {
		bits, _ := CompBits(m)
		if back, ok := CompMnemonic(bits); !ok || back != m {
			t.Errorf("comp %s -> %07b -> %s", m, bits, back)
		}
	}
}

func TestCompSourceSelector(t *testing.T) {
	for _, m := range CompMnemonics() {
		bits, _ := CompBits(m)
		usesM := false
		for _, r := range m {
			if r == 'M' {
				usesM = true
			}
		}
		if aBit := bits&0b1000000 != 0; aBit != usesM {
			t.Errorf("comp %s: a-bit %t, reads M %t", m, aBit, usesM)
		}
	}
}
