package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Urethramancer/hackasm/assembler"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		binary bool
		want   string
		err    error
	}{
		{"Text", "prog/Max.asm", "", false, "prog/Max.hack", nil},
		{"Binary", "Max.asm", "", true, "Max.bin", nil},
		{"Explicit", "Max.asm", "out.txt", false, "out.txt", nil},
		{"Missing", "", "", false, "", assembler.ErrMissingInput},
		{"WrongSuffix", "Max.s", "", false, "", assembler.ErrInvalidInputSuffix},
		{"NoSuffix", "Max", "", false, "", assembler.ErrInvalidInputSuffix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := newConfig(tc.input, tc.output, tc.binary)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.output != tc.want {
				t.Errorf("output = %s, want %s", cfg.output, tc.want)
			}
		})
	}
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesText(t *testing.T) {
	dir := t.TempDir()
	cfg, err := newConfig(writeSource(t, dir, "Add.asm", "@2\nD=A\n(L)\n@L\n"), "", false)
	if err != nil {
		t.Fatal(err)
	}
	cfg.symbols = true

	var stdout bytes.Buffer
	if err := run(cfg, &stdout, false); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Add.hack"))
	if err != nil {
		t.Fatal(err)
	}
	want := "0000000000000010\n1110110000010000\n0000000000000010\n"
	if string(data) != want {
		t.Errorf("got %q, want %q", data, want)
	}
	found := false
	for _, line := range strings.Split(stdout.String(), "\n") {
		if f := strings.Fields(line); len(f) == 2 && f[0] == "L" && f[1] == "2" {
			found = true
		}
	}
	if !found {
		t.Errorf("symbol dump missing label:\n%s", stdout.String())
	}
}

func TestRunWritesBinary(t *testing.T) {
	dir := t.TempDir()
	cfg, err := newConfig(writeSource(t, dir, "One.asm", "D=A\n"), "", true)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, &bytes.Buffer{}, false); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "One.bin"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0xEC, 0x10}) {
		t.Errorf("got % X", data)
	}
}

func TestRunLeavesNothingOnError(t *testing.T) {
	dir := t.TempDir()
	cfg, err := newConfig(writeSource(t, dir, "Bad.asm", "@1\nD=Q\n"), "", false)
	if err != nil {
		t.Fatal(err)
	}
	err = run(cfg, &bytes.Buffer{}, false)
	if !errors.Is(err, assembler.ErrInvalidMnemonic) {
		t.Fatalf("expected ErrInvalidMnemonic, got %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the source in %s, found %d entries", dir, len(entries))
	}
}

func TestRunUnreadable(t *testing.T) {
	cfg, err := newConfig(filepath.Join(t.TempDir(), "missing.asm"), "", false)
	if err != nil {
		t.Fatal(err)
	}
	if err := run(cfg, &bytes.Buffer{}, false); !errors.Is(err, assembler.ErrUnreadableSource) {
		t.Errorf("expected ErrUnreadableSource, got %v", err)
	}
}

func TestEnableVerbose(t *testing.T) {
	if err := enableVerbose(); err != nil {
		t.Fatal(err)
	}
	for name, want := range map[string]string{"v": "1", "logtostderr": "true"} {
		f := flag.Lookup(name)
		if f == nil {
			t.Fatalf("flag -%s not registered", name)
		}
		if got := f.Value.String(); got != want {
			t.Errorf("-%s = %s, want %s", name, got, want)
		}
	}
}
