package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Urethramancer/hackasm/disassembler"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opt  options
		want string
	}{
		{"Text", []byte("0000000000000010\n1110110000010000\n"), options{}, "@2\nD=A\n"},
		{"TextCRLF", []byte("0000000000000010\r\n\r\n1110110000010000\r\n"), options{}, "@2\nD=A\n"},
		{"Binary", []byte{0x00, 0x02, 0xEC, 0x10}, options{binary: true}, "@2\nD=A\n"},
		{"Labels", []byte{0x00, 0x00, 0xEA, 0x87}, options{binary: true, labels: true}, "(L0)\n    @L0\n    0;JMP\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(tc.data, tc.opt, &out); err != nil {
				t.Fatal(err)
			}
			if out.String() != tc.want {
				t.Errorf("got %q, want %q", out.String(), tc.want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	if err := run([]byte("0101\n"), options{}, &out); err == nil {
		t.Error("expected error for short text word")
	}
	err := run([]byte{0x80, 0x00}, options{binary: true}, &out)
	if !errors.Is(err, disassembler.ErrUnknownOpcode) {
		t.Errorf("expected ErrUnknownOpcode, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("partial output: %q", out.String())
	}
}
