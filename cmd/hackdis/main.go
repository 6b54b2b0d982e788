package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/hackasm/disassembler"
	"github.com/Urethramancer/hackasm/hack"
)

// options selects how the input is read and rendered.
type options struct {
	binary bool
	labels bool
}

func main() {
	opt := arg.New("hackdis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "b", "binary", "Input holds raw big-endian words.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "l", "labels", "Replace jump targets with labels.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Machine code file (.hack or .bin).", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Where to write the source. Standard output if omitted.", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "hackdis: %v\n", err)
		os.Exit(2)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	inputFile := opt.GetPosString("INPUT")
	outputFile := opt.GetPosString("OUTPUT")
	o := options{binary: opt.GetBool("binary"), labels: opt.GetBool("labels")}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	if outputFile == "" {
		if err := run(data, o, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	f, err := os.Create(outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	err = run(data, o, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(outputFile)
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}

// run decodes a machine code image and writes its source to w.
func run(data []byte, o options, w io.Writer) error {
	var words []uint16
	if o.binary {
		words = hack.BytesToWords(data)
	} else {
		var err error
		words, err = hack.ParseWords(string(data))
		if err != nil {
			return err
		}
	}

	disassemble := disassembler.Disassemble
	if o.labels {
		disassemble = disassembler.DisassembleWithLabels
	}
	text, err := disassemble(words)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
