package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"golang.org/x/term"

	"github.com/Urethramancer/hackasm/assembler"
)

func main() {
	opt := arg.New("hackasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Output file. Defaults to the source name with .hack (or .bin).", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "b", "binary", "Write raw big-endian words instead of text.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "l", "listing", "Print a listing to standard output.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Print the symbol table to standard output.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log symbol bindings to standard error.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Source file to assemble (.asm).", "", false, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil && !errors.Is(err, arg.ErrNoArgs) {
		fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
		os.Exit(2)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	cfg, err := newConfig(opt.GetPosString("FILE"), opt.GetString("output"), opt.GetBool("binary"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
		if errors.Is(err, assembler.ErrMissingInput) {
			opt.PrintHelp()
		}
		os.Exit(1)
	}
	cfg.listing = opt.GetBool("listing")
	cfg.symbols = opt.GetBool("symbols")
	cfg.verbose = opt.GetBool("verbose")

	if cfg.verbose {
		if err := enableVerbose(); err != nil {
			fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
			os.Exit(1)
		}
	}

	err = run(cfg, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hackasm: %v\n", err)
		os.Exit(1)
	}
}

// enableVerbose turns on glog's V(1) output on stderr.
func enableVerbose() error {
	for name, value := range map[string]string{"v": "1", "logtostderr": "true"} {
		if err := flag.Set(name, value); err != nil {
			return fmt.Errorf("verbose logging: -%s: %w", name, err)
		}
	}
	return nil
}

// run assembles cfg.input and writes cfg.output. Reports go to stdout.
func run(cfg *config, stdout io.Writer, color bool) error {
	data, err := os.ReadFile(cfg.input)
	if err != nil {
		return fmt.Errorf("%w: %v", assembler.ErrUnreadableSource, err)
	}

	source := assembler.SplitLines(string(data))
	asm := assembler.New()
	words, err := asm.Assemble(source)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.input, err)
	}

	write := assembler.WriteText
	if cfg.binary {
		write = assembler.WriteBinary
	}
	err = writeAtomic(cfg.output, func(w io.Writer) error {
		return write(w, words)
	})
	if err != nil {
		return err
	}
	glog.V(1).Infof("wrote %d words to %s", len(words), cfg.output)

	if cfg.listing {
		style := assembler.PlainListing
		if color {
			style = colorListing
		}
		if err := assembler.WriteListing(stdout, words, asm.SourceLines(), source, style); err != nil {
			return err
		}
	}
	if cfg.symbols {
		if err := assembler.WriteSymbols(stdout, asm.Symbols()); err != nil {
			return err
		}
	}
	return nil
}

// writeAtomic writes into a temporary file next to path and renames it into
// place, so path is either complete or untouched.
func writeAtomic(path string, fill func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := fill(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

var colorListing = assembler.ListingStyle{
	Word:   func(s string) string { return "\x1b[36m" + s + "\x1b[0m" },
	Source: func(s string) string { return "\x1b[2m" + s + "\x1b[0m" },
}
