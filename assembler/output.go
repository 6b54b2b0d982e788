package assembler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Urethramancer/hackasm/hack"
)

// WriteText writes one binary-digit word per line.
func WriteText(w io.Writer, words []uint16) error {
	bw := bufio.NewWriter(w)
	for _, word := range words {
		if _, err := bw.WriteString(hack.FormatWord(word) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteBinary writes the words big-endian.
func WriteBinary(w io.Writer, words []uint16) error {
	_, err := w.Write(hack.WordsToBytes(words))
	return err
}

// ListingStyle decorates the columns of a listing.
type ListingStyle struct {
	Word   func(string) string
	Source func(string) string
}

// PlainListing leaves every column undecorated.
var PlainListing = ListingStyle{
	Word:   func(s string) string { return s },
	Source: func(s string) string { return s },
}

// WriteListing prints "address  word  source" for each word. lines maps each
// word to its 1-based line in source.
func WriteListing(w io.Writer, words []uint16, lines []int, source []string, style ListingStyle) error {
	bw := bufio.NewWriter(w)
	for i, word := range words {
		text := ""
		if i < len(lines) && lines[i] > 0 && lines[i] <= len(source) {
			text = stripComment(source[lines[i]-1])
		}
		if _, err := fmt.Fprintf(bw, "%5d  %s  %s\n", i, style.Word(hack.FormatWord(word)), style.Source(text)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSymbols prints every bound name with its address.
func WriteSymbols(w io.Writer, st *SymbolTable) error {
	bw := bufio.NewWriter(w)
	for _, s := range st.Symbols() {
		if _, err := fmt.Fprintf(bw, "%-24s %5d\n", s.Name, s.Address); err != nil {
			return err
		}
	}
	return bw.Flush()
}
