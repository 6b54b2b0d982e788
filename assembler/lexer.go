package assembler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/golang/glog"
)

// CommentMarker starts a comment that runs to the end of the line.
const CommentMarker = "//"

// symbolPattern is shared by label definitions and @ references.
const symbolPattern = `[A-Za-z_.$][A-Za-z0-9_.$]*`

var (
	reLabel    = regexp.MustCompile(`^\((` + symbolPattern + `)\)$`)
	reSymbol   = regexp.MustCompile(`^` + symbolPattern + `$`)
	reNumeric  = regexp.MustCompile(`^[0-9]+$`)
	reInlineCm = regexp.MustCompile(`\s*//.*$`)
)

// SourceLine is an instruction line kept by the first pass.
type SourceLine struct {
	// Line is the 1-based line number in the source.
	Line int
	Text string
}

// Classify runs the first pass. It drops blank lines, comments and labels,
// binding each label to the index of the next instruction.
func Classify(lines []string, st *SymbolTable) ([]SourceLine, error) {
	var out []SourceLine
	pc := 0
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}

		if strings.HasPrefix(line, "(") {
			name, err := parseLabel(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			if st.Contains(name) {
				return nil, fmt.Errorf("line %d: %w: %s", i+1, ErrDuplicateSymbol, name)
			}
			if err := st.AddEntry(name, pc); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			glog.V(1).Infof("label %s = %d", name, pc)
			continue
		}

		out = append(out, SourceLine{Line: i + 1, Text: line})
		pc++
	}
	return out, nil
}

// parseLabel extracts the name from "(name)", ignoring a trailing comment.
func parseLabel(line string) (string, error) {
	m := reLabel.FindStringSubmatch(stripComment(line))
	if m == nil {
		return "", fmt.Errorf("%w: bad label %q", ErrMalformedLine, line)
	}
	return m[1], nil
}

// stripComment truncates line at the first comment marker and trims it.
func stripComment(line string) string {
	if loc := reInlineCm.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}
	return strings.TrimSpace(line)
}
