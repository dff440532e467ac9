package tokenizer

import (
	"strings"
	"unicode"

	"github.com/example/toklab/internal/vocab"
)

// SplitUnits scans text character by character and produces the ordered unit
// sequence the engine tokenizes: maximal runs of regular characters become
// word units, each punctuation character becomes its own unit, and
// whitespace flushes the pending word. The plain space character is swallowed
// as a separator; every other whitespace character (tab, newline, ...) is
// kept as an explicit unit.
func SplitUnits(text string) []string {
	var units []string
	var pending strings.Builder

	flush := func() {
		if pending.Len() > 0 {
			units = append(units, pending.String())
			pending.Reset()
		}
	}

	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
			if r != ' ' {
				units = append(units, string(r))
			}
		case vocab.IsPunctuation(r):
			flush()
			units = append(units, string(r))
		default:
			pending.WriteRune(r)
		}
	}
	flush()

	return units
}
