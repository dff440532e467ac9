// Package vocab provides the static vocabulary table for the toklab
// tokenizer: a bidirectional mapping between textual units (special markers,
// common words, punctuation) and sequential integer token ids, plus the
// numeric ASCII-fallback id range.
package vocab

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

// ASCIIOffset marks the start of the numeric-fallback id space. Any id at or
// above this value encodes a single character as id - ASCIIOffset. The range
// is never stored in the table; membership is a range test.
const ASCIIOffset = 2000

// asciiPrintableMin and asciiPrintableMax bound the printable range that
// List synthesizes entries for.
const (
	asciiPrintableMin = 32
	asciiPrintableMax = 126
)

// ErrNotFound is returned by IDOf and UnitOf when the unit or id has no
// vocabulary entry.
var ErrNotFound = errors.New("vocab: entry not found")

// Kind classifies a vocabulary entry by the block it belongs to.
type Kind string

const (
	KindSpecial     Kind = "special"
	KindWord        Kind = "word"
	KindPunctuation Kind = "punctuation"
	KindASCII       Kind = "ascii"
)

// Entry is a single vocabulary listing row.
type Entry struct {
	Unit string `json:"unit"`
	ID   int    `json:"id"`
	Kind Kind   `json:"kind"`
}

// Table is the immutable vocabulary mapping. Ids are assigned sequentially
// from 0 in three contiguous blocks: special markers, common words,
// punctuation and literal whitespace. Safe for concurrent readers after
// construction.
type Table struct {
	forward map[string]int
	inverse []string
	kinds   []Kind
}

// NewTable builds the vocabulary table from the seed lists. Word entries are
// case-folded to lowercase before insertion; duplicate units are skipped so
// every id remains reachable through the forward map.
func NewTable() *Table {
	t := &Table{
		forward: make(map[string]int),
	}

	for _, m := range specialMarkers {
		t.add(m, KindSpecial)
	}

	for _, w := range commonWords {
		t.add(strings.ToLower(w), KindWord)
	}

	for _, p := range punctuationRunes {
		t.add(string(p), KindPunctuation)
	}
	for _, ws := range whitespaceUnits {
		t.add(ws, KindPunctuation)
	}

	return t
}

func (t *Table) add(unit string, kind Kind) {
	if _, ok := t.forward[unit]; ok {
		return
	}
	t.forward[unit] = len(t.inverse)
	t.inverse = append(t.inverse, unit)
	t.kinds = append(t.kinds, kind)
}

// Size returns the number of table entries, excluding the ASCII range.
func (t *Table) Size() int {
	return len(t.inverse)
}

// Has reports whether unit has a vocabulary entry. Units containing letters
// match only if the caller case-folded them the same way the table did.
func (t *Table) Has(unit string) bool {
	_, ok := t.forward[unit]
	return ok
}

// IDOf returns the token id for unit, or ErrNotFound.
func (t *Table) IDOf(unit string) (int, error) {
	id, ok := t.forward[unit]
	if !ok {
		return 0, ErrNotFound
	}
	return id, nil
}

// UnitOf returns the unit string for a vocabulary id, or ErrNotFound. Ids in
// the ASCII-fallback range are not table entries; callers branch on the
// offset before calling.
func (t *Table) UnitOf(id int) (string, error) {
	if id < 0 || id >= len(t.inverse) {
		return "", ErrNotFound
	}
	return t.inverse[id], nil
}

// List returns vocabulary entries whose unit case-insensitively contains
// search (empty matches all), sorted ascending by id. With includeASCII it
// appends synthesized entries for printable character codes 32-126; those
// match when the character itself contains search (case-sensitive) or the
// stringified id does.
func (t *Table) List(search string, includeASCII bool) []Entry {
	folded := strings.ToLower(search)

	entries := make([]Entry, 0, len(t.inverse))
	for id, unit := range t.inverse {
		if search == "" || strings.Contains(strings.ToLower(unit), folded) {
			entries = append(entries, Entry{Unit: unit, ID: id, Kind: t.kinds[id]})
		}
	}

	if includeASCII {
		for code := asciiPrintableMin; code <= asciiPrintableMax; code++ {
			unit := string(rune(code))
			id := code + ASCIIOffset
			if search == "" ||
				strings.Contains(unit, search) ||
				strings.Contains(strconv.Itoa(id), search) {
				entries = append(entries, Entry{Unit: unit, ID: id, Kind: KindASCII})
			}
		}
	}

	return entries
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide vocabulary table, built on first use.
// The table is read-only, so sharing it across goroutines needs no locking.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}
