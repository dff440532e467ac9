package vocab

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Table construction
// ---------------------------------------------------------------------------

func TestNewTable_BlocksAreContiguous(t *testing.T) {
	table := NewTable()

	// Block A: special markers from id 0.
	for i, m := range specialMarkers {
		id, err := table.IDOf(m)
		if err != nil {
			t.Fatalf("IDOf(%q): %v", m, err)
		}
		if id != i {
			t.Errorf("IDOf(%q) = %d; want %d", m, id, i)
		}
	}

	// Block B starts immediately after block A.
	id, err := table.IDOf("the")
	if err != nil {
		t.Fatalf("IDOf(the): %v", err)
	}
	if id != len(specialMarkers) {
		t.Errorf("IDOf(the) = %d; want %d", id, len(specialMarkers))
	}

	// Block C starts immediately after block B.
	id, err = table.IDOf(".")
	if err != nil {
		t.Fatalf("IDOf(.): %v", err)
	}
	if id != len(specialMarkers)+len(commonWords) {
		t.Errorf("IDOf(.) = %d; want %d", id, len(specialMarkers)+len(commonWords))
	}
}

func TestNewTable_ForwardInverseRoundTrip(t *testing.T) {
	table := NewTable()

	for id := 0; id < table.Size(); id++ {
		unit, err := table.UnitOf(id)
		if err != nil {
			t.Fatalf("UnitOf(%d): %v", id, err)
		}

		back, err := table.IDOf(unit)
		if err != nil {
			t.Fatalf("IDOf(%q): %v", unit, err)
		}

		if back != id {
			t.Errorf("id %d → %q → %d; want round-trip", id, unit, back)
		}
	}
}

func TestNewTable_DuplicatesDoNotClaimIDs(t *testing.T) {
	table := NewTable()

	sizeBefore := table.Size()
	table.add("the", KindWord)
	table.add(".", KindPunctuation)

	if table.Size() != sizeBefore {
		t.Errorf("Size after duplicate adds = %d; want %d", table.Size(), sizeBefore)
	}
}

func TestNewTable_AllIDsBelowASCIIOffset(t *testing.T) {
	table := NewTable()

	if table.Size() >= ASCIIOffset {
		t.Fatalf("vocabulary size %d overlaps the ASCII offset %d", table.Size(), ASCIIOffset)
	}
}

func TestNewTable_WhitespaceUnitsPresent(t *testing.T) {
	table := NewTable()

	for _, unit := range []string{" ", "\t", "\n"} {
		if !table.Has(unit) {
			t.Errorf("Has(%q) = false; want literal whitespace unit in block C", unit)
		}
	}
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

func TestIDOf_UnknownUnit(t *testing.T) {
	table := NewTable()

	_, err := table.IDOf("zebra")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("IDOf(zebra) error = %v; want ErrNotFound", err)
	}
}

func TestIDOf_IsCaseSensitive(t *testing.T) {
	table := NewTable()

	// Word entries are stored lowercase; callers case-fold before lookup.
	if table.Has("The") {
		t.Error("Has(The) = true; want false for non-folded lookup")
	}
	if !table.Has("the") {
		t.Error("Has(the) = false; want true")
	}
}

func TestUnitOf_OutOfRange(t *testing.T) {
	table := NewTable()

	for _, id := range []int{-1, table.Size(), 1999, ASCIIOffset + 65} {
		_, err := table.UnitOf(id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("UnitOf(%d) error = %v; want ErrNotFound", id, err)
		}
	}
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestList_EmptySearchWithASCIIRange(t *testing.T) {
	table := NewTable()

	entries := table.List("", true)

	want := table.Size() + 95
	if len(entries) != want {
		t.Fatalf("List(\"\", true) returned %d entries; want %d", len(entries), want)
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].ID <= entries[i-1].ID {
			t.Fatalf("entries not ascending at index %d: %d after %d",
				i, entries[i].ID, entries[i-1].ID)
		}
	}
}

func TestList_EmptySearchWithoutASCIIRange(t *testing.T) {
	table := NewTable()

	entries := table.List("", false)
	if len(entries) != table.Size() {
		t.Errorf("List(\"\", false) returned %d entries; want %d", len(entries), table.Size())
	}
}

func TestList_SearchIsCaseInsensitiveForVocab(t *testing.T) {
	table := NewTable()

	lower := table.List("the", false)
	upper := table.List("THE", false)

	if len(lower) == 0 {
		t.Fatal("List(the, false) returned no entries")
	}
	if len(lower) != len(upper) {
		t.Errorf("case-folded searches differ: %d vs %d entries", len(lower), len(upper))
	}

	for _, e := range lower {
		if !strings.Contains(strings.ToLower(e.Unit), "the") {
			t.Errorf("entry %q does not contain search term", e.Unit)
		}
	}
}

func TestList_SearchMatchesASCIIEntryByID(t *testing.T) {
	table := NewTable()

	wantID := int(ASCIIOffset + 'A')
	entries := table.List(strconv.Itoa(wantID), true)

	found := false
	for _, e := range entries {
		if e.ID == wantID {
			found = true
			if e.Unit != "A" {
				t.Errorf("entry %d unit = %q; want %q", wantID, e.Unit, "A")
			}
			if e.Kind != KindASCII {
				t.Errorf("entry %d kind = %q; want %q", wantID, e.Kind, KindASCII)
			}
		}
	}
	if !found {
		t.Errorf("List(%d, true) did not return the ASCII entry", wantID)
	}
}

func TestList_SearchMatchesASCIIEntryByCharacter(t *testing.T) {
	table := NewTable()

	entries := table.List("A", true)

	found := false
	for _, e := range entries {
		if e.Kind == KindASCII && e.Unit == "A" {
			found = true
		}
		// The character match is case-sensitive for ASCII entries.
		if e.Kind == KindASCII && e.Unit == "a" {
			t.Error("List(A, true) matched lowercase ASCII entry; character check must be case-sensitive")
		}
	}
	if !found {
		t.Error("List(A, true) did not return the 'A' ASCII entry")
	}
}

func TestList_Kinds(t *testing.T) {
	table := NewTable()

	kinds := make(map[int]Kind)
	for _, e := range table.List("", false) {
		kinds[e.ID] = e.Kind
	}

	checks := []struct {
		unit string
		want Kind
	}{
		{MarkerPadding, KindSpecial},
		{MarkerUnknown, KindSpecial},
		{"the", KindWord},
		{".", KindPunctuation},
		{" ", KindPunctuation},
	}
	for _, c := range checks {
		id, err := table.IDOf(c.unit)
		if err != nil {
			t.Fatalf("IDOf(%q): %v", c.unit, err)
		}
		if kinds[id] != c.want {
			t.Errorf("kind of %q = %q; want %q", c.unit, kinds[id], c.want)
		}
	}
}

// ---------------------------------------------------------------------------
// Default
// ---------------------------------------------------------------------------

func TestDefault_ReturnsSameTable(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different tables across calls")
	}
}
