// Package text handles the raw-input plumbing that sits in front of the
// tokenizer engine: line-ending normalization and parsing of user-supplied
// token lists. The engine itself only ever sees clean strings and integer
// slices.
package text

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidToken is returned by ParseTokenIDs when an item in the list is
// not a non-negative integer.
var ErrInvalidToken = errors.New("invalid token id")

// ParseTokenIDs parses a comma-separated list of token ids, e.g. "8, 2099".
// Blank items are skipped, so trailing commas are tolerated. A non-numeric
// or negative item fails the whole parse; validation happens here so the
// decoder is only ever handed well-formed integers.
func ParseTokenIDs(s string) ([]int, error) {
	ids := []int{}

	for i, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		id, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d (%q) is not an integer", ErrInvalidToken, i+1, item)
		}
		if id < 0 {
			return nil, fmt.Errorf("%w: item %d (%d) is negative", ErrInvalidToken, i+1, id)
		}

		ids = append(ids, id)
	}

	return ids, nil
}
