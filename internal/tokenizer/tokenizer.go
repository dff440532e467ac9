// Package tokenizer converts text to and from integer token ids using the
// fixed vocabulary table, with a per-character numeric fallback for units
// the vocabulary does not cover. Encode, Decode, and Stats are pure
// functions of their input plus the read-only table, so an Engine is safe
// for concurrent use.
package tokenizer

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/example/toklab/internal/vocab"
)

// maxCharCode bounds the character codes the fallback range can decode.
// Ids whose offset-relative code exceeds it degrade to the unknown marker.
const maxCharCode = 0xFFFF

// Process descriptions recorded in trace steps.
const (
	processVocabHit      = "found in vocabulary"
	processASCIIFallback = "ASCII fallback"
	processASCIIDecode   = "ASCII decode"
	processUnknown       = "unknown token"
)

// EncodeStep records how one unit was resolved during encoding.
type EncodeStep struct {
	Step    int    `json:"step"`
	Unit    string `json:"unit"`
	Process string `json:"process"`
	IDs     []int  `json:"ids"`
}

// DecodeStep records how one token id was resolved during decoding.
type DecodeStep struct {
	Step    int    `json:"step"`
	ID      int    `json:"id"`
	Process string `json:"process"`
	Text    string `json:"text"`
}

// EncodeResult is the outcome of one Encode call. The trace belongs to the
// call that produced it; nothing is shared between invocations.
type EncodeResult struct {
	TokenIDs   []int        `json:"token_ids"`
	Trace      []EncodeStep `json:"trace"`
	CharCount  int          `json:"char_count"`
	TokenCount int          `json:"token_count"`
}

// DecodeResult is the outcome of one Decode call.
type DecodeResult struct {
	Text  string       `json:"text"`
	Trace []DecodeStep `json:"trace"`
}

// Stats summarizes an encoding without exposing the token sequence.
// CompressionRatioPercent is signed: negative means tokenization expanded
// the input, which fallback-heavy text is expected to do.
type Stats struct {
	CharCount               int     `json:"char_count"`
	TokenCount              int     `json:"token_count"`
	CompressionRatioPercent float64 `json:"compression_ratio_percent"`
}

// Engine performs text/token conversion against a vocabulary table.
type Engine struct {
	table *vocab.Table
}

// New returns an Engine backed by the given table.
func New(table *vocab.Table) *Engine {
	return &Engine{table: table}
}

// NewDefault returns an Engine backed by the process-wide vocabulary table.
func NewDefault() *Engine {
	return New(vocab.Default())
}

// Encode splits text into units and resolves each against the vocabulary.
// Units without an entry fall back to one id per character of the
// original-case unit, computed as character code plus the ASCII offset.
func (e *Engine) Encode(text string) EncodeResult {
	result := EncodeResult{
		TokenIDs:  []int{},
		Trace:     []EncodeStep{},
		CharCount: utf8.RuneCountInString(text),
	}
	if text == "" {
		return result
	}

	for i, unit := range SplitUnits(text) {
		folded := strings.ToLower(unit)

		id, err := e.table.IDOf(folded)
		if err == nil {
			result.TokenIDs = append(result.TokenIDs, id)
			result.Trace = append(result.Trace, EncodeStep{
				Step:    i,
				Unit:    unit,
				Process: processVocabHit,
				IDs:     []int{id},
			})
			continue
		}

		ids := make([]int, 0, utf8.RuneCountInString(unit))
		for _, r := range unit {
			ids = append(ids, int(r)+vocab.ASCIIOffset)
		}
		result.TokenIDs = append(result.TokenIDs, ids...)
		result.Trace = append(result.Trace, EncodeStep{
			Step:    i,
			Unit:    unit,
			Process: processASCIIFallback,
			IDs:     ids,
		})
	}

	result.TokenCount = len(result.TokenIDs)
	return result
}

// Decode converts a token id sequence back into text. Vocabulary ids yield
// their unit, ids in the fallback range yield the character for
// id - offset, and anything else degrades per-token to the unknown marker.
// Decode never fails; the output is the concatenation in input order with
// no separators.
func (e *Engine) Decode(tokenIDs []int) DecodeResult {
	result := DecodeResult{Trace: []DecodeStep{}}

	var out strings.Builder
	for i, id := range tokenIDs {
		step := DecodeStep{Step: i, ID: id}

		// Branch on the fallback offset before consulting the table; ids in
		// the fallback range are never vocabulary lookups.
		if id >= vocab.ASCIIOffset {
			if code := id - vocab.ASCIIOffset; code <= maxCharCode {
				step.Process = processASCIIDecode
				step.Text = string(rune(code))
			} else {
				step.Process = processUnknown
				step.Text = vocab.MarkerUnknown
			}
		} else if unit, err := e.table.UnitOf(id); err == nil {
			step.Process = processVocabHit
			step.Text = unit
		} else {
			step.Process = processUnknown
			step.Text = vocab.MarkerUnknown
		}

		out.WriteString(step.Text)
		result.Trace = append(result.Trace, step)
	}

	result.Text = out.String()
	return result
}

// Stats re-runs Encode and derives the compression ratio, rounded to one
// decimal place. Empty input reports a ratio of 0.
func (e *Engine) Stats(text string) Stats {
	enc := e.Encode(text)

	stats := Stats{
		CharCount:  enc.CharCount,
		TokenCount: enc.TokenCount,
	}
	if stats.CharCount > 0 {
		raw := float64(stats.CharCount-stats.TokenCount) / float64(stats.CharCount) * 100
		stats.CompressionRatioPercent = math.Round(raw*10) / 10
	}

	return stats
}
