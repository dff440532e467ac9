package vocab

// Special marker texts. MarkerUnknown is also what Decode substitutes for
// token ids it cannot resolve.
const (
	MarkerPadding = "<PAD>"
	MarkerUnknown = "<UNK>"
	MarkerStart   = "<START>"
	MarkerEnd     = "<END>"
	MarkerMask    = "<MASK>"
	MarkerNewline = "<NEWLINE>"
	MarkerTab     = "<TAB>"
	MarkerSpace   = "<SPACE>"
)

// specialMarkers is block A of the vocabulary, ids assigned from 0 in order.
var specialMarkers = []string{
	MarkerPadding,
	MarkerUnknown,
	MarkerStart,
	MarkerEnd,
	MarkerMask,
	MarkerNewline,
	MarkerTab,
	MarkerSpace,
}

// commonWords is block B: a small fixed list of frequent English words,
// stored lowercase. Ids continue sequentially after block A. The table
// constructor skips duplicates, so repeated entries never claim an id.
var commonWords = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"he", "was", "for", "on", "are", "as", "with", "his", "they", "i",
	"at", "be", "this", "have", "from", "or", "one", "had", "by", "word",
	"but", "not", "what", "all", "were", "we", "when", "your", "can", "said",
	"there", "use", "an", "each", "which", "she", "do", "how", "their", "if",
	"will", "up", "other", "about", "out", "many", "then", "them", "these", "so",
	"some", "her", "would", "make", "like", "him", "into", "time", "has", "look",
	"two", "more", "write", "go", "see", "number", "no", "way", "could", "people",
	"my", "than", "first", "water", "been", "call", "who", "oil", "its", "now",
	"find", "long", "down", "day", "did", "get", "come", "made", "may", "part",
}

// punctuationRunes is the fixed set of single characters that both delimit
// units during splitting and form the start of block C.
var punctuationRunes = []rune{
	'.', ',', '!', '?', ';', ':', '"', '\'',
	'(', ')', '[', ']', '{', '}',
	'-', '_', '+', '=', '*', '/', '\\', '|',
	'@', '#', '$', '%', '^', '&', '<', '>', '~', '`',
}

// whitespaceUnits closes block C: the literal characters that can appear as
// decoded output for whitespace token ids.
var whitespaceUnits = []string{" ", "\t", "\n"}

// IsPunctuation reports whether r belongs to the fixed punctuation set used
// for unit splitting.
func IsPunctuation(r rune) bool {
	for _, p := range punctuationRunes {
		if r == p {
			return true
		}
	}
	return false
}
