package rollscan

import "fmt"

// Entry is one vocabulary word an EdgeScanner prefers as a cut point.
//
// TailHash is the window hash expected at the moment the word's final byte
// has just been consumed. Because the window hash is a folded sum over the
// whole window, a word shorter than the window picks up the contribution of
// whatever precedes it; use TailHash with the word's surrounding context (or
// words at least as long as the window) to compute it.
//
// CutOffset shifts the reported boundary relative to the position just past
// the word's final byte. 0 cuts immediately after the word; negative values
// cut inside or before it.
type Entry struct {
	Word      []byte
	CutOffset int
	TailHash  int
}

// Vocabulary is an ordered set of entries. On every byte where the numeric
// boundary test fails, entries are consulted in order and the first hit wins;
// the order is part of the chunking contract, since it resolves hash
// collisions between entries reproducibly.
type Vocabulary struct {
	entries    []Entry
	maxWordLen int
}

// NewVocabulary validates the entries and builds a Vocabulary. Entries with
// empty words are rejected with ErrEmptyWord. Entry words are copied, so
// callers may reuse their slices.
func NewVocabulary(entries ...Entry) (*Vocabulary, error) {
	v := &Vocabulary{entries: make([]Entry, 0, len(entries))}

	for i, e := range entries {
		if len(e.Word) == 0 {
			return nil, fmt.Errorf("%w: entry %d", ErrEmptyWord, i)
		}

		word := make([]byte, len(e.Word))
		copy(word, e.Word)
		e.Word = word

		if len(e.Word) > v.maxWordLen {
			v.maxWordLen = len(e.Word)
		}

		v.entries = append(v.entries, e)
	}

	return v, nil
}

// Len returns the number of entries.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}

	return len(v.entries)
}

// MaxWordLen returns the length of the longest word, 0 for an empty or nil
// vocabulary.
func (v *Vocabulary) MaxWordLen() int {
	if v == nil {
		return 0
	}

	return v.maxWordLen
}

// fold is the per-byte contribution to the window hash: the byte with its
// nibbles swapped.
func fold(b byte) int {
	return int(b&0x0f)<<4 | int(b&0xf0)>>4
}

// TailHash computes the window hash an EdgeScanner with the given window size
// holds after consuming tail as its most recent bytes: the folded sum of the
// last windowSize bytes. When tail is shorter than the window the remaining
// slots are taken as zero, which is exact right after a reset and otherwise
// an approximation; pass the word together with its expected preceding
// context for an exact value.
func TailHash(tail []byte, windowSize int) int {
	if len(tail) > windowSize {
		tail = tail[len(tail)-windowSize:]
	}

	h := 0
	for _, b := range tail {
		h += fold(b)
	}

	return h
}
