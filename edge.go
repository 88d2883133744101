package rollscan

import "fmt"

// naiveEdgeHash is the window-hash value of the alignment-based cut test:
// a cut is taken when the hash equals it on an 8-byte-aligned position.
const naiveEdgeHash = 511

// edgeAlign is the position alignment the naive cut test requires.
const edgeAlign = 8

// EdgeScanner is a persistent rolling-hash context that finds boundaries one
// call at a time across an arbitrarily long logical stream, fed as a sequence
// of units. Unlike the Scan functions, its hash is a true sliding window over
// the last few consumed bytes, held in a circular buffer so an installed
// Vocabulary can confirm candidate cuts against the literal trailing bytes.
//
// An EdgeScanner is mutated in place on every call and is strictly
// single-owner: concurrent use of one scanner is undefined. Scan disjoint
// streams with separate scanners (see EdgeScannerPool).
type EdgeScanner struct {
	hash  int
	win   ring
	vocab *Vocabulary

	// fixedCap pins the window capacity; 0 tracks the vocabulary.
	fixedCap int
}

// NewEdgeScanner creates an EdgeScanner with the given vocabulary, which may
// be nil or empty for purely numeric edge detection.
func NewEdgeScanner(vocab *Vocabulary, opts ...Option) (*EdgeScanner, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &EdgeScanner{fixedCap: cfg.windowCap}
	if err := e.SetVocabulary(vocab); err != nil {
		return nil, err
	}

	return e, nil
}

// SetVocabulary installs a new vocabulary, discarding the previous one. The
// hash and window are zeroed and the window is resized to fit the longest
// word (at least MinWindowSize), so the next FindEdge behaves as on a fresh
// scanner. With a fixed window capacity, a vocabulary whose longest word does
// not fit is rejected with ErrWordTooLong and the scanner is left unchanged.
func (e *EdgeScanner) SetVocabulary(vocab *Vocabulary) error {
	capacity := MinWindowSize
	if n := vocab.MaxWordLen(); n > capacity {
		capacity = n
	}

	if e.fixedCap > 0 {
		if capacity > e.fixedCap {
			return fmt.Errorf("%w: longest word %d, capacity %d",
				ErrWordTooLong, vocab.MaxWordLen(), e.fixedCap)
		}

		capacity = e.fixedCap
	}

	e.vocab = vocab
	e.hash = 0

	if capacity == len(e.win.buf) {
		e.win.reset()
	} else {
		e.win = newRing(capacity)
	}

	return nil
}

// Reset zeroes the hash and window for a new stream, keeping the current
// vocabulary installed.
func (e *EdgeScanner) Reset() {
	e.hash = 0
	e.win.reset()
}

// Hash returns the current window hash.
func (e *EdgeScanner) Hash() int {
	return e.hash
}

// WindowSize returns the capacity of the circular window.
func (e *EdgeScanner) WindowSize() int {
	return len(e.win.buf)
}

// FindEdge scans the unit s from offset for the next boundary, with pending
// bytes already accumulated for the open chunk by earlier calls and chunk
// length bounded by 0 < minBlock < maxBlock.
//
// The length tested against the bounds is pending plus the position within
// s, so a non-zero offset counts toward it; to start a fresh chunk after a
// cut, reslice the unit at the cut instead of resuming by offset.
//
// Each byte slides the window forward, then the cheapest test that fires
// decides the cut, in fixed priority order: below minBlock nothing cuts; at
// or past maxBlock the cap cuts unconditionally; then the naive aligned-hash
// test; then the vocabulary entries in order, each hash hit confirmed against
// the literal window tail before it counts. The reported edge is the number
// of bytes of s consumed (an exclusive end relative to the start of s),
// shifted by the winning entry's CutOffset for vocabulary cuts.
//
// If s is exhausted without a cut, found is false and the scanner's hash and
// window carry over unchanged into the next call; the caller continues with
// the next unit and pending grown by len(s) - offset.
func (e *EdgeScanner) FindEdge(s []byte, offset, pending, minBlock, maxBlock int) (edge int, found bool, err error) {
	if minBlock <= 0 {
		return 0, false, ErrInvalidMinBlock
	}

	if minBlock >= maxBlock {
		return 0, false, fmt.Errorf("%w: minBlock (%d), maxBlock (%d)", ErrBlockBounds, minBlock, maxBlock)
	}

	if offset < 0 || offset > len(s) {
		return 0, false, fmt.Errorf("%w: offset %d, unit length %d", ErrInvalidOffset, offset, len(s))
	}

	if pending < 0 {
		return 0, false, ErrInvalidPending
	}

	length := pending + offset

	for i := offset; i < len(s); i++ {
		out := e.win.push(s[i])
		e.hash += fold(s[i]) - fold(out)
		length++

		pos := i + 1 // bytes of s consumed

		if length < minBlock {
			// Too early to cut.
			continue
		}

		if length >= maxBlock {
			return pos, true, nil
		}

		if e.hash == naiveEdgeHash && pos%edgeAlign == 0 {
			return pos, true, nil
		}

		if e.vocab == nil {
			continue
		}

		for _, entry := range e.vocab.entries {
			if e.hash == entry.TailHash && e.win.tailEquals(entry.Word) {
				return pos + entry.CutOffset, true, nil
			}
		}
	}

	return 0, false, nil
}
