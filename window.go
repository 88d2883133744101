package rollscan

// ring is the fixed-capacity circular window of the most recently consumed
// bytes. Slots start zeroed, which makes the evicted byte of a part-filled
// window 0 and keeps the window hash consistent from the first byte on.
type ring struct {
	buf    []byte
	off    int // next slot to overwrite
	filled int // real bytes written since reset, capped at len(buf)
}

func newRing(capacity int) ring {
	return ring{buf: make([]byte, capacity)}
}

// push overwrites the oldest slot with b and returns the evicted byte.
func (r *ring) push(b byte) byte {
	out := r.buf[r.off]
	r.buf[r.off] = b

	r.off++
	if r.off >= len(r.buf) {
		r.off = 0
	}

	if r.filled < len(r.buf) {
		r.filled++
	}

	return out
}

// tailEquals reports whether the most recent len(word) bytes equal word,
// oldest byte first. It refuses to match until that many real bytes have
// been written, so a freshly reset window never matches on its zero fill.
func (r *ring) tailEquals(word []byte) bool {
	n := len(word)
	if n == 0 || n > r.filled {
		return false
	}

	i := r.off - n
	if i < 0 {
		i += len(r.buf)
	}

	for _, w := range word {
		if r.buf[i] != w {
			return false
		}

		i++
		if i >= len(r.buf) {
			i = 0
		}
	}

	return true
}

// reset zeroes the window contents and counters without reallocating.
func (r *ring) reset() {
	clear(r.buf)
	r.off = 0
	r.filled = 0
}
