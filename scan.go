package rollscan

// The buffer scanners share one rolling hash: each byte contributes its low
// seven bits XORed with its top bit, and the accumulator keeps only the low
// 21 bits before every shift. With 7 bits injected per byte, anything older
// than three bytes falls off the top on the next iteration, so the masking
// itself is the history window and no byte buffer is needed.
const (
	// hashMask retains the low 21 bits of the accumulator before each shift.
	hashMask = 0x001fffff

	// magicModulus and magicResidue define the boundary test
	// hash % magicModulus == magicResidue. The modulus is prime, giving a
	// roughly uniform 1-in-4093 hit rate per byte on varied content and
	// therefore an expected chunk size near 4 KiB.
	magicModulus = 4093
	magicResidue = 4091
)

// rollByte advances the shift-mask rolling hash by one byte.
func rollByte(hash uint64, b byte) uint64 {
	return ((hash & hashMask) << 7) | uint64((b&0x7f)^((b&0x80)>>7))
}

// isMagic reports whether a hash value marks a chunk boundary.
func isMagic(hash uint64) bool {
	return hash%magicModulus == magicResidue
}

// Scan walks buf with the rolling hash seeded from hash and returns the
// offsets whose hash hits the boundary test, along with the final hash value.
//
// Each offset is the index of the byte that completed the boundary, so all
// offsets are in [0, len(buf)). No spacing is enforced: matches may land on
// consecutive bytes. Pass 0 as the initial hash at the start of a stream, and
// thread the returned hash into the Scan of the following buffer to continue
// the same stream.
//
// The returned slice is freshly allocated on the first match and owned by the
// caller; buf is only read.
func Scan(hash uint64, buf []byte) ([]int, uint64) {
	var offsets []int

	for i, b := range buf {
		hash = rollByte(hash, b)
		if isMagic(hash) {
			offsets = append(offsets, i)
		}
	}

	return offsets, hash
}

// ScanBounded is Scan with a minimum and maximum distance enforced between
// boundaries.
//
// sofar is the number of bytes already accumulated for the open chunk before
// buf (0 at stream start); minBlock and maxBlock bound the chunk length, with
// 0 < minBlock < maxBlock. After updating the hash and counting the byte, the
// scanner never cuts below minBlock, always cuts once the count reaches
// maxBlock, and otherwise cuts on the boundary test. Every cut resets the
// count and scanning continues within the same buffer.
//
// It returns the cut offsets (inclusive index of each chunk's last byte), the
// final hash, and the final accumulated count; the caller threads the last
// two into the next call. Chunk lengths derived from consecutive offsets are
// always within [minBlock, maxBlock]. The trailing, still-open chunk is never
// flushed: at end of stream the caller emits the remainder itself.
//
// ErrInvalidMinBlock, ErrBlockBounds, or ErrInvalidSofar is returned before
// any scanning if the arguments are out of range.
func ScanBounded(buf []byte, hash uint64, sofar, minBlock, maxBlock int) ([]int, uint64, int, error) {
	if minBlock <= 0 {
		return nil, hash, sofar, ErrInvalidMinBlock
	}

	if minBlock >= maxBlock {
		return nil, hash, sofar, ErrBlockBounds
	}

	if sofar < 0 {
		return nil, hash, sofar, ErrInvalidSofar
	}

	if len(buf) == 0 {
		return nil, hash, sofar, nil
	}

	offsets := make([]int, 0, len(buf)/minBlock+1)

	for i, b := range buf {
		hash = rollByte(hash, b)
		sofar++

		if sofar < minBlock {
			// Too early to cut.
			continue
		}

		if sofar >= maxBlock || isMagic(hash) {
			offsets = append(offsets, i)
			sofar = 0
		}
	}

	return offsets, hash, sofar, nil
}
