package rollscan

import (
	"errors"
	"io"
)

// Chunk represents a content-defined chunk with its metadata.
type Chunk struct {
	Offset uint64 // Absolute offset in the stream
	Length int    // Chunk size in bytes
	Hash   uint64 // Rolling hash value at the boundary
	Data   []byte // Chunk data (points into the internal buffer)
}

// Chunker provides a streaming API over the bounded boundary scan. It wraps
// an io.Reader and returns chunks via Next(), threading the rolling hash and
// accumulated length across buffer refills internally so chunk boundaries are
// identical to a single ScanBounded pass over the whole stream.
//
// Unlike ScanBounded, the Chunker does flush the trailing chunk: whatever
// remains open at end of stream is returned as a final, possibly short chunk
// before io.EOF.
type Chunker struct {
	reader io.Reader

	minBlock int
	maxBlock int

	hash  uint64 // carried rolling hash
	sofar int    // bytes accumulated for the open chunk

	buf    []byte // internal buffer
	cursor int    // current position in buffer
	offset uint64 // absolute offset in stream
	eof    bool   // EOF reached
}

// NewChunker creates a Chunker reading from r.
func NewChunker(r io.Reader, opts ...Option) (*Chunker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Chunker{
		reader:   r,
		minBlock: cfg.minBlock,
		maxBlock: cfg.maxBlock,
		buf:      make([]byte, cfg.bufferSize),
		cursor:   cfg.bufferSize, // start with empty buffer (triggers initial read)
	}, nil
}

// fillBuffer ensures the buffer has enough data for chunking.
// It moves unconsumed data to the front and reads more from the reader.
func (c *Chunker) fillBuffer() error {
	n := len(c.buf) - c.cursor
	if n >= c.maxBlock {
		return nil
	}

	// Move unconsumed data to the front of the buffer
	copy(c.buf[:n], c.buf[c.cursor:])
	c.cursor = 0

	if c.eof {
		c.buf = c.buf[:n]

		return nil
	}

	// Fill the rest of the buffer
	m, err := io.ReadFull(c.reader, c.buf[n:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		c.buf = c.buf[:n+m]
		c.eof = true
	} else if err != nil {
		return err
	}

	return nil
}

// findBoundary advances the carried hash and length over data and returns the
// exclusive end of the first chunk, or (len(data), false) when data runs out
// with the chunk still open.
func (c *Chunker) findBoundary(data []byte) (int, bool) {
	hash := c.hash
	sofar := c.sofar
	minBlock := c.minBlock
	maxBlock := c.maxBlock

	for i, b := range data {
		hash = rollByte(hash, b)
		sofar++

		if sofar < minBlock {
			continue
		}

		if sofar >= maxBlock || isMagic(hash) {
			c.hash = hash
			c.sofar = 0

			return i + 1, true
		}
	}

	c.hash = hash
	c.sofar = sofar

	return len(data), false
}

// Next returns the next chunk from the stream.
// Returns io.EOF when the stream is exhausted.
//
// The returned Chunk.Data slice is valid until the next call to Next().
// If you need to keep the data, copy it to your own buffer.
func (c *Chunker) Next() (Chunk, error) {
	if err := c.fillBuffer(); err != nil {
		return Chunk{}, err
	}

	if len(c.buf) == 0 || c.cursor >= len(c.buf) {
		return Chunk{}, io.EOF
	}

	available := c.buf[c.cursor:]

	// A boundary is found within maxBlock bytes by construction; not
	// finding one means the stream ended with an open chunk, which is
	// flushed here as the final short chunk.
	boundary, found := c.findBoundary(available)
	if !found {
		boundary = len(available)
		c.sofar = 0
	}

	chunk := Chunk{
		Offset: c.offset,
		Length: boundary,
		Hash:   c.hash,
		Data:   available[:boundary],
	}

	c.cursor += boundary
	c.offset += uint64(boundary)

	return chunk, nil
}

// Reset resets the chunker to start processing a new stream.
// The reader is replaced with the provided one, and all state is cleared.
func (c *Chunker) Reset(r io.Reader) {
	c.reader = r
	c.hash = 0
	c.sofar = 0
	c.buf = c.buf[:cap(c.buf)] // restore buffer to full capacity
	c.cursor = len(c.buf)      // start with empty buffer
	c.offset = 0
	c.eof = false
}

// Offset returns the current absolute offset in the stream.
func (c *Chunker) Offset() uint64 {
	return c.offset
}

// MinBlock returns the minimum chunk size.
func (c *Chunker) MinBlock() int {
	return c.minBlock
}

// MaxBlock returns the maximum chunk size.
func (c *Chunker) MaxBlock() int {
	return c.maxBlock
}
