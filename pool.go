package rollscan

import (
	"io"
	"sync"
)

// ChunkerPool is a pool of Chunker instances for reuse in high-throughput
// scenarios. It reduces allocations by recycling chunkers instead of creating
// new ones.
type ChunkerPool struct {
	pool sync.Pool
	opts []Option
}

// NewChunkerPool creates a new ChunkerPool with the given options.
// All chunkers created from this pool will use these options.
func NewChunkerPool(opts ...Option) (*ChunkerPool, error) {
	// Validate options by creating a test chunker
	_, err := NewChunker(nil, opts...)
	if err != nil {
		return nil, err
	}

	return &ChunkerPool{
		opts: opts,
	}, nil
}

// Get retrieves a Chunker from the pool, or creates a new one if the pool is
// empty. The chunker is configured with the given reader and ready to use.
func (p *ChunkerPool) Get(r io.Reader) (*Chunker, error) {
	if v := p.pool.Get(); v != nil {
		chunker := v.(*Chunker)
		chunker.Reset(r)

		return chunker, nil
	}

	return NewChunker(r, p.opts...)
}

// Put returns a Chunker to the pool for reuse.
// The chunker should not be used after being returned to the pool.
func (p *ChunkerPool) Put(c *Chunker) {
	// Clear the reader to avoid holding references
	c.reader = nil
	p.pool.Put(c)
}

// EdgeScannerPool is a pool of EdgeScanner instances for reuse. Every scanner
// handed out is freshly reset, so the single-owner contract holds as long as
// a scanner is not used after Put.
type EdgeScannerPool struct {
	pool  sync.Pool
	vocab *Vocabulary
	opts  []Option
}

// NewEdgeScannerPool creates a new EdgeScannerPool. All scanners created from
// this pool share the given vocabulary and options.
func NewEdgeScannerPool(vocab *Vocabulary, opts ...Option) (*EdgeScannerPool, error) {
	// Validate the vocabulary and options by creating a test scanner
	_, err := NewEdgeScanner(vocab, opts...)
	if err != nil {
		return nil, err
	}

	return &EdgeScannerPool{
		vocab: vocab,
		opts:  opts,
	}, nil
}

// Get retrieves an EdgeScanner from the pool, or creates a new one if the
// pool is empty.
func (p *EdgeScannerPool) Get() (*EdgeScanner, error) {
	if v := p.pool.Get(); v != nil {
		e := v.(*EdgeScanner)
		e.Reset()

		return e, nil
	}

	return NewEdgeScanner(p.vocab, p.opts...)
}

// Put returns an EdgeScanner to the pool for reuse.
// The scanner should not be used after being returned to the pool.
func (p *EdgeScannerPool) Put(e *EdgeScanner) {
	e.Reset()
	p.pool.Put(e)
}
