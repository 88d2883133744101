// Package rollscan provides content-defined chunking (CDC) built on two
// lightweight rolling hashes: a shift-mask hash over the last three bytes for
// buffer scanning, and a sliding-window hash over a circular buffer for
// incremental, vocabulary-aware edge detection.
//
// # Overview
//
// Content-defined chunking splits a byte stream into variable-length chunks
// at boundaries chosen by the local content itself, so identical byte runs
// produce identical chunks regardless of insertions or deletions elsewhere in
// the stream. This package only decides where to cut; fingerprinting and
// storing the resulting chunks belongs to the caller.
//
// Three scanners of increasing capability are provided:
//
//   - Scan flags every position whose rolling hash hits a fixed residue, with
//     no spacing constraint. Expected spacing is about 4 KiB on varied data.
//   - ScanBounded adds enforced minimum/maximum chunk sizes and a resumable
//     accumulated-length carry, for streams scanned buffer by buffer.
//   - EdgeScanner is a persistent context that finds the next boundary one
//     call at a time and can prefer semantically meaningful cut points
//     through an installed Vocabulary of trigger words, each hash hit
//     confirmed against the literal trailing bytes in its circular window.
//
// # Quick Start
//
// Streaming API over the bounded scan:
//
//	chunker, _ := rollscan.NewChunker(reader, rollscan.WithMaxBlock(8*1024))
//	for {
//	    chunk, err := chunker.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    // Process chunk.Data
//	}
//
// Low-level resumable API, threading the carry state yourself:
//
//	offsets, hash, sofar, err := rollscan.ScanBounded(buf, hash, sofar, 1024, 8*1024)
//
// Vocabulary-aware edge detection:
//
//	vocab, _ := rollscan.NewVocabulary(rollscan.Entry{
//	    Word:     []byte("\nEND\n"),
//	    TailHash: rollscan.TailHash([]byte("\nEND\n"), 5),
//	})
//	scanner, _ := rollscan.NewEdgeScanner(vocab)
//	edge, found, err := scanner.FindEdge(unit, 0, pending, 1024, 8*1024)
//
// # Resumability
//
// Every scanner's future behavior is fully determined by its carried state:
// the hash value (plus accumulated length for ScanBounded, plus window
// contents for EdgeScanner). Splitting a stream across calls and threading
// that state forward yields exactly the boundaries of a single scan. This is
// what makes the package usable on input larger than memory or arriving in
// pieces.
//
// # Thread Safety
//
// Scan and ScanBounded are pure functions; calls with independent carry
// chains may run concurrently. Chunker and EdgeScanner are stateful and
// single-owner: use one instance per goroutine, or recycle instances through
// ChunkerPool and EdgeScannerPool. The hot loops allocate nothing per byte.
package rollscan
