package rollscan_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/rollscan/rollscan"
)

func FuzzScanResumability(f *testing.F) {
	f.Add([]byte("content to be chunked into multiple pieces to verify resumable scanning"), 10)
	f.Add(make([]byte, 4096), 100)
	f.Add([]byte{0xFF, 0xFF, 0x10, 0x00}, 2)

	f.Fuzz(func(t *testing.T, data []byte, split int) {
		if split < 0 || split > len(data) {
			return
		}

		whole, wholeHash := rollscan.Scan(0, data)

		first, hash := rollscan.Scan(0, data[:split])
		second, hash := rollscan.Scan(hash, data[split:])

		if hash != wholeHash {
			t.Fatalf("final hash %#x, want %#x", hash, wholeHash)
		}

		if len(first)+len(second) != len(whole) {
			t.Fatalf("offset count %d+%d, want %d", len(first), len(second), len(whole))
		}

		for i, off := range whole {
			var got int
			if i < len(first) {
				got = first[i]
			} else {
				got = second[i-len(first)] + split
			}

			if got != off {
				t.Fatalf("offset %d is %d, want %d", i, got, off)
			}
		}
	})
}

func FuzzScanBounded(f *testing.F) {
	f.Add([]byte("some data to find boundaries in"), 4, 16, 3)
	f.Add(make([]byte, 8192), 1024, 4096, 100)

	f.Fuzz(func(t *testing.T, data []byte, minBlock, maxBlock, split int) {
		whole, wholeHash, wholeSofar, err := rollscan.ScanBounded(data, 0, 0, minBlock, maxBlock)
		if err != nil {
			// Skip invalid configurations
			return
		}

		// Boundaries are in range and properly spaced.
		prev := -1

		for _, off := range whole {
			if off < 0 || off >= len(data) {
				t.Fatalf("offset %d out of range for %d bytes", off, len(data))
			}

			if length := off - prev; length < minBlock || length > maxBlock {
				t.Fatalf("chunk length %d outside [%d, %d]", length, minBlock, maxBlock)
			}

			prev = off
		}

		// Splitting the buffer and carrying state changes nothing.
		if split < 0 || split > len(data) {
			return
		}

		first, hash, sofar, err := rollscan.ScanBounded(data[:split], 0, 0, minBlock, maxBlock)
		if err != nil {
			t.Fatal(err)
		}

		second, hash, sofar, err := rollscan.ScanBounded(data[split:], hash, sofar, minBlock, maxBlock)
		if err != nil {
			t.Fatal(err)
		}

		if hash != wholeHash || sofar != wholeSofar {
			t.Fatalf("carry (%#x, %d), want (%#x, %d)", hash, sofar, wholeHash, wholeSofar)
		}

		if len(first)+len(second) != len(whole) {
			t.Fatalf("offset count %d+%d, want %d", len(first), len(second), len(whole))
		}
	})
}

func FuzzChunker(f *testing.F) {
	f.Add([]byte("content to be chunked into multiple pieces to verify the chunker works correctly"), 16, 64)
	f.Add(make([]byte, 1024), 128, 512)

	f.Fuzz(func(t *testing.T, data []byte, minBlock, maxBlock int) {
		// The internal buffer grows to maxBlock; keep it reasonable.
		if maxBlock > 1<<20 {
			return
		}

		chunker, err := rollscan.NewChunker(bytes.NewReader(data),
			rollscan.WithMinBlock(minBlock),
			rollscan.WithMaxBlock(maxBlock),
		)
		if err != nil {
			// Skip invalid configurations
			return
		}

		var total uint64

		for {
			chunk, err := chunker.Next()
			if errors.Is(err, io.EOF) {
				break
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if chunk.Length == 0 {
				t.Fatal("chunk length is 0")
			}

			if chunk.Length > maxBlock {
				t.Fatalf("chunk length %d exceeds maximum size %d", chunk.Length, maxBlock)
			}

			// The last chunk is allowed to be smaller than the minimum size.
			isLastChunk := chunk.Offset+uint64(chunk.Length) == uint64(len(data))
			if !isLastChunk && chunk.Length < minBlock {
				t.Fatalf("chunk length %d is less than minimum size %d", chunk.Length, minBlock)
			}

			if chunk.Offset+uint64(chunk.Length) > uint64(len(data)) {
				t.Fatalf("chunk out of bounds: offset %d, length %d, data size %d", chunk.Offset, chunk.Length, len(data))
			}

			if !bytes.Equal(data[chunk.Offset:chunk.Offset+uint64(chunk.Length)], chunk.Data) {
				t.Fatal("chunk data does not match original data")
			}

			total += uint64(chunk.Length)
		}

		if uint64(len(data)) != total {
			t.Errorf("total length mismatch: got %d, want %d", total, len(data))
		}
	})
}

func FuzzFindEdge(f *testing.F) {
	f.Add([]byte("some textEND more text"), 4, 1000)
	f.Add(make([]byte, 64), 4, 16)

	f.Fuzz(func(t *testing.T, data []byte, minBlock, maxBlock int) {
		vocab, err := rollscan.NewVocabulary(rollscan.Entry{
			Word:     []byte("END"),
			TailHash: rollscan.TailHash([]byte("tEND"), rollscan.MinWindowSize),
		})
		if err != nil {
			t.Fatal(err)
		}

		e, err := rollscan.NewEdgeScanner(vocab)
		if err != nil {
			t.Fatal(err)
		}

		edge, found, err := e.FindEdge(data, 0, 0, minBlock, maxBlock)
		if err != nil {
			// Skip invalid configurations
			return
		}

		if !found {
			return
		}

		// Vocabulary cuts may land up to a CutOffset away, but with a
		// zero CutOffset every cut stays within the consumed bytes.
		if edge < 1 || edge > len(data) {
			t.Fatalf("edge %d out of range for %d bytes", edge, len(data))
		}

		if edge > maxBlock {
			t.Fatalf("edge %d beyond maxBlock %d", edge, maxBlock)
		}
	})
}
