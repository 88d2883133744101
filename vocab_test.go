package rollscan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rollscan/rollscan"
)

func TestNewVocabulary(t *testing.T) {
	t.Parallel()

	vocab, err := rollscan.NewVocabulary(
		rollscan.Entry{Word: []byte("END"), TailHash: 451},
		rollscan.Entry{Word: []byte("\n\n"), TailHash: 320},
	)
	require.NoError(t, err)

	assert.Equal(t, 2, vocab.Len())
	assert.Equal(t, 3, vocab.MaxWordLen())
}

func TestNewVocabularyEmptyWord(t *testing.T) {
	t.Parallel()

	_, err := rollscan.NewVocabulary(
		rollscan.Entry{Word: []byte("ok"), TailHash: 1},
		rollscan.Entry{Word: nil, TailHash: 2},
	)
	require.ErrorIs(t, err, rollscan.ErrEmptyWord)
	assert.ErrorContains(t, err, "entry 1")
}

func TestNewVocabularyCopiesWords(t *testing.T) {
	t.Parallel()

	word := []byte("END")

	vocab, err := rollscan.NewVocabulary(rollscan.Entry{
		Word:     word,
		TailHash: rollscan.TailHash([]byte("tEND"), rollscan.MinWindowSize),
	})
	require.NoError(t, err)

	e, err := rollscan.NewEdgeScanner(vocab)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect matching.
	word[0] = 'X'

	edge, found, err := e.FindEdge([]byte("some textEND more text"), 0, 0, 4, 1000)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 12, edge)
}

func TestNilVocabularyAccessors(t *testing.T) {
	t.Parallel()

	var vocab *rollscan.Vocabulary

	assert.Equal(t, 0, vocab.Len())
	assert.Equal(t, 0, vocab.MaxWordLen())
}

func TestTailHash(t *testing.T) {
	t.Parallel()

	// fold swaps the nibbles of each byte; 0x12 -> 0x21, 0xAB -> 0xBA.
	assert.Equal(t, 0x21, rollscan.TailHash([]byte{0x12}, 4))
	assert.Equal(t, 0x21+0xBA, rollscan.TailHash([]byte{0x12, 0xAB}, 4))

	// Only the last windowSize bytes contribute.
	assert.Equal(t,
		rollscan.TailHash([]byte("tEND"), 4),
		rollscan.TailHash([]byte("some textEND"), 4),
	)

	// The sum is order-insensitive, which is why scanners confirm hash
	// hits against the literal window tail.
	assert.Equal(t,
		rollscan.TailHash([]byte("tEND"), 4),
		rollscan.TailHash([]byte("tNDE"), 4),
	)

	assert.Equal(t, 0, rollscan.TailHash(nil, 4))
}
