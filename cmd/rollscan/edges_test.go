package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rollscan/rollscan"
)

func init() {
	log = zap.NewNop().Sugar()
}

func TestParseVocabulary(t *testing.T) {
	vocab, err := parseVocabulary([]string{"ENDING", "stop:-2"})
	require.NoError(t, err)

	require.Equal(t, 2, vocab.Len())
	assert.Equal(t, 6, vocab.MaxWordLen())
}

func TestParseVocabularyEmpty(t *testing.T) {
	vocab, err := parseVocabulary(nil)
	require.NoError(t, err)
	assert.Nil(t, vocab)
}

func TestParseVocabularyBadOffset(t *testing.T) {
	_, err := parseVocabulary([]string{"END:abc"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "cut offset")
}

func TestParseVocabularyTailHash(t *testing.T) {
	vocab, err := parseVocabulary([]string{"\n\n\n\n"})
	require.NoError(t, err)

	// A word as long as the window carries a context-free tail hash, so
	// the scanner must cut right after it.
	scanner, err := rollscan.NewEdgeScanner(vocab)
	require.NoError(t, err)

	unit := []byte("some paragraph\n\n\n\nanother paragraph")

	edge, found, err := scanner.FindEdge(unit, 0, 0, 4, 1000)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 18, edge)
}
