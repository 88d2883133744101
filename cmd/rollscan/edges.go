package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rollscan/rollscan"
)

func init() {
	rootCmd.AddCommand(newEdgesCmd())
}

func newEdgesCmd() *cobra.Command {
	var (
		minBlock int
		maxBlock int
		words    []string
	)

	cmd := &cobra.Command{
		Use:   "edges <file>",
		Short: "Find edges with the incremental scanner",
		Long: `The edges command runs the incremental edge scanner over a file and prints
each detected edge. Vocabulary entries make the scanner prefer cutting at
trigger words over the purely numeric test; each --word takes the word itself
and an optional cut offset relative to the word's end.

Example:
  rollscan edges document.txt
  rollscan edges --word $'\n\n\n\n' --word 'END:0' document.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdges(args[0], minBlock, maxBlock, words)
		},
	}

	cmd.Flags().IntVar(&minBlock, "min-block", rollscan.DefaultMinBlock, "Minimum chunk size in bytes")
	cmd.Flags().IntVar(&maxBlock, "max-block", rollscan.DefaultMaxBlock, "Maximum chunk size in bytes")
	cmd.Flags().StringArrayVar(&words, "word", nil, "Vocabulary entry as WORD[:cutOffset], repeatable")

	return cmd
}

// parseVocabulary builds a vocabulary from WORD[:cutOffset] flag values. The
// tail hash is derived from the word alone, which is exact for words at least
// as long as the window; shorter words are hashed as if preceded by NUL
// bytes and will only trigger in that context.
func parseVocabulary(words []string) (*rollscan.Vocabulary, error) {
	if len(words) == 0 {
		return nil, nil
	}

	maxLen := rollscan.MinWindowSize

	for _, spec := range words {
		word, _, _ := strings.Cut(spec, ":")
		if len(word) > maxLen {
			maxLen = len(word)
		}
	}

	entries := make([]rollscan.Entry, 0, len(words))

	for _, spec := range words {
		word, offsetPart, hasOffset := strings.Cut(spec, ":")

		cutOffset := 0

		if hasOffset {
			n, err := strconv.Atoi(offsetPart)
			if err != nil {
				return nil, fmt.Errorf("bad cut offset in --word %q: %w", spec, err)
			}

			cutOffset = n
		}

		if len(word) < maxLen {
			log.Warnw("word shorter than the scan window; it only triggers after NUL bytes",
				"word", word, "window", maxLen)
		}

		entries = append(entries, rollscan.Entry{
			Word:      []byte(word),
			CutOffset: cutOffset,
			TailHash:  rollscan.TailHash([]byte(word), maxLen),
		})
	}

	return rollscan.NewVocabulary(entries...)
}

func runEdges(path string, minBlock, maxBlock int, words []string) error {
	vocab, err := parseVocabulary(words)
	if err != nil {
		return err
	}

	scanner, err := rollscan.NewEdgeScanner(vocab)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	log.Debugw("scanning for edges", "path", path, "bytes", len(data),
		"vocabulary", vocab.Len(), "window", scanner.WindowSize())

	var (
		start int
		edges int
	)

	for start < len(data) {
		edge, found, err := scanner.FindEdge(data[start:], 0, 0, minBlock, maxBlock)
		if err != nil {
			return err
		}

		if !found {
			fmt.Printf("%s: tail of %d bytes with no edge\n", path, len(data)-start)

			break
		}

		if edge <= 0 {
			return fmt.Errorf("vocabulary cut offset moved the edge to %d, before the chunk start", start+edge)
		}

		edges++
		fmt.Printf("%s: edge at %d (chunk of %d bytes)\n", path, start+edge, edge)

		start += edge
	}

	fmt.Printf("%s: %d edges over %s\n", path, edges, humanize.IBytes(uint64(len(data))))

	return nil
}
