package rollscan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMinBlock is returned when minBlock is zero or negative.
	ErrInvalidMinBlock = errors.New("minBlock must be greater than 0")

	// ErrBlockBounds is returned when minBlock is not less than maxBlock.
	ErrBlockBounds = errors.New("minBlock must be less than maxBlock")

	// ErrInvalidSofar is returned when the carried accumulated length is negative.
	ErrInvalidSofar = errors.New("sofar must not be negative")

	// ErrInvalidOffset is returned when a resume offset lies outside the unit.
	ErrInvalidOffset = errors.New("offset out of range")

	// ErrInvalidPending is returned when the carried pending length is negative.
	ErrInvalidPending = errors.New("pending length must not be negative")

	// ErrInvalidBufferSize is returned when bufferSize is not positive.
	ErrInvalidBufferSize = errors.New("bufferSize must be greater than 0")

	// ErrInvalidWindowCapacity is returned when a fixed window capacity is
	// smaller than MinWindowSize.
	ErrInvalidWindowCapacity = errors.New("window capacity must be at least MinWindowSize")

	// ErrEmptyWord is returned when a vocabulary entry has an empty word.
	ErrEmptyWord = errors.New("vocabulary word must not be empty")

	// ErrWordTooLong is returned when a vocabulary word does not fit the
	// scanner's fixed window capacity.
	ErrWordTooLong = errors.New("vocabulary word longer than window capacity")
)

const (
	// DefaultMinBlock is the default minimum chunk size (512 bytes).
	DefaultMinBlock = 512

	// DefaultMaxBlock is the default maximum chunk size (16 KiB).
	// The boundary test fires about once every 4093 bytes on varied
	// content, so the cap is rarely the cut that wins.
	DefaultMaxBlock = 16 * 1024

	// DefaultBufferSize is the default internal buffer size for the
	// streaming API (64 KiB), 4x the default max chunk size.
	DefaultBufferSize = 64 * 1024

	// MinWindowSize is the smallest circular window an EdgeScanner uses.
	// Vocabularies with longer words grow the window to fit.
	MinWindowSize = 4
)

// Option configures a Chunker or an EdgeScanner.
type Option func(*config) error

// config holds the tunable parameters shared by the constructors.
type config struct {
	minBlock   int
	maxBlock   int
	bufferSize int
	windowCap  int // 0 means size the window to the vocabulary
}

func defaultConfig() config {
	return config{
		minBlock:   DefaultMinBlock,
		maxBlock:   DefaultMaxBlock,
		bufferSize: DefaultBufferSize,
		windowCap:  0,
	}
}

// validate checks the configuration and adjusts the buffer size upward so a
// maximum-size chunk always fits in one refill.
func (c *config) validate() error {
	if c.minBlock <= 0 {
		return ErrInvalidMinBlock
	}

	if c.minBlock >= c.maxBlock {
		return fmt.Errorf("%w: minBlock (%d), maxBlock (%d)", ErrBlockBounds, c.minBlock, c.maxBlock)
	}

	if c.bufferSize < c.maxBlock {
		c.bufferSize = c.maxBlock
	}

	return nil
}

// WithMinBlock sets the minimum chunk size in bytes.
func WithMinBlock(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidMinBlock
		}

		c.minBlock = n

		return nil
	}
}

// WithMaxBlock sets the maximum chunk size in bytes.
func WithMaxBlock(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("%w: maxBlock (%d)", ErrBlockBounds, n)
		}

		c.maxBlock = n

		return nil
	}
}

// WithBufferSize sets the internal buffer size for the streaming API.
// Values below the maximum chunk size are raised to it.
func WithBufferSize(n int) Option {
	return func(c *config) error {
		if n <= 0 {
			return ErrInvalidBufferSize
		}

		c.bufferSize = n

		return nil
	}
}

// WithWindowCapacity fixes an EdgeScanner's circular window capacity instead
// of letting it track the installed vocabulary. Installing a vocabulary whose
// longest word exceeds the fixed capacity then fails with ErrWordTooLong.
func WithWindowCapacity(n int) Option {
	return func(c *config) error {
		if n < MinWindowSize {
			return fmt.Errorf("%w: got %d", ErrInvalidWindowCapacity, n)
		}

		c.windowCap = n

		return nil
	}
}
