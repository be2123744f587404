package batcher

import (
	"errors"
	"slices"
)

var ErrInvalidSize = errors.New("batch size must be greater than 0")

// Batch splits input into consecutive chunks of at most size elements.
// Chunks share the backing array of input.
func Batch[T any](input []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return slices.Collect(slices.Chunk(input, size)), nil
}
