package buffer

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when an offset does not address a rune.
var ErrOutOfRange = errors.New("buffer: offset out of range")

// Buffer is a mutable rune sequence with a derived line view.
type Buffer struct {
	content []rune
	version uint64
}

func New(text string) *Buffer {
	return &Buffer{content: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.content) }

// Len returns the rune count, newlines included.
func (b *Buffer) Len() int { return len(b.content) }

// Version increments on every mutation.
func (b *Buffer) Version() uint64 { return b.version }

// Insert puts r before off. Offsets >= off shift up by one.
//
// off must satisfy 0 <= off <= Len(); anything else is a caller bug and panics.
func (b *Buffer) Insert(off int, r rune) {
	if off < 0 || off > len(b.content) {
		panic(fmt.Sprintf("buffer: insert at offset %d, length %d", off, len(b.content)))
	}
	b.content = append(b.content, 0)
	copy(b.content[off+1:], b.content[off:])
	b.content[off] = r
	b.version++
}

// Delete removes and returns the rune at off.
func (b *Buffer) Delete(off int) (rune, error) {
	if off < 0 || off >= len(b.content) {
		return 0, fmt.Errorf("%w: delete at %d, length %d", ErrOutOfRange, off, len(b.content))
	}
	r := b.content[off]
	b.content = append(b.content[:off], b.content[off+1:]...)
	b.version++
	return r, nil
}

// Lines splits the content on '\n'.
//
// The result is recomputed on every call. A final newline is followed by a
// real empty line, and an empty buffer has one empty line. Returned slices
// alias the buffer: they are valid until the next mutation and must not be
// written to.
func (b *Buffer) Lines() [][]rune {
	lines := make([][]rune, 0, 8)
	start := 0
	for i, r := range b.content {
		if r == '\n' {
			lines = append(lines, b.content[start:i:i])
			start = i + 1
		}
	}
	end := len(b.content)
	return append(lines, b.content[start:end:end])
}
