package cursor

import (
	"errors"
	"fmt"
)

// ErrEndOfStream is how a Cursor reports a clean end of input between tokens.
var ErrEndOfStream = errors.New("end of stream")

type TruncatedError struct {
	Offset    int
	Wanted    int
	Remaining int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated stream at offset 0x%x: wanted %d bytes but only %d remain",
		e.Offset, e.Wanted, e.Remaining)
}

// Cursor is a forward-only reader over an immutable byte buffer.
type Cursor struct {
	data   []byte
	offset int
}

func New(data []byte) *Cursor {
	return &Cursor{
		data:   data,
		offset: 0,
	}
}

func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) Remaining() int {
	return len(c.data) - c.offset
}

func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.data)
}

// ReadExact returns a view of the next n bytes; the caller must not modify it.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if n < 0 {
		panic("negative read length")
	}
	if n > c.Remaining() {
		return nil, &TruncatedError{
			Offset:    c.offset,
			Wanted:    n,
			Remaining: c.Remaining(),
		}
	}
	out := c.data[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	return out, nil
}

func (c *Cursor) ReadByte() (byte, error) {
	if c.AtEnd() {
		return 0, ErrEndOfStream
	}
	b := c.data[c.offset]
	c.offset += 1
	return b, nil
}

// Uint8 reads one byte that a decode rule requires, so running out is truncation.
func (c *Cursor) Uint8() (byte, error) {
	b, err := c.ReadExact(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) Skip(n int) error {
	_, err := c.ReadExact(n)
	return err
}
