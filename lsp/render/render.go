package render

import (
	"fmt"
	"io"

	"github.com/celskeggs/lightspeed/lsp/token"
)

type Mode uint8

const (
	ModeRecords Mode = iota
	ModeText
)

type tokenWriter interface {
	WriteToken(t token.Token) error
	Flush() error
}

func newWriter(output io.Writer, mode Mode) tokenWriter {
	switch mode {
	case ModeRecords:
		return NewRecordWriter(output)
	case ModeText:
		return NewTextWriter(output)
	default:
		panic(fmt.Sprintf("invalid render mode: %d", mode))
	}
}

// Renderer drains input onto output, flushing after every token so that output keeps
// pace with a decoder running in another goroutine.
func Renderer(input <-chan token.Token, output io.Writer, mode Mode) error {
	w := newWriter(output, mode)
	for t := range input {
		if err := w.WriteToken(t); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
