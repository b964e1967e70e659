package render

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/token"
)

// opaque maps each byte to the code point of the same value, so that text from the
// source's 8-bit character set survives JSON encoding without being reinterpreted.
func opaque(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteRune(rune(s[i]))
	}
	return sb.String()
}

func boundValue(b token.ArrayBound) interface{} {
	switch b.Tag {
	case token.BoundNamed:
		return opaque(b.Name)
	case token.BoundNumeric:
		return b.Value
	default:
		return "?"
	}
}

func payloadValue(p token.Payload) interface{} {
	switch p.Type {
	case token.PayloadNone:
		return nil
	case token.PayloadText:
		return opaque(p.AsText())
	case token.PayloadInt:
		return p.AsInt()
	case token.PayloadCount:
		return p.AsCount()
	case token.PayloadBounds:
		first, last := p.AsBounds()
		return []interface{}{boundValue(first), boundValue(last)}
	case token.PayloadLiteral:
		lit := p.AsLiteral()
		switch {
		case lit.Encoding == token.EncUnknown:
			return nil
		case lit.Encoding.IsText():
			return opaque(lit.Text)
		default:
			return lit.Int
		}
	default:
		panic("invalid payload type")
	}
}

// Record is the structured form of a token: opcode, record name, payload value.
func Record(t token.Token) []interface{} {
	return []interface{}{int(t.Code), decode.Name(t.Code), payloadValue(t.Payload)}
}

type RecordWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func NewRecordWriter(w io.Writer) *RecordWriter {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &RecordWriter{bw: bw, enc: enc}
}

// WriteToken writes one record as a single JSON line.
func (rw *RecordWriter) WriteToken(t token.Token) error {
	return rw.enc.Encode(Record(t))
}

func (rw *RecordWriter) Flush() error {
	return rw.bw.Flush()
}

func WriteRecords(w io.Writer, tokens []token.Token) error {
	rw := NewRecordWriter(w)
	for _, t := range tokens {
		if err := rw.WriteToken(t); err != nil {
			return err
		}
	}
	return rw.Flush()
}
