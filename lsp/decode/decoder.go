package decode

import (
	"errors"
	"io"

	"github.com/celskeggs/lightspeed/lsp/cursor"
	"github.com/celskeggs/lightspeed/lsp/token"
)

type state uint8

const (
	scanning state = iota
	done
	failed
)

// Decoder walks one token stream from start to finish. It is single-use and not safe
// for concurrent use; independent buffers get independent Decoders.
type Decoder struct {
	cur      *cursor.Cursor
	state    state
	err      error
	reporter Reporter
	diags    []Diagnostic
}

type Option func(*Decoder)

// WithReporter forwards every Diagnostic to r as it is found, in addition to recording it.
func WithReporter(r Reporter) Option {
	return func(d *Decoder) {
		d.reporter = r
	}
}

func New(data []byte, opts ...Option) *Decoder {
	d := &Decoder{
		cur:   cursor.New(data),
		state: scanning,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Decoder) Offset() int {
	return d.cur.Offset()
}

func (d *Decoder) Diagnostics() []Diagnostic {
	return d.diags
}

// Anomalies folds every Diagnostic seen so far into one error, or nil if there were none.
func (d *Decoder) Anomalies() error {
	return combineDiagnostics(d.diags)
}

func (d *Decoder) diagnose(diag Diagnostic) {
	d.diags = append(d.diags, diag)
	if d.reporter != nil {
		d.reporter(diag)
	}
}

// absorb reports err if it is a Diagnostic and swallows it; anything else is returned.
func (d *Decoder) absorb(err error) error {
	var diag Diagnostic
	if errors.As(err, &diag) {
		d.diagnose(diag)
		return nil
	}
	return err
}

// Next returns the next token, io.EOF once the stream is exhausted, or a
// *cursor.TruncatedError if a rule ran out of input. Truncation is final: every later
// call returns the same error.
func (d *Decoder) Next() (token.Token, error) {
	switch d.state {
	case done:
		return token.Token{}, io.EOF
	case failed:
		return token.Token{}, d.err
	}
	offset := d.cur.Offset()
	op, err := d.cur.ReadByte()
	if err == cursor.ErrEndOfStream {
		d.state = done
		return token.Token{}, io.EOF
	} else if err != nil {
		panic("unexpected cursor error: " + err.Error())
	}
	rule, found := Lookup(op)
	if !found {
		d.diagnose(Diagnostic{
			Kind:   UnknownOpcode,
			Offset: offset,
			Opcode: op,
			Value:  op,
		})
		return token.Token{
			Code:    op,
			Kind:    token.Unknown,
			Payload: token.NoPayload(),
			Offset:  offset,
		}, nil
	}
	payload, err := d.apply(op, rule)
	if err != nil {
		d.state = failed
		d.err = err
		return token.Token{}, err
	}
	return token.Token{
		Code:    op,
		Kind:    rule.Kind,
		Payload: payload,
		Offset:  offset,
	}, nil
}

func (d *Decoder) apply(op byte, rule Rule) (token.Payload, error) {
	if err := d.cur.Skip(rule.Skip); err != nil {
		return token.Payload{}, err
	}
	switch rule.Shape {
	case ShapeFixed:
		if rule.Kind == token.Operator {
			return token.Text(rule.Text), nil
		}
		return token.NoPayload(), nil
	case ShapeRepeat:
		n, err := d.cur.Uint8()
		if err != nil {
			return token.Payload{}, err
		}
		return token.Count(n), nil
	case ShapeString:
		s, err := ReadLengthPrefixedString(d.cur)
		if err != nil {
			return token.Payload{}, err
		}
		return token.Text(s), nil
	case ShapeInteger:
		lit, err := ReadIntegerLiteral(d.cur, op)
		if err = d.absorb(err); err != nil {
			return token.Payload{}, err
		}
		return token.LiteralPayload(lit), nil
	case ShapeConstant:
		lit, err := ReadConstantValue(d.cur, op)
		if err = d.absorb(err); err != nil {
			return token.Payload{}, err
		}
		return token.LiteralPayload(lit), nil
	case ShapeStringType:
		n, err := ReadVariableWidthInteger(d.cur)
		if err != nil {
			return token.Payload{}, err
		}
		return token.Int(n), nil
	case ShapeArray:
		first, err := ReadArrayBound(d.cur, op)
		if err = d.absorb(err); err != nil {
			return token.Payload{}, err
		}
		last, err := ReadArrayBound(d.cur, op)
		if err = d.absorb(err); err != nil {
			return token.Payload{}, err
		}
		return token.Bounds(first, last), nil
	default:
		panic("invalid rule shape")
	}
}

// DecodeAll runs a full pass. On truncation it returns the tokens decoded before the
// failure along with the error.
func DecodeAll(data []byte) ([]token.Token, []Diagnostic, error) {
	d := New(data)
	var tokens []token.Token
	for {
		tok, err := d.Next()
		if err == io.EOF {
			return tokens, d.Diagnostics(), nil
		} else if err != nil {
			return tokens, d.Diagnostics(), err
		}
		tokens = append(tokens, tok)
	}
}

// Stream decodes data onto tokensOut, sending each Diagnostic on diagOut before the
// token it belongs to. Neither channel is closed. It returns nil at the end of the stream.
func Stream(data []byte, tokensOut chan<- token.Token, diagOut chan<- Diagnostic) error {
	d := New(data, WithReporter(func(diag Diagnostic) {
		diagOut <- diag
	}))
	for {
		tok, err := d.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		tokensOut <- tok
	}
}
