package token

import (
	"fmt"
	"log"
)

type Kind uint8

const (
	Unknown Kind = iota
	Unit
	Program
	Function
	Procedure
	Keyword
	Operator
	Punctuation
	Newline
	Space
	Comment
	ConditionalDirective
	Identifier
	ConstantName
	IntegerLiteral
	ConstantValue
	StringType
	PointerType
	ArrayType
	ForLoop
	Reserved
)

func Kinds() []Kind {
	var kinds []Kind
	for k := Unknown; k <= Reserved; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Unit:
		return "Unit"
	case Program:
		return "Program"
	case Function:
		return "Function"
	case Procedure:
		return "Procedure"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	case Newline:
		return "Newline"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case ConditionalDirective:
		return "ConditionalDirective"
	case Identifier:
		return "Identifier"
	case ConstantName:
		return "ConstantName"
	case IntegerLiteral:
		return "IntegerLiteral"
	case ConstantValue:
		return "ConstantValue"
	case StringType:
		return "StringType"
	case PointerType:
		return "PointerType"
	case ArrayType:
		return "ArrayType"
	case ForLoop:
		return "ForLoop"
	case Reserved:
		return "Reserved"
	default:
		panic("invalid token kind")
	}
}

// PayloadType is the only payload variant a token of this kind may carry.
func (k Kind) PayloadType() PayloadType {
	switch k {
	case Unknown, Keyword, Reserved:
		return PayloadNone
	case Unit, Program, Function, Procedure, Operator, Comment, ConditionalDirective,
		Identifier, ConstantName, PointerType, ForLoop:
		return PayloadText
	case Punctuation, Newline, Space:
		return PayloadCount
	case StringType:
		return PayloadInt
	case IntegerLiteral, ConstantValue:
		return PayloadLiteral
	case ArrayType:
		return PayloadBounds
	default:
		log.Panicf("invalid token kind: %d", k)
		return PayloadNone
	}
}

type PayloadType uint8

const (
	PayloadNone PayloadType = iota
	PayloadText
	PayloadInt
	PayloadCount
	PayloadBounds
	PayloadLiteral
)

func (pt PayloadType) String() string {
	switch pt {
	case PayloadNone:
		return "none"
	case PayloadText:
		return "text"
	case PayloadInt:
		return "int"
	case PayloadCount:
		return "count"
	case PayloadBounds:
		return "bounds"
	case PayloadLiteral:
		return "literal"
	default:
		panic("invalid payload type")
	}
}

// Payload is a tagged union; only the field selected by Type is meaningful.
type Payload struct {
	Type   PayloadType
	text   string
	value  int64
	bounds [2]ArrayBound
	lit    Literal
}

func NoPayload() Payload {
	return Payload{Type: PayloadNone}
}

func Text(s string) Payload {
	return Payload{Type: PayloadText, text: s}
}

func Int(v int64) Payload {
	return Payload{Type: PayloadInt, value: v}
}

func Count(n uint8) Payload {
	return Payload{Type: PayloadCount, value: int64(n)}
}

func Bounds(first, last ArrayBound) Payload {
	return Payload{Type: PayloadBounds, bounds: [2]ArrayBound{first, last}}
}

func LiteralPayload(l Literal) Payload {
	return Payload{Type: PayloadLiteral, lit: l}
}

func (p Payload) must(pt PayloadType) {
	if p.Type != pt {
		log.Panicf("payload is %v, not %v", p.Type, pt)
	}
}

func (p Payload) AsText() string {
	p.must(PayloadText)
	return p.text
}

func (p Payload) AsInt() int64 {
	p.must(PayloadInt)
	return p.value
}

func (p Payload) AsCount() int {
	p.must(PayloadCount)
	return int(p.value)
}

func (p Payload) AsBounds() (first, last ArrayBound) {
	p.must(PayloadBounds)
	return p.bounds[0], p.bounds[1]
}

func (p Payload) AsLiteral() Literal {
	p.must(PayloadLiteral)
	return p.lit
}

func (p Payload) String() string {
	switch p.Type {
	case PayloadNone:
		return "-"
	case PayloadText:
		return fmt.Sprintf("%q", p.text)
	case PayloadInt, PayloadCount:
		return fmt.Sprintf("%d", p.value)
	case PayloadBounds:
		return fmt.Sprintf("%v..%v", p.bounds[0], p.bounds[1])
	case PayloadLiteral:
		return p.lit.String()
	default:
		panic("invalid payload type")
	}
}

type BoundTag uint8

const (
	BoundUnknown BoundTag = iota
	BoundNamed
	BoundNumeric
)

// ArrayBound is one end of an array index range.
type ArrayBound struct {
	Tag   BoundTag
	Name  string
	Value int64
	// RawTag is the tag byte as it appeared in the stream; only interesting for BoundUnknown.
	RawTag byte
}

func NamedBound(name string) ArrayBound {
	return ArrayBound{Tag: BoundNamed, Name: name, RawTag: 0}
}

func NumericBound(v int64) ArrayBound {
	return ArrayBound{Tag: BoundNumeric, Value: v, RawTag: 3}
}

func UnknownBound(raw byte) ArrayBound {
	return ArrayBound{Tag: BoundUnknown, RawTag: raw}
}

func (b ArrayBound) String() string {
	switch b.Tag {
	case BoundNamed:
		return b.Name
	case BoundNumeric:
		return fmt.Sprintf("%d", b.Value)
	default:
		return "?"
	}
}

type Encoding uint8

const (
	EncUnknown Encoding = iota
	EncU32
	EncU16
	EncHexText
	EncDecimalText
	EncPaddedText
	EncVarInt
	EncStringConst
)

func (e Encoding) IsText() bool {
	return e == EncHexText || e == EncDecimalText || e == EncPaddedText || e == EncStringConst
}

func (e Encoding) String() string {
	switch e {
	case EncUnknown:
		return "unknown"
	case EncU32:
		return "u32"
	case EncU16:
		return "u16"
	case EncHexText:
		return "hex"
	case EncDecimalText:
		return "decimal"
	case EncPaddedText:
		return "padded"
	case EncVarInt:
		return "varint"
	case EncStringConst:
		return "string"
	default:
		panic("invalid literal encoding")
	}
}

// Literal is the value of a numeric literal or constant definition, tagged with the
// sub-encoding it was read from. EncUnknown marks a placeholder for an unrecognized type-code.
type Literal struct {
	Encoding Encoding
	Int      int64
	Text     string
	RawCode  byte
}

func (l Literal) String() string {
	switch {
	case l.Encoding == EncUnknown:
		return fmt.Sprintf("<unknown code %02X>", l.RawCode)
	case l.Encoding.IsText():
		return fmt.Sprintf("%q", l.Text)
	default:
		return fmt.Sprintf("%d", l.Int)
	}
}

type Token struct {
	Code    byte
	Kind    Kind
	Payload Payload
	// Offset is the stream position of the opcode byte.
	Offset int
}

func (t Token) String() string {
	return fmt.Sprintf("%02X %v %v", t.Code, t.Kind, t.Payload)
}

func Validate(t Token) error {
	if t.Kind.PayloadType() != t.Payload.Type {
		return fmt.Errorf("token 0x%02X of kind %v carries %v payload, expected %v",
			t.Code, t.Kind, t.Payload.Type, t.Kind.PayloadType())
	}
	return nil
}
