package decode

import (
	"github.com/celskeggs/lightspeed/lsp/cursor"
	"github.com/celskeggs/lightspeed/lsp/token"
	"github.com/celskeggs/lightspeed/lsp/util"
)

const (
	negativeSentinel = 4
	wraparound       = 65536

	boundTagNamed   = 0
	boundTagNumeric = 3
)

// ReadLengthPrefixedString reads a count byte and that many raw bytes. The bytes are
// passed through as-is; the source character set is never transcoded.
func ReadLengthPrefixedString(c *cursor.Cursor) (string, error) {
	n, err := c.Uint8()
	if err != nil {
		return "", err
	}
	raw, err := c.ReadExact(int(n))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ReadVariableWidthInteger reads a width byte followed by that many big-endian magnitude
// bytes. A first magnitude byte of 4 marks the value negative while still counting as a
// digit; a negative result then wraps by 65536, so [1 4] is -65532.
func ReadVariableWidthInteger(c *cursor.Cursor) (int64, error) {
	n, err := c.Uint8()
	if err != nil {
		return 0, err
	}
	var x int64
	negative := false
	for i := 0; i < int(n); i++ {
		b, err := c.Uint8()
		if err != nil {
			return 0, err
		}
		if i == 0 && b == negativeSentinel {
			negative = true
		}
		x = x*256 + int64(b)
	}
	if negative {
		x -= wraparound
	}
	return x, nil
}

// readSignedMagnitude is the array-bound form: a sign byte, then a fixed two-byte
// magnitude. Its sign test looks at a different byte than ReadVariableWidthInteger's.
func readSignedMagnitude(c *cursor.Cursor) (int64, error) {
	sign, err := c.Uint8()
	if err != nil {
		return 0, err
	}
	raw, err := c.ReadExact(2)
	if err != nil {
		return 0, err
	}
	x := int64(util.DecodeUint16BE(raw))
	if sign == negativeSentinel {
		x -= wraparound
	}
	return x, nil
}

// ReadArrayBound decodes one tagged bound. An unrecognized tag yields a placeholder bound
// together with a Diagnostic error; only the tag byte is consumed in that case.
func ReadArrayBound(c *cursor.Cursor, opcode byte) (token.ArrayBound, error) {
	offset := c.Offset()
	tag, err := c.Uint8()
	if err != nil {
		return token.ArrayBound{}, err
	}
	switch tag {
	case boundTagNamed:
		if err := c.Skip(1); err != nil {
			return token.ArrayBound{}, err
		}
		name, err := ReadLengthPrefixedString(c)
		if err != nil {
			return token.ArrayBound{}, err
		}
		return token.NamedBound(name), nil
	case boundTagNumeric:
		x, err := readSignedMagnitude(c)
		if err != nil {
			return token.ArrayBound{}, err
		}
		return token.NumericBound(x), nil
	default:
		return token.UnknownBound(tag), Diagnostic{
			Kind:   UnknownArrayBoundTag,
			Offset: offset,
			Opcode: opcode,
			Value:  tag,
		}
	}
}

// ReadIntegerLiteral decodes the five numeric sub-encodings selected by a type-code byte.
// The hex-text form is decoded in full but also returned with an AnomalousIntegerEncoding
// Diagnostic, as is the placeholder for an unrecognized type-code.
func ReadIntegerLiteral(c *cursor.Cursor, opcode byte) (token.Literal, error) {
	offset := c.Offset()
	code, err := c.Uint8()
	if err != nil {
		return token.Literal{}, err
	}
	lit := token.Literal{RawCode: code}
	switch code {
	case 0x04:
		raw, err := c.ReadExact(4)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncU32
		lit.Int = int64(util.DecodeUint32BE(raw))
	case 0x03:
		raw, err := c.ReadExact(2)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncU16
		lit.Int = int64(util.DecodeUint16BE(raw))
	case 0x02:
		// kept as hex so the raw bytes survive into the output
		s, err := ReadLengthPrefixedString(c)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncHexText
		lit.Text = util.HexEscape([]byte(s))
		return lit, Diagnostic{
			Kind:   AnomalousIntegerEncoding,
			Offset: offset,
			Opcode: opcode,
			Value:  code,
		}
	case 0x05:
		s, err := ReadLengthPrefixedString(c)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncDecimalText
		lit.Text = s
	case 0x0A:
		if err := c.Skip(2); err != nil {
			return token.Literal{}, err
		}
		s, err := ReadLengthPrefixedString(c)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncPaddedText
		lit.Text = s
	default:
		lit.Encoding = token.EncUnknown
		return lit, Diagnostic{
			Kind:   UnknownIntegerEncoding,
			Offset: offset,
			Opcode: opcode,
			Value:  code,
		}
	}
	return lit, nil
}

// ReadConstantValue decodes the value half of a constant definition.
func ReadConstantValue(c *cursor.Cursor, opcode byte) (token.Literal, error) {
	offset := c.Offset()
	code, err := c.Uint8()
	if err != nil {
		return token.Literal{}, err
	}
	lit := token.Literal{RawCode: code}
	switch code {
	case 3:
		x, err := ReadVariableWidthInteger(c)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncVarInt
		lit.Int = x
	case 5:
		if err := c.Skip(4); err != nil {
			return token.Literal{}, err
		}
		s, err := ReadLengthPrefixedString(c)
		if err != nil {
			return token.Literal{}, err
		}
		lit.Encoding = token.EncStringConst
		lit.Text = s
	default:
		lit.Encoding = token.EncUnknown
		return lit, Diagnostic{
			Kind:   UnknownConstantEncoding,
			Offset: offset,
			Opcode: opcode,
			Value:  code,
		}
	}
	return lit, nil
}
