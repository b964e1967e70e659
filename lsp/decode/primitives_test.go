package decode

import (
	"errors"
	"testing"

	"github.com/celskeggs/lightspeed/lsp/cursor"
	"github.com/celskeggs/lightspeed/lsp/token"
	"github.com/celskeggs/lightspeed/lsp/util"
)

func TestLengthPrefixedString(t *testing.T) {
	c := cursor.New(stream(t, lp("Foo"), lp(""), 0x02, 0xA5, 0x7F))
	for _, want := range []string{"Foo", "", "\xa5\x7f"} {
		s, err := ReadLengthPrefixedString(c)
		if err != nil {
			t.Fatal(err)
		}
		if s != want {
			t.Errorf("got %q, want %q", s, want)
		}
	}
	if !c.AtEnd() {
		t.Error("expected all input to be consumed")
	}
}

func TestLengthPrefixedStringTruncated(t *testing.T) {
	c := cursor.New([]byte{5, 'a', 'b'})
	_, err := ReadLengthPrefixedString(c)
	var te *cursor.TruncatedError
	if !errors.As(err, &te) {
		t.Fatalf("expected truncation, got %v", err)
	}
	if te.Offset != 1 || te.Wanted != 5 {
		t.Errorf("unexpected truncation details: %+v", te)
	}
}

func TestVariableWidthInteger(t *testing.T) {
	cases := []struct {
		input []byte
		want  int64
	}{
		{[]byte{1, 4}, -65532},
		{[]byte{2, 0x00, 0x05}, 5},
		{[]byte{0}, 0},
		{[]byte{1, 0xFF}, 255},
		{[]byte{2, 4, 0x10}, 0x0410 - 65536},
		{[]byte{1, 5}, 5},
		// the sentinel only counts in the first position
		{[]byte{2, 0x00, 4}, 4},
		{[]byte{3, 0x01, 0x00, 0x00}, 65536},
	}
	for _, c := range cases {
		cur := cursor.New(c.input)
		got, err := ReadVariableWidthInteger(cur)
		if err != nil {
			t.Errorf("%v: unexpected error %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("%v: got %d, want %d", c.input, got, c.want)
		}
		if !cur.AtEnd() {
			t.Errorf("%v: width was not honored", c.input)
		}
	}
}

func TestVariableWidthIntegerTruncated(t *testing.T) {
	var te *cursor.TruncatedError
	if _, err := ReadVariableWidthInteger(cursor.New([]byte{3, 1})); !errors.As(err, &te) {
		t.Errorf("expected truncation, got %v", err)
	}
	if _, err := ReadVariableWidthInteger(cursor.New(nil)); !errors.As(err, &te) {
		t.Errorf("expected truncation on missing width, got %v", err)
	}
}

func TestArrayBoundNamed(t *testing.T) {
	c := cursor.New(stream(t, 0, 0x99, lp("Foo")))
	b, err := ReadArrayBound(c, token.OpArray)
	if err != nil {
		t.Fatal(err)
	}
	if b.Tag != token.BoundNamed || b.Name != "Foo" {
		t.Errorf("unexpected bound: %+v", b)
	}
}

func TestArrayBoundNumeric(t *testing.T) {
	cases := []struct {
		sign byte
		want int64
	}{
		{4, -65526},
		{0, 10},
		{3, 10},
		{5, 10},
	}
	for _, c := range cases {
		cur := cursor.New(stream(t, 3, c.sign, util.EncodeUint16BE(0x000A)))
		b, err := ReadArrayBound(cur, token.OpArray)
		if err != nil {
			t.Fatal(err)
		}
		if b.Tag != token.BoundNumeric || b.Value != c.want {
			t.Errorf("sign %d: got %+v, want %d", c.sign, b, c.want)
		}
	}
}

func TestArrayBoundUnknownTag(t *testing.T) {
	c := cursor.New([]byte{0x07, 0x01, 0x02})
	b, err := ReadArrayBound(c, token.OpArray)
	var diag Diagnostic
	if !errors.As(err, &diag) {
		t.Fatalf("expected a diagnostic, got %v", err)
	}
	if diag.Kind != UnknownArrayBoundTag || diag.Value != 0x07 || diag.Offset != 0 || diag.Opcode != token.OpArray {
		t.Errorf("unexpected diagnostic: %+v", diag)
	}
	if b.Tag != token.BoundUnknown || b.RawTag != 0x07 {
		t.Errorf("expected placeholder bound, got %+v", b)
	}
	if c.Offset() != 1 {
		t.Errorf("only the tag byte should be consumed, offset is %d", c.Offset())
	}
}

func TestIntegerLiteralEncodings(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		enc   token.Encoding
		i     int64
		text  string
	}{
		{"u32", stream(t, 0x04, util.EncodeUint32BE(100000)), token.EncU32, 100000, ""},
		{"u32max", stream(t, 0x04, util.EncodeUint32BE(0xFFFFFFFF)), token.EncU32, 0xFFFFFFFF, ""},
		{"u16", stream(t, 0x03, util.EncodeUint16BE(513)), token.EncU16, 513, ""},
		{"decimal", stream(t, 0x05, lp("1.5E3")), token.EncDecimalText, 0, "1.5E3"},
		{"padded", stream(t, 0x0A, 0, 0, lp("$FF")), token.EncPaddedText, 0, "$FF"},
	}
	for _, c := range cases {
		cur := cursor.New(c.input)
		lit, err := ReadIntegerLiteral(cur, token.OpInteger)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if lit.Encoding != c.enc || lit.Int != c.i || lit.Text != c.text {
			t.Errorf("%s: got %+v", c.name, lit)
		}
		if !cur.AtEnd() {
			t.Errorf("%s: input not fully consumed", c.name)
		}
	}
}

func TestIntegerLiteralHexTextIsReported(t *testing.T) {
	cur := cursor.New(stream(t, 0x02, lp("1\x00")))
	lit, err := ReadIntegerLiteral(cur, token.OpInteger)
	var diag Diagnostic
	if !errors.As(err, &diag) || diag.Kind != AnomalousIntegerEncoding || diag.Value != 0x02 || diag.Offset != 0 {
		t.Fatalf("expected anomalous integer encoding diagnostic, got %v", err)
	}
	if lit.Encoding != token.EncHexText || lit.Text != "3100" {
		t.Errorf("hex text not preserved: %+v", lit)
	}
	if !cur.AtEnd() {
		t.Error("input not fully consumed")
	}
}

func TestIntegerLiteralUnknownEncoding(t *testing.T) {
	cur := cursor.New([]byte{0x09, 0x01})
	lit, err := ReadIntegerLiteral(cur, token.OpInteger)
	var diag Diagnostic
	if !errors.As(err, &diag) || diag.Kind != UnknownIntegerEncoding || diag.Value != 0x09 {
		t.Fatalf("expected unknown integer encoding diagnostic, got %v", err)
	}
	if lit.Encoding != token.EncUnknown || lit.RawCode != 0x09 {
		t.Errorf("expected placeholder literal, got %+v", lit)
	}
	if cur.Offset() != 1 {
		t.Errorf("only the type-code should be consumed, offset is %d", cur.Offset())
	}
}

func TestConstantValue(t *testing.T) {
	cur := cursor.New(stream(t, 3, 2, 0x00, 0x2A, 5, zeros(4), lp("hello"), 0x06))
	lit, err := ReadConstantValue(cur, token.OpIs)
	if err != nil {
		t.Fatal(err)
	}
	if lit.Encoding != token.EncVarInt || lit.Int != 42 {
		t.Errorf("unexpected integer constant: %+v", lit)
	}
	lit, err = ReadConstantValue(cur, token.OpIs)
	if err != nil {
		t.Fatal(err)
	}
	if lit.Encoding != token.EncStringConst || lit.Text != "hello" {
		t.Errorf("unexpected string constant: %+v", lit)
	}
	offset := cur.Offset()
	_, err = ReadConstantValue(cur, token.OpIs)
	var diag Diagnostic
	if !errors.As(err, &diag) || diag.Kind != UnknownConstantEncoding || diag.Offset != offset {
		t.Errorf("expected unknown constant encoding diagnostic, got %v", err)
	}
}
