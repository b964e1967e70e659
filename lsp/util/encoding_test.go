package util

import (
	"math/rand"
	"strings"
	"testing"
)

func TestBigEndianConversion(t *testing.T) {
	r := rand.New(rand.NewSource(345))
	for i := 0; i < 1000; i++ {
		u16 := uint16(r.Intn(0x10000))
		if back := DecodeUint16BE(EncodeUint16BE(u16)); back != u16 {
			t.Errorf("mismatched 16-bit value: %d -> %d", u16, back)
		}
		u32 := r.Uint32()
		if back := DecodeUint32BE(EncodeUint32BE(u32)); back != u32 {
			t.Errorf("mismatched 32-bit value: %d -> %d", u32, back)
		}
	}
	if DecodeUint16BE([]byte{0x00, 0x0A}) != 10 {
		t.Error("expected big-endian interpretation")
	}
}

func TestLengthPrefixed(t *testing.T) {
	enc, err := EncodeLengthPrefixed("Foo")
	if err != nil {
		t.Fatal(err)
	}
	if string(enc) != "\x03Foo" {
		t.Errorf("unexpected encoding: %q", enc)
	}
	if _, err := EncodeLengthPrefixed(strings.Repeat("x", 256)); err == nil {
		t.Error("expected failure for oversized string")
	}
}

func TestHexEscape(t *testing.T) {
	if s := HexEscape([]byte("1\x00\xff")); s != "3100ff" {
		t.Errorf("unexpected escape: %q", s)
	}
}
