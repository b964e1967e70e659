package util

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

func DecodeUint16BE(in []byte) uint16 {
	if len(in) != 2 {
		panic("invalid length for 16-bit decoding")
	}
	return binary.BigEndian.Uint16(in)
}

func DecodeUint32BE(in []byte) uint32 {
	if len(in) != 4 {
		panic("invalid length for 32-bit decoding")
	}
	return binary.BigEndian.Uint32(in)
}

func EncodeUint16BE(u uint16) []byte {
	var out [2]byte
	binary.BigEndian.PutUint16(out[:], u)
	return out[:]
}

func EncodeUint32BE(u uint32) []byte {
	var out [4]byte
	binary.BigEndian.PutUint32(out[:], u)
	return out[:]
}

// EncodeLengthPrefixed builds the one-byte-count string form used throughout the token stream.
func EncodeLengthPrefixed(s string) ([]byte, error) {
	if len(s) > 0xFF {
		return nil, fmt.Errorf("string is too long for length-prefixed encoding: %d bytes", len(s))
	}
	return append([]byte{byte(len(s))}, s...), nil
}

// HexEscape renders raw bytes as a bare lowercase hex string, two digits per byte.
func HexEscape(raw []byte) string {
	return hex.EncodeToString(raw)
}
