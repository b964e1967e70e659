package decode

import (
	"testing"

	"github.com/celskeggs/lightspeed/lsp/util"
)

// lp marks a string to be written length-prefixed by stream.
type lp string

// stream concatenates bytes, byte slices, and length-prefixed strings into a test input.
func stream(t *testing.T, parts ...interface{}) []byte {
	var out []byte
	for _, part := range parts {
		switch p := part.(type) {
		case int:
			out = append(out, byte(p))
		case byte:
			out = append(out, p)
		case []byte:
			out = append(out, p...)
		case lp:
			enc, err := util.EncodeLengthPrefixed(string(p))
			if err != nil {
				t.Fatal(err)
			}
			out = append(out, enc...)
		default:
			t.Fatalf("unsupported stream part %T", part)
		}
	}
	return out
}

func zeros(n int) []byte {
	return make([]byte, n)
}
