package render

import (
	"bufio"
	"io"

	"github.com/celskeggs/lightspeed/lsp/token"
)

// fusing lists adjacent character pairs that would read back as a single Pascal symbol.
var fusing = map[[2]byte]bool{
	{':', '='}: true,
	{'<', '>'}: true,
	{'<', '='}: true,
	{'>', '='}: true,
	{'.', '.'}: true,
	{'(', '*'}: true,
	{'*', ')'}: true,
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' || b == '\'' || b >= 0x80 ||
		(b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func needsSeparator(last, next byte) bool {
	return (isWordByte(last) && isWordByte(next)) || fusing[[2]byte{last, next}]
}

// TextWriter reassembles Pascal source from tokens, adding a single space wherever two
// fragments would otherwise run together into a different token.
type TextWriter struct {
	bw   *bufio.Writer
	last byte
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{bw: bufio.NewWriter(w)}
}

func (tw *TextWriter) writeFragment(s string) error {
	if len(s) == 0 {
		return nil
	}
	if tw.last != 0 && needsSeparator(tw.last, s[0]) {
		if err := tw.bw.WriteByte(' '); err != nil {
			return err
		}
	}
	if _, err := tw.bw.WriteString(s); err != nil {
		return err
	}
	tw.last = s[len(s)-1]
	return nil
}

// Header is the comment line that opens reconstructed source.
func Header(source string) string {
	return "{ Pascal source code from " + source + " }\n"
}

func (tw *TextWriter) WriteHeader(source string) error {
	return tw.writeFragment(Header(source))
}

func (tw *TextWriter) WriteToken(t token.Token) error {
	return tw.writeFragment(Surface(t))
}

func (tw *TextWriter) Flush() error {
	return tw.bw.Flush()
}

func WriteText(w io.Writer, tokens []token.Token) error {
	tw := NewTextWriter(w)
	for _, t := range tokens {
		if err := tw.WriteToken(t); err != nil {
			return err
		}
	}
	return tw.Flush()
}
