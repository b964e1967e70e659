package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/celskeggs/lightspeed/lsp/decode"
	"github.com/celskeggs/lightspeed/lsp/token"
)

func ruleText(code byte) string {
	rule, found := decode.Lookup(code)
	if !found {
		return ""
	}
	return rule.Text
}

// quote produces a Pascal string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func literalSurface(lit token.Literal, quoteText bool) string {
	switch {
	case lit.Encoding == token.EncUnknown:
		return fmt.Sprintf("{ unknown type code %02X }", lit.RawCode)
	case lit.Encoding == token.EncStringConst && quoteText:
		return quote(lit.Text)
	case lit.Encoding.IsText():
		return lit.Text
	default:
		return strconv.FormatInt(lit.Int, 10)
	}
}

// Surface is the Pascal text a single token stands for.
func Surface(t token.Token) string {
	switch t.Kind {
	case token.Unknown:
		return fmt.Sprintf("{ unknown byte %02X }", t.Code)
	case token.Unit, token.Program, token.Function, token.Procedure, token.ForLoop:
		return ruleText(t.Code) + " " + t.Payload.AsText()
	case token.Keyword:
		return ruleText(t.Code)
	case token.Reserved:
		return ""
	case token.Operator, token.Comment, token.ConditionalDirective, token.Identifier, token.ConstantName:
		return t.Payload.AsText()
	case token.Punctuation, token.Newline, token.Space:
		return strings.Repeat(ruleText(t.Code), t.Payload.AsCount())
	case token.IntegerLiteral:
		return literalSurface(t.Payload.AsLiteral(), false)
	case token.ConstantValue:
		return ruleText(t.Code) + " " + literalSurface(t.Payload.AsLiteral(), true)
	case token.StringType:
		return fmt.Sprintf("%s[%d]", ruleText(t.Code), t.Payload.AsInt())
	case token.PointerType:
		return ruleText(t.Code) + t.Payload.AsText()
	case token.ArrayType:
		first, last := t.Payload.AsBounds()
		return fmt.Sprintf("%s [%v..%v]", ruleText(t.Code), first, last)
	default:
		panic("invalid token kind")
	}
}
