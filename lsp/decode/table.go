package decode

import (
	"sort"

	"github.com/celskeggs/lightspeed/lsp/token"
)

type Shape uint8

const (
	// ShapeFixed skips reserved bytes and carries nothing else.
	ShapeFixed Shape = iota
	// ShapeRepeat reads a single repeat-count byte.
	ShapeRepeat
	// ShapeString skips reserved bytes, then reads a length-prefixed string.
	ShapeString
	ShapeInteger
	ShapeConstant
	// ShapeStringType skips reserved bytes, then reads a variable-width integer.
	ShapeStringType
	// ShapeArray skips reserved bytes, then reads two tagged bounds.
	ShapeArray
)

// Generation records which revision of the format a rule was first observed in.
type Generation uint8

const (
	// GenText rules were decoded by the first tool, which printed Pascal text.
	GenText Generation = iota + 1
	// GenRecord rules were added when decoding moved to emitting token records.
	GenRecord
)

func (g Generation) String() string {
	switch g {
	case 0:
		return "-"
	case GenText:
		return "text"
	case GenRecord:
		return "record"
	default:
		panic("invalid generation")
	}
}

type Rule struct {
	// Name identifies the rule in token records.
	Name string
	// Text is the surface form used when rendering Pascal source.
	Text  string
	Kind  token.Kind
	Shape Shape
	Skip  int
	Since Generation
}

func fixed(name, text string, kind token.Kind, skip int, since Generation) Rule {
	return Rule{Name: name, Text: text, Kind: kind, Shape: ShapeFixed, Skip: skip, Since: since}
}

func keyword(name string, skip int, since Generation) Rule {
	return fixed(name, name, token.Keyword, skip, since)
}

func operator(name, text string) Rule {
	return fixed(name, text, token.Operator, 0, GenRecord)
}

func repeat(name, text string, kind token.Kind, since Generation) Rule {
	return Rule{Name: name, Text: text, Kind: kind, Shape: ShapeRepeat, Since: since}
}

func str(name, text string, kind token.Kind, skip int, since Generation) Rule {
	return Rule{Name: name, Text: text, Kind: kind, Shape: ShapeString, Skip: skip, Since: since}
}

var rules = map[byte]Rule{
	// named declarations
	token.OpUnit:      str("unit", "unit", token.Unit, 5, GenText),
	token.OpProgram:   str("program", "program", token.Program, 5, GenText),
	token.OpFunction:  str("function", "function", token.Function, 5, GenText),
	token.OpProcedure: str("procedure", "procedure", token.Procedure, 5, GenText),

	// section markers
	token.OpInterface:      keyword("interface", 5, GenText),
	token.OpImplementation: keyword("implementation", 5, GenText),
	token.OpUses:           keyword("uses", 1, GenText),
	token.OpConst:          keyword("const", 1, GenText),
	token.OpType:           keyword("type", 1, GenText),
	token.OpVar:            keyword("var", 1, GenText),
	token.OpRecord:         keyword("record", 1, GenText),
	token.OpOf:             keyword("of", 1, GenText),
	token.OpEnd:            keyword("end", 1, GenText),
	token.OpPackedArray:    fixed("packedA", "packed", token.Keyword, 1, GenText),
	token.OpPackedRecord:   fixed("packedR", "packed", token.Keyword, 1, GenText),
	token.OpBegin:          keyword("begin", 9, GenRecord),
	token.OpWith:           keyword("with", 1, GenRecord),
	token.OpIf:             keyword("if", 1, GenRecord),
	token.OpElse:           keyword("else", 1, GenRecord),
	token.OpCase:           keyword("case", 1, GenRecord),
	token.OpDo:             keyword("do", 1, GenRecord),
	token.OpStatement:      fixed("STATEMENT", "", token.Keyword, 1, GenRecord),
	token.OpWhile:          fixed("while_1", "while", token.Keyword, 1, GenRecord),
	token.OpWhile2:         fixed("while_2", "while", token.Keyword, 1, GenRecord),
	token.OpDefault:        fixed("default", "otherwise", token.Keyword, 1, GenRecord),
	token.OpReserved78:     fixed("RESERVED", "", token.Reserved, 11, GenText),

	// repeat-count punctuation and whitespace
	token.OpSemicolon: repeat(";", ";", token.Punctuation, GenText),
	token.OpComma:     repeat(",", ",", token.Punctuation, GenText),
	token.OpColon:     repeat(":", ":", token.Punctuation, GenText),
	token.OpNewline:   repeat("NEWLINE", "\n", token.Newline, GenText),
	token.OpSpace:     repeat("SPACE", " ", token.Space, GenRecord),

	// inline operators; the typed parens carry one reserved byte
	token.OpLParen:      fixed("(1", "(", token.Operator, 1, GenText),
	token.OpRParen:      fixed(")1", ")", token.Operator, 1, GenText),
	token.OpPeriod:      fixed(".", ".", token.Operator, 3, GenRecord),
	token.OpEquals:      operator("=", "="),
	token.OpNotEquals:   operator("<>", "<>"),
	token.OpGets:        operator(":=", ":="),
	token.OpLessThan:    operator("<", "<"),
	token.OpGreaterThan: operator(">", ">"),
	token.OpLessEqual:   operator("<=", "<="),
	token.OpGreaterEq:   operator(">=", ">="),
	token.OpPlus:        operator("+", "+"),
	token.OpMinus:       operator("-", "-"),
	token.OpHyphen:      operator("-", "-"),
	token.OpTimes:       operator("*", "*"),
	token.OpSlash:       operator("/", "/"),
	token.OpDiv:         operator("div", "div"),
	token.OpMod:         operator("mod", "mod"),
	token.OpAnd:         operator("and", "and"),
	token.OpOr:          operator("or", "or"),
	token.OpNot:         operator("not", "not"),
	token.OpIn:          operator("in", "in"),
	token.OpRange:       operator("..", ".."),
	token.OpAt:          operator("@", "@"),
	token.OpDereference: operator("^", "^"),
	token.OpDot:         operator(".", "."),
	token.OpLParen2:     operator("(2", "("),
	token.OpRParen2:     operator(")2", ")"),
	token.OpLBracket:    operator("[", "["),
	token.OpRBracket:    operator("]", "]"),
	token.OpComma2:      operator(",", ","),
	token.OpComma3:      operator(",", ","),
	token.OpTo:          operator("to", "to"),
	token.OpDownTo:      operator("down to", "downto"),
	token.OpNull:        operator("null", ""),

	// string-carrying rules
	token.OpComment:     str("COMMENT", "", token.Comment, 3, GenText),
	token.OpCondComp:    str("CONDITIONAL", "", token.ConditionalDirective, 3, GenRecord),
	token.OpIdentifier:  str("IDENTIFIER_1", "", token.Identifier, 1, GenText),
	token.OpIdentifier2: str("IDENTIFIER_2", "", token.Identifier, 0, GenRecord),
	token.OpConstDef:    str("CONST_DEF", "", token.ConstantName, 1, GenText),
	token.OpPointer:     str("^", "^", token.PointerType, 1, GenText),
	token.OpFor:         str("for", "for", token.ForLoop, 1, GenRecord),

	// literals and type constructors
	token.OpInteger: {Name: "INTEGER", Kind: token.IntegerLiteral, Shape: ShapeInteger, Since: GenRecord},
	token.OpIs:      {Name: "IS", Text: "=", Kind: token.ConstantValue, Shape: ShapeConstant, Since: GenRecord},
	token.OpString:  {Name: "String", Text: "String", Kind: token.StringType, Shape: ShapeStringType, Skip: 1, Since: GenText},
	token.OpArray:   {Name: "array", Text: "array", Kind: token.ArrayType, Shape: ShapeArray, Skip: 1, Since: GenText},
}

func Lookup(op byte) (Rule, bool) {
	rule, found := rules[op]
	return rule, found
}

// Name returns the record name for an opcode, or UNKNOWN.
func Name(op byte) string {
	if rule, found := rules[op]; found {
		return rule.Name
	}
	return "UNKNOWN"
}

// Opcodes lists every opcode the table knows, in ascending order.
func Opcodes() []byte {
	ops := make([]byte, 0, len(rules))
	for op := range rules {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i] < ops[j]
	})
	return ops
}
