package token

// Opcodes recovered from the first-generation decoder. These byte values are confirmed.
const (
	OpPackedArray    = 0x60
	OpOf             = 0x64
	OpPackedRecord   = 0x68
	OpPointer        = 0x6A
	OpRecord         = 0x6C
	OpString         = 0x70
	OpArray          = 0x74
	OpReserved78     = 0x78
	OpEquals         = 0x7A
	OpComma          = 0x7C
	OpIdentifier     = 0x7E
	OpComment        = 0x92
	OpNewline        = 0x94
	OpSemicolon      = 0x98
	OpEnd            = 0x9A
	OpUses           = 0x9E
	OpConst          = 0xA2
	OpType           = 0xA4
	OpColon          = 0xA6
	OpLParen         = 0xA8
	OpRParen         = 0xAA
	OpProgram        = 0xAE
	OpProcedure      = 0xB0
	OpFunction       = 0xB2
	OpVar            = 0xBA
	OpUnit           = 0xC6
	OpInterface      = 0xC8
	OpImplementation = 0xCA
	OpConstDef       = 0xCC
)

// Opcodes added by the record-emitting decoder. Their byte values were kept in a
// constants module that did not survive, so they are provisional assignments to
// unused even codes; correct them here when a sample file pins one down.
const (
	OpPlus        = 0x02
	OpMinus       = 0x04
	OpTimes       = 0x06
	OpSlash       = 0x08
	OpDiv         = 0x0A
	OpMod         = 0x0C
	OpAnd         = 0x0E
	OpOr          = 0x10
	OpNot         = 0x12
	OpIn          = 0x14
	OpLessThan    = 0x16
	OpGreaterThan = 0x18
	OpLessEqual   = 0x1A
	OpGreaterEq   = 0x1C
	OpNotEquals   = 0x1E
	OpGets        = 0x20
	OpRange       = 0x22
	OpAt          = 0x24
	OpDereference = 0x26
	OpDot         = 0x28
	OpLBracket    = 0x2A
	OpRBracket    = 0x2C
	OpLParen2     = 0x2E
	OpRParen2     = 0x30
	OpComma2      = 0x32
	OpComma3      = 0x34
	OpNull        = 0x36
	OpHyphen      = 0x38
	OpTo          = 0x3A
	OpDownTo      = 0x3C
	OpSpace       = 0x3E
	OpInteger     = 0x40
	OpIs          = 0x42
	OpIdentifier2 = 0x44

	OpCondComp  = 0x80
	OpBegin     = 0x82
	OpWith      = 0x84
	OpIf        = 0x86
	OpStatement = 0x88
	OpElse      = 0x8A
	OpCase      = 0x8C
	OpDo        = 0x8E
	OpFor       = 0x90
	OpWhile     = 0x96
	OpWhile2    = 0x9C
	OpDefault   = 0xA0
	OpPeriod    = 0xAC
)
