package decode

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type DiagKind uint8

const (
	UnknownOpcode DiagKind = iota + 1
	UnknownIntegerEncoding
	UnknownConstantEncoding
	UnknownArrayBoundTag
	AnomalousIntegerEncoding
)

func (dk DiagKind) String() string {
	switch dk {
	case UnknownOpcode:
		return "unknown opcode"
	case UnknownIntegerEncoding:
		return "unknown integer encoding"
	case UnknownConstantEncoding:
		return "unknown constant encoding"
	case UnknownArrayBoundTag:
		return "unknown array bound tag"
	case AnomalousIntegerEncoding:
		return "anomalous integer encoding"
	default:
		panic("invalid diagnostic kind")
	}
}

// Diagnostic describes a byte pattern the decoder did not recognize, or recognized as
// anomalous, and stepped over.
// Offset is the position of Value; Opcode is the opcode whose rule was running.
type Diagnostic struct {
	Kind   DiagKind
	Offset int
	Opcode byte
	Value  byte
}

func (d Diagnostic) Error() string {
	if d.Kind == UnknownOpcode {
		return fmt.Sprintf("%v %02X at offset 0x%x", d.Kind, d.Value, d.Offset)
	}
	return fmt.Sprintf("%v %02X (opcode %02X) at offset 0x%x", d.Kind, d.Value, d.Opcode, d.Offset)
}

// Reporter receives each Diagnostic as soon as it is found.
type Reporter func(Diagnostic)

func combineDiagnostics(diags []Diagnostic) error {
	var err *multierror.Error
	for _, d := range diags {
		err = multierror.Append(err, d)
	}
	return err.ErrorOrNil()
}
