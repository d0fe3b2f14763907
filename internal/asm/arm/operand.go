package arm

import (
	"fmt"

	"github.com/tetratelabs/armcodec/internal/asm"
)

// OperandKind tags the variant held by an Operand.
type OperandKind uint8

const (
	OperandInvalid OperandKind = iota
	OperandRegister
	OperandImmediate
	OperandFPImmediate
	OperandExpression
)

func (k OperandKind) String() string {
	switch k {
	case OperandRegister:
		return "Register"
	case OperandImmediate:
		return "Immediate"
	case OperandFPImmediate:
		return "FPImmediate"
	case OperandExpression:
		return "Expression"
	default:
		return "Invalid"
	}
}

// Operand is one symbolic operand of an Inst. It corresponds 1:1 to
// spec.md §3's "Operand" entity: a tagged variant over Register, Immediate,
// FPImmediate and Expression.
type Operand struct {
	Kind  OperandKind
	Reg   asm.Register
	Imm   int64
	FPImm float64
	Expr  Expression
}

// RegOperand builds a register Operand.
func RegOperand(reg asm.Register) Operand { return Operand{Kind: OperandRegister, Reg: reg} }

// ImmOperand builds an immediate Operand.
func ImmOperand(v int64) Operand { return Operand{Kind: OperandImmediate, Imm: v} }

// FPImmOperand builds a floating-point immediate Operand.
func FPImmOperand(v float64) Operand { return Operand{Kind: OperandFPImmediate, FPImm: v} }

// ExprOperand builds an Expression Operand (unresolved: the final value
// depends on symbol/section layout not yet known).
func ExprOperand(e Expression) Operand { return Operand{Kind: OperandExpression, Expr: e} }

// SourceLocation is an optional provenance marker carried through from the
// parser/assembler, used only in diagnostics.
type SourceLocation struct {
	File string
	Line int
}

func (l SourceLocation) String() string {
	if l.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Inst is spec.md §3's "Instruction" entity: an opcode id plus its ordered
// operands, constructed upstream (by instruction selection / the parser)
// and consumed exactly once by the emitter.
type Inst struct {
	Opcode   asm.Instruction
	Operands []Operand
	Loc      SourceLocation
}

// operand returns the operand at idx, or panics with a FatalError if idx is
// out of range — an out-of-range operand index always indicates a bad
// Template (a mismatch between its operand-plan and the actual operand
// count upstream produced), never a recoverable condition.
func (in *Inst) operand(idx int) Operand {
	if idx < 0 || idx >= len(in.Operands) {
		panicFatal(in.Opcode, idx, "operand index out of range (have %d operands)", len(in.Operands))
	}
	return in.Operands[idx]
}

func (in *Inst) requireReg(idx int) asm.Register {
	op := in.operand(idx)
	if op.Kind != OperandRegister {
		panicFatal(in.Opcode, idx, "expected Register operand, got %s", op.Kind)
	}
	return op.Reg
}

func (in *Inst) requireImm(idx int) int64 {
	op := in.operand(idx)
	if op.Kind != OperandImmediate {
		panicFatal(in.Opcode, idx, "expected Immediate operand, got %s", op.Kind)
	}
	return op.Imm
}
