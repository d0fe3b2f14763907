package arm

import "math"

// encodeOperand is the generic machine-operand encoder of spec.md §4.1
// ("encode_operand"): it turns one Register, Immediate, or FPImmediate
// operand into its bit pattern. Expression operands are unreachable here —
// every addressing-mode and branch-target encoder that can see an
// Expression handles it itself (see branch.go, movw.go, addrmode.go).
func encodeOperand(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	op := in.operand(opIdx)
	switch op.Kind {
	case OperandRegister:
		return regValue(ctx.Regs, op.Reg)
	case OperandImmediate:
		return uint32(op.Imm)
	case OperandFPImmediate:
		bits := math.Float64bits(op.FPImm)
		return uint32(bits >> 32)
	default:
		panicFatal(in.Opcode, opIdx, "encode_operand: unreachable for operand kind %s", op.Kind)
		return 0
	}
}
