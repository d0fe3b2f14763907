package arm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testContext() *EncodeContext {
	var relocs uint64
	fixups := []Fixup{}
	return &EncodeContext{
		Regs:                    StaticRegisterDatabase{},
		Sub:                     NewSubtarget(OsOther),
		Fixups:                  &fixups,
		ConstantPoolRelocations: &relocs,
	}
}

func TestEncodeOperand_Register(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{RegOperand(REG_R2)}}
	require.EqualValues(t, 2, encodeOperand(in, 0, ctx))
}

func TestEncodeOperand_Immediate(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0x1234)}}
	require.EqualValues(t, 0x1234, encodeOperand(in, 0, ctx))
}

func TestEncodeOperand_FPImmediate(t *testing.T) {
	ctx := testContext()
	v := 1.5
	in := &Inst{Opcode: VMOV, Operands: []Operand{FPImmOperand(v)}}
	want := uint32(math.Float64bits(v) >> 32)
	require.Equal(t, want, encodeOperand(in, 0, ctx))
}

func TestEncodeOperand_ExpressionUnreachable(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ExprOperand(NewSymbolExpression())}}
	require.Panics(t, func() { encodeOperand(in, 0, ctx) })
}

func TestQRegisterDoubling(t *testing.T) {
	ctx := testContext()
	require.EqualValues(t, 6, regValue(ctx.Regs, REG_Q3))
	require.EqualValues(t, 3, regValue(ctx.Regs, REG_D3))
}
