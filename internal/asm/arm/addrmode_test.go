package arm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeAddSub(t *testing.T) {
	mag, add := normalizeAddSub(SentinelNegZero)
	require.EqualValues(t, 0, mag)
	require.True(t, add)

	mag, add = normalizeAddSub(-5)
	require.EqualValues(t, 5, mag)
	require.False(t, add)

	mag, add = normalizeAddSub(5)
	require.EqualValues(t, 5, mag)
	require.True(t, add)
}

func TestEncodeAddrModeImm12_RegisterForm(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: LDR, Operands: []Operand{RegOperand(REG_R2), ImmOperand(-0x10)}}
	require.EqualValues(t, 0x4010, encodeAddrModeImm12(in, 0, ctx))
}

func TestEncodeAddrModeImm12_LiteralPool(t *testing.T) {
	ctx := testContext()
	expr := NewSymbolExpression()
	in := &Inst{Opcode: LDR, Operands: []Operand{ExprOperand(expr)}}
	require.EqualValues(t, 0x1E000, encodeAddrModeImm12(in, 0, ctx))
	require.Len(t, *ctx.Fixups, 1)
	require.Equal(t, FixupARMLdStPCRel12, (*ctx.Fixups)[0].Kind)
	require.EqualValues(t, 1, *ctx.ConstantPoolRelocations)
}

func TestNeonAlignmentTables(t *testing.T) {
	// Scenario: VLD1.32 {d0}, [r3:128] -> one-lane-32 with align=16 maps to 0,
	// distinguishing it from the standard table's 16->0b10.
	require.EqualValues(t, 0, neonOneLane32Alignment(Align16))
	require.EqualValues(t, 0b10, neonStandardAlignment(Align16))
	require.EqualValues(t, 0b11, neonOneLane32Alignment(Align32))
	require.EqualValues(t, 0b01, neonDupAlignment(Align8))
}

func TestEncodeAddrMode6Address(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: VLD1, Operands: []Operand{RegOperand(REG_R3), ImmOperand(Align16)}}
	// Rn=R3(regno 3), standard alignment 16 -> 0b10 -> 3 | (2<<4) = 0x23.
	require.EqualValues(t, 0x23, encodeAddrMode6Address(in, 0, ctx))
}

func TestEncodeAddrMode6OneLane32Address(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: VLD1, Operands: []Operand{RegOperand(REG_R3), ImmOperand(Align16)}}
	require.EqualValues(t, 3, encodeAddrMode6OneLane32Address(in, 0, ctx))
}

func TestEncodeAddrMode6Offset(t *testing.T) {
	ctx := testContext()
	noWriteback := &Inst{Opcode: VLD1, Operands: []Operand{RegOperand(0)}}
	require.EqualValues(t, 0x0D, encodeAddrMode6Offset(noWriteback, 0, ctx))

	reg := &Inst{Opcode: VLD1, Operands: []Operand{RegOperand(REG_R5)}}
	require.EqualValues(t, 5, encodeAddrMode6Offset(reg, 0, ctx))
}

func TestEncodeThumbAddrModeSP_WrongBasePanics(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{RegOperand(REG_R0), ImmOperand(4)}}
	require.Panics(t, func() { encodeThumbAddrModeSP(in, 0, ctx) })
}

func TestEncodeThumbAddrModeSP(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{RegOperand(REG_SP), ImmOperand(0x20)}}
	require.EqualValues(t, 0x20, encodeThumbAddrModeSP(in, 0, ctx))
}

func TestEncodeT2AddrModeImm8Offset(t *testing.T) {
	ctx := testContext()
	positive := &Inst{Opcode: LDR, Operands: []Operand{ImmOperand(0x10)}}
	require.EqualValues(t, 0x110, encodeT2AddrModeImm8Offset(positive, 0, ctx))

	negative := &Inst{Opcode: LDR, Operands: []Operand{ImmOperand(-0x10)}}
	require.EqualValues(t, 0x10, encodeT2AddrModeImm8Offset(negative, 0, ctx))
}
