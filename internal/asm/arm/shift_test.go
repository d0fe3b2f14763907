package arm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeSOImm(t *testing.T) {
	ctx := testContext()
	// rot=12 (0xC), imm8=0xFF packed as the caller's pre-rotated immediate.
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0x0CFF)}}
	require.EqualValues(t, 0x0CFF, encodeSOImm(in, 0, ctx))

	// Garbage bits above [11:8] must not leak into the result.
	in2 := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0x1CFF)}}
	require.EqualValues(t, 0x0CFF, encodeSOImm(in2, 0, ctx))
}

func TestEncodeT2SOImm(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0xABC)}}
	require.EqualValues(t, 0xABC, encodeT2SOImm(in, 0, ctx))

	tooBig := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0x1000)}}
	require.Panics(t, func() { encodeT2SOImm(tooBig, 0, ctx) })
}

func TestEncodeSORegReg(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R0), RegOperand(REG_R1), ImmOperand(int64(ShiftLSR)),
	}}
	// Rm=R0(0), Rs=R1(1), LSR -> sbits=0x3.
	require.EqualValues(t, 0x130, encodeSORegReg(in, 0, ctx))
}

func TestEncodeSORegImm(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R3), ImmOperand(packShift(ShiftLSR, 5)),
	}}
	require.EqualValues(t, 0x2A3, encodeSORegImm(in, 0, ctx))

	rrx := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R3), ImmOperand(packShift(ShiftRRX, 0)),
	}}
	require.EqualValues(t, 0x60|3, encodeSORegImm(rrx, 0, ctx))
}

func TestEncodeT2SOReg_NoRRX(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R3), ImmOperand(packShift(ShiftRRX, 0)),
	}}
	require.Panics(t, func() { encodeT2SOReg(in, 0, ctx) })
}

func TestEncodeT2SOReg_LSL(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R3), ImmOperand(packShift(ShiftLSL, 2)),
	}}
	// Rm=R3(3), LSL sbits=0, amount=2<<7=0x100.
	require.EqualValues(t, 0x103, encodeT2SOReg(in, 0, ctx))
}
