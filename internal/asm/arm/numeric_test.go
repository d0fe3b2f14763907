package arm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeBitfieldInvertedMask(t *testing.T) {
	ctx := testContext()
	// mask 0xFFFFFF0F has a 4-bit cleared run at bits [7:4].
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(0xFFFFFF0F)}}
	v := encodeBitfieldInvertedMask(in, 0, ctx)
	require.EqualValues(t, 4, v&0x1F)
	require.EqualValues(t, 7, (v>>5)&0x1F)
}

func TestEncodeBitfieldInvertedMask_AllOnesPanics(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(int64(uint32(0xFFFFFFFF)))}}
	require.Panics(t, func() { encodeBitfieldInvertedMask(in, 0, ctx) })
}

func TestEncodeMsb(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(4), ImmOperand(8)}}
	require.EqualValues(t, 11, encodeMsb(in, 1, ctx))
}

func TestEncodeMsb_ZeroWidthPanics(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ImmOperand(4), ImmOperand(0)}}
	require.Panics(t, func() { encodeMsb(in, 1, ctx) })
}

func TestEncodeNEONVcvtImm32(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: VMOV, Operands: []Operand{ImmOperand(20)}}
	require.EqualValues(t, 44, encodeNEONVcvtImm32(in, 0, ctx))
}

func TestEncodeShiftRightImms(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: VMOV, Operands: []Operand{ImmOperand(3)}}
	require.EqualValues(t, 5, encodeShiftRight8Imm(in, 0, ctx))
	require.EqualValues(t, 13, encodeShiftRight16Imm(in, 0, ctx))
	require.EqualValues(t, 29, encodeShiftRight32Imm(in, 0, ctx))
	require.EqualValues(t, 61, encodeShiftRight64Imm(in, 0, ctx))
}

func TestEncodeCCOut(t *testing.T) {
	ctx := testContext()
	set := &Inst{Opcode: ADD, Operands: []Operand{RegOperand(REG_CPSR)}}
	require.EqualValues(t, 1, encodeCCOut(set, 0, ctx))

	unset := &Inst{Opcode: ADD, Operands: []Operand{RegOperand(0)}}
	require.EqualValues(t, 0, encodeCCOut(unset, 0, ctx))
}

func TestEncodeLdStmMode(t *testing.T) {
	ctx := testContext()
	for mode, want := range map[AMSubMode]uint32{
		AMSubModeDA: 0, AMSubModeIA: 1, AMSubModeDB: 2, AMSubModeIB: 3,
	} {
		in := &Inst{Opcode: LDM, Operands: []Operand{ImmOperand(int64(mode))}}
		require.Equal(t, want, encodeLdStmMode(in, 0, ctx))
	}
}

func TestEncodeRegisterList_GPR(t *testing.T) {
	// Scenario: LDM R4!, {R0, R2, R5} -> bitmask 0x0025.
	ctx := testContext()
	in := &Inst{Opcode: LDM, Operands: []Operand{
		RegOperand(REG_R0), RegOperand(REG_R2), RegOperand(REG_R5),
	}}
	require.EqualValues(t, 0x0025, encodeRegisterList(in, 0, ctx))
}

func TestEncodeRegisterList_DPR(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: VLD1, Operands: []Operand{RegOperand(REG_D0), ImmOperand(2)}}
	// Vd=0, count doubled to 4.
	require.EqualValues(t, 4, encodeRegisterList(in, 0, ctx))
}
