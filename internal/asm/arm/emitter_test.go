package arm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/armcodec/internal/asm"
)

func newTestEmitter(sub SubtargetQuery) *Emitter {
	table := NewStaticTemplateTable(DefaultTemplates())
	return NewEmitter(table, StaticRegisterDatabase{}, sub)
}

// TestEncodeInstruction_ADDImmediate is spec.md §8 scenario 1: ADD
// (register destination R0, base R2, modified-immediate #0xFF00 packed as
// rot=12/imm8=0xFF) must produce the little-endian byte sequence
// FF 0C 82 E2 (word 0xE2820CFF).
func TestEncodeInstruction_ADDImmediate(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))
	sink := NewByteSliceSink()
	var fixups []Fixup

	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R0), RegOperand(REG_R2), ImmOperand(0x0CFF),
	}}
	e.EncodeInstruction(in, &fixups, sink)

	require.Equal(t, []byte{0xFF, 0x0C, 0x82, 0xE2}, sink.Bytes())
	require.Empty(t, fixups)
	require.EqualValues(t, 1, e.InstructionsEmitted())
}

// TestEncodeInstruction_Thumb2WideBranch is spec.md §8 scenario 2: a
// Thumb2 B.W targets a resolved offset whose raw J1/J2 bits must be
// re-derived, and the 32-bit word is split into two halfwords, high first,
// each halfword little-endian.
func TestEncodeInstruction_Thumb2WideBranch(t *testing.T) {
	sub := NewSubtarget(OsOther, FeatureThumb, FeatureThumb2)
	e := newTestEmitter(sub)
	sink := NewByteSliceSink()
	var fixups []Fixup

	// Raw encoding with I=0, J1=1, J2=1: both get cleared by the re-
	// derivation since I differs from each.
	in := &Inst{Opcode: BW, Operands: []Operand{ImmOperand(0x600000)}}
	e.EncodeInstruction(in, &fixups, sink)

	// word = 0xF0009000 | 0 (re-derived target bits all zero) -> halfwords
	// 0xF000 (high, emitted first) then 0x9000 (low), each little-endian.
	require.Equal(t, []byte{0x00, 0xF0, 0x00, 0x90}, sink.Bytes())
	require.Empty(t, fixups)
}

// TestEncodeInstruction_VLDRLiteralPool is spec.md §8 scenario 3: VLDR
// S0, [PC, label] has a non-register first addressing operand, so PC
// becomes the base, the add-bit clears, a PC-relative fixup is recorded,
// and the constant-pool-relocation counter increments by exactly one.
func TestEncodeInstruction_VLDRLiteralPool(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))
	sink := NewByteSliceSink()
	var fixups []Fixup

	in := &Inst{Opcode: VLDR, Operands: []Operand{
		RegOperand(REG_S0), ExprOperand(NewSymbolExpression()),
	}}
	e.EncodeInstruction(in, &fixups, sink)

	require.Len(t, fixups, 1)
	require.Equal(t, FixupARMPCRel10, fixups[0].Kind)
	require.EqualValues(t, 1, e.ConstantPoolRelocations())
	require.Equal(t, []byte{0x00, 0x1E, 0x10, 0xED}, sink.Bytes())
}

// TestEncodeInstruction_LDMRegisterList is spec.md §8 scenario 4's register
// list: LDM R4, {R0, R2, R5} yields register-list bitmask 0x0025. The
// shipped LDM template has W=0, so the bytes encode no writeback.
func TestEncodeInstruction_LDMRegisterList(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))
	sink := NewByteSliceSink()
	var fixups []Fixup

	in := &Inst{Opcode: LDM, Operands: []Operand{
		RegOperand(REG_R4), RegOperand(REG_R0), RegOperand(REG_R2), RegOperand(REG_R5),
	}}
	e.EncodeInstruction(in, &fixups, sink)

	require.Equal(t, []byte{0x25, 0x00, 0x94, 0xE8}, sink.Bytes())
}

func TestEncodeInstruction_Pseudo(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))
	sink := NewByteSliceSink()
	var fixups []Fixup

	in := &Inst{Opcode: NOP}
	e.EncodeInstruction(in, &fixups, sink)

	require.Empty(t, sink.Bytes())
	require.EqualValues(t, 0, e.InstructionsEmitted())
}

func TestEncodeInstruction_UnknownOpcodePanics(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))
	sink := NewByteSliceSink()
	var fixups []Fixup
	in := &Inst{Opcode: asm.Instruction(9999)}
	require.Panics(t, func() { e.EncodeInstruction(in, &fixups, sink) })
}

// Determinism (spec.md P2): encoding the same instruction twice with the
// same subtarget produces identical bytes and identical fixup sequences.
func TestEncodeInstruction_Deterministic(t *testing.T) {
	e := newTestEmitter(NewSubtarget(OsOther))

	in := &Inst{Opcode: ADD, Operands: []Operand{
		RegOperand(REG_R0), RegOperand(REG_R2), ImmOperand(0x0CFF),
	}}

	sinkA := NewByteSliceSink()
	var fixupsA []Fixup
	e.EncodeInstruction(in, &fixupsA, sinkA)

	sinkB := NewByteSliceSink()
	var fixupsB []Fixup
	e.EncodeInstruction(in, &fixupsB, sinkB)

	require.Equal(t, sinkA.Bytes(), sinkB.Bytes())
	require.Equal(t, fixupsA, fixupsB)
}
