package arm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchTargetValue_Immediate(t *testing.T) {
	ctx := testContext()
	in := &Inst{Opcode: B, Operands: []Operand{ImmOperand(0x100)}}
	require.EqualValues(t, 0x100, branchTargetValue(in, 0, FixupARMUncondBranch, ctx))
	require.Empty(t, *ctx.Fixups)
}

func TestBranchTargetValue_Expression(t *testing.T) {
	ctx := testContext()
	expr := NewSymbolExpression()
	in := &Inst{Opcode: B, Operands: []Operand{ExprOperand(expr)}}
	require.EqualValues(t, 0, branchTargetValue(in, 0, FixupARMUncondBranch, ctx))
	require.Len(t, *ctx.Fixups, 1)
	require.Equal(t, FixupARMUncondBranch, (*ctx.Fixups)[0].Kind)
}

func TestHasConditionalBranch(t *testing.T) {
	conditional := &Inst{Opcode: B, Operands: []Operand{
		ImmOperand(int64(CondNE)), RegOperand(REG_CPSR), ImmOperand(0x10),
	}}
	require.True(t, hasConditionalBranch(conditional))

	unconditional := &Inst{Opcode: B, Operands: []Operand{
		ImmOperand(int64(CondAL)), RegOperand(0), ImmOperand(0x10),
	}}
	require.False(t, hasConditionalBranch(unconditional))
}

func TestEncodeARMBranchTarget24_ModeSelection(t *testing.T) {
	armCtx := testContext()
	cond := &Inst{Opcode: B, Operands: []Operand{
		ImmOperand(int64(CondNE)), RegOperand(REG_CPSR), ExprOperand(NewSymbolExpression()),
	}}
	encodeARMBranchTarget24(cond, 2, armCtx)
	require.Equal(t, FixupARMCondBranch, (*armCtx.Fixups)[0].Kind)

	uncond := &Inst{Opcode: B, Operands: []Operand{ExprOperand(NewSymbolExpression())}}
	armCtx2 := testContext()
	encodeARMBranchTarget24(uncond, 0, armCtx2)
	require.Equal(t, FixupARMUncondBranch, (*armCtx2.Fixups)[0].Kind)

	t2Ctx := &EncodeContext{Regs: StaticRegisterDatabase{}, Sub: NewSubtarget(OsOther, FeatureThumb, FeatureThumb2)}
	fixups := []Fixup{}
	t2Ctx.Fixups = &fixups
	var relocs uint64
	t2Ctx.ConstantPoolRelocations = &relocs
	encodeARMBranchTarget24(uncond, 0, t2Ctx)
	require.Equal(t, FixupT2CondBranch, fixups[0].Kind)
}

func TestEncodeT2UncondBranchTarget_J1J2(t *testing.T) {
	ctx := testContext()
	// I=0, J1raw=1, J2raw=1: both must clear since I != J{1,2}.
	in := &Inst{Opcode: BW, Operands: []Operand{ImmOperand(0x600000)}}
	require.EqualValues(t, 0, encodeT2UncondBranchTarget(in, 0, ctx))
}

func TestEncodeAdrLabel_ModeSelection(t *testing.T) {
	armCtx := testContext()
	in := &Inst{Opcode: ADD, Operands: []Operand{ExprOperand(NewSymbolExpression())}}
	encodeAdrLabel(in, 0, armCtx)
	require.Equal(t, FixupARMAdrPCRel12, (*armCtx.Fixups)[0].Kind)

	t2Ctx := &EncodeContext{Regs: StaticRegisterDatabase{}, Sub: NewSubtarget(OsOther, FeatureThumb, FeatureThumb2)}
	fixups := []Fixup{}
	t2Ctx.Fixups = &fixups
	var relocs uint64
	t2Ctx.ConstantPoolRelocations = &relocs
	encodeAdrLabel(in, 0, t2Ctx)
	require.Equal(t, FixupT2AdrPCRel12, fixups[0].Kind)
}
