package arm

// branchTargetValue is the one internal helper every branch-target encoder
// in spec.md §4.2 shares: if the operand is an immediate, the value is
// already resolved and is returned as-is; otherwise a fixup of kind is
// appended against the operand's expression and the zero placeholder is
// returned.
func branchTargetValue(in *Inst, opIdx int, kind FixupKind, ctx *EncodeContext) uint32 {
	op := in.operand(opIdx)
	if op.Kind == OperandImmediate {
		return uint32(op.Imm)
	}
	if op.Kind != OperandExpression {
		panicFatal(in.Opcode, opIdx, "branch target operand must be Immediate or Expression, got %s", op.Kind)
	}
	return recordFixup(ctx, kind, op.Expr)
}

// hasConditionalBranch scans adjacent (immediate, register) operand pairs
// looking for a predication pair whose register is the absent/zero
// register or the flags register and whose immediate is not the "always"
// condition — the same scan the original ARMMCCodeEmitter performs over
// every operand of the MCInst, not just the branch-target operand.
func hasConditionalBranch(in *Inst) bool {
	ops := in.Operands
	for i := 0; i+1 < len(ops); i++ {
		imm, reg := ops[i], ops[i+1]
		if imm.Kind != OperandImmediate || reg.Kind != OperandRegister {
			continue
		}
		if reg.Reg != 0 && reg.Reg != REG_CPSR {
			continue
		}
		if ConditionCode(imm.Imm) != CondAL {
			return true
		}
	}
	return false
}

// encodeARMBranchTarget24 implements the "ARM 24-bit branch" row of
// spec.md §4.2's table: arm_condbranch / arm_uncondbranch in ARM mode,
// t2_condbranch in Thumb2 mode.
func encodeARMBranchTarget24(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	if IsThumb2(ctx.Sub) {
		return branchTargetValue(in, opIdx, FixupT2CondBranch, ctx)
	}
	if hasConditionalBranch(in) {
		return branchTargetValue(in, opIdx, FixupARMCondBranch, ctx)
	}
	return branchTargetValue(in, opIdx, FixupARMUncondBranch, ctx)
}

func encodeThumbBLTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbBL, ctx)
}

func encodeThumbBLXTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbBLX, ctx)
}

func encodeThumbBRTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbBR, ctx)
}

func encodeThumbBccTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbBcc, ctx)
}

func encodeThumbCBTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbCB, ctx)
}

// encodeThumbCPTarget encodes a Thumb literal-pool reference used by the
// t_addrmode_pc operand (LDR Rd, [PC, #imm]-style loads materialized from a
// constant pool).
func encodeThumbCPTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupARMThumbCP, ctx)
}

// encodeT2UncondBranchTarget implements the Thumb2 unconditional 24-bit
// branch's J1/J2 re-derivation (spec.md §4.2): after producing the raw
// 25-bit encoding with I/J1/J2 in bits 23/22/21, J1 (and likewise J2) is
// set when I equals its raw bit and cleared when they differ, i.e.
// J1 = NOT(I xor J1_raw). Preserved exactly as the
// original computes it (spec.md §9 Open Question).
func encodeT2UncondBranchTarget(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	val := branchTargetValue(in, opIdx, FixupT2UncondBranch, ctx)

	i := val&0x800000 != 0
	j1 := val&0x400000 != 0
	j2 := val&0x200000 != 0

	if i != j1 {
		val &^= 0x400000
	} else {
		val |= 0x400000
	}
	if i != j2 {
		val &^= 0x200000
	} else {
		val |= 0x200000
	}
	return val
}

// encodeAdrLabel implements the "ADR (PC-relative address)" row: ARM mode
// uses arm_adr_pcrel_12, Thumb2 uses t2_adr_pcrel_12.
func encodeAdrLabel(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	kind := FixupARMAdrPCRel12
	if IsThumb2(ctx.Sub) {
		kind = FixupT2AdrPCRel12
	}
	return branchTargetValue(in, opIdx, kind, ctx)
}

// encodeT2AdrLabel is the always-Thumb2 ADR encoder used by opcodes that
// are only ever selected in Thumb2 mode (their Template never needs the
// ARM-mode branch in encodeAdrLabel).
func encodeT2AdrLabel(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupT2AdrPCRel12, ctx)
}

// encodeThumbAdrLabel is the narrow Thumb ADR form: thumb_adr_pcrel_10.
func encodeThumbAdrLabel(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return branchTargetValue(in, opIdx, FixupThumbAdrPCRel10, ctx)
}
