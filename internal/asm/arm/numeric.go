package arm

import "math/bits"

// encodeBitfieldInvertedMask implements spec.md §4.6's "bf_inv_mask_imm":
// the operand is a 32-bit mask with a single contiguous run of zero bits;
// lsb and msb are the boundaries of that run, packed as msb<<5|lsb. A mask
// with no zero bits at all (all ones) is an internal invariant violation:
// there is no run to describe.
func encodeBitfieldInvertedMask(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	v := uint32(in.requireImm(opIdx))
	inverted := ^v
	if inverted == 0 {
		panicFatal(in.Opcode, opIdx, "bf_inv_mask_imm: mask %#x has no cleared bits", v)
	}
	lsb := bits.TrailingZeros32(inverted)
	msb := 31 - bits.LeadingZeros32(inverted)
	return uint32(msb)<<5 | uint32(lsb)
}

// encodeMsb implements spec.md §4.6's "msb" (bitfield extract/insert's most
// significant bit position): the preceding operand is lsb, this operand is
// width, and the emitted value is lsb+width-1. Width must be positive and
// the result must stay inside the 5-bit field.
func encodeMsb(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	lsb := in.requireImm(opIdx - 1)
	width := in.requireImm(opIdx)
	if width <= 0 {
		panicFatal(in.Opcode, opIdx, "msb: width must be positive, got %d", width)
	}
	msb := lsb + width - 1
	if msb < 0 || msb > 31 {
		panicFatal(in.Opcode, opIdx, "msb: lsb+width-1 = %d out of range [0,31]", msb)
	}
	return uint32(msb)
}

// encodeNEONVcvtImm32 implements spec.md §4.6's "neon_vcvt_imm32": the
// fixed-point conversion's fbits operand is encoded as 64 minus itself.
func encodeNEONVcvtImm32(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return 64 - uint32(in.requireImm(opIdx))
}

func encodeShiftRight8Imm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return 8 - uint32(in.requireImm(opIdx))
}

func encodeShiftRight16Imm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return 16 - uint32(in.requireImm(opIdx))
}

func encodeShiftRight32Imm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return 32 - uint32(in.requireImm(opIdx))
}

func encodeShiftRight64Imm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return 64 - uint32(in.requireImm(opIdx))
}

// encodeCCOut implements spec.md §4.6's "cc_out": 1 if the operand names
// the flags register, 0 for the absent/zero register (data-processing
// instructions that do not set condition flags).
func encodeCCOut(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	reg := in.requireReg(opIdx)
	if reg == REG_CPSR {
		return 1
	}
	return 0
}

// encodeLdStmMode implements spec.md §4.6's "ldstm_mode": the four
// load/store-multiple addressing sub-modes, in AMSubMode's declared order.
func encodeLdStmMode(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	mode := AMSubMode(in.requireImm(opIdx))
	switch mode {
	case AMSubModeDA:
		return 0
	case AMSubModeIA:
		return 1
	case AMSubModeDB:
		return 2
	case AMSubModeIB:
		return 3
	default:
		panicFatal(in.Opcode, opIdx, "ldstm_mode: unknown sub-mode %d", mode)
		return 0
	}
}

// encodeRegisterList implements spec.md §4.6's "reg_list": GPR lists encode
// as a 16-bit membership bitmask; VFP lists encode as a base register plus
// a count, with double-precision counts doubled to match the underlying
// single-precision register spacing.
func encodeRegisterList(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	op := in.operand(opIdx)
	if op.Kind != OperandRegister {
		panicFatal(in.Opcode, opIdx, "reg_list: expected a Register operand naming the list's first member, got %s", op.Kind)
	}
	first := op.Reg

	if ctx.Regs.ClassContains(ClassSPR, first) || ctx.Regs.ClassContains(ClassDPR, first) {
		count := int64(1)
		if opIdx+1 < len(in.Operands) {
			next := in.operand(opIdx + 1)
			if next.Kind == OperandImmediate {
				count = next.Imm
			}
		}
		if ctx.Regs.ClassContains(ClassDPR, first) {
			count *= 2
		}
		binary := uint32(regValue(ctx.Regs, first)) << 8
		binary |= uint32(count) & 0xFF
		return binary
	}

	var binary uint32
	for _, o := range in.Operands[opIdx:] {
		if o.Kind != OperandRegister {
			continue
		}
		binary |= 1 << regValue(ctx.Regs, o.Reg)
	}
	return binary
}
