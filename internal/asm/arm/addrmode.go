package arm

import "github.com/tetratelabs/armcodec/internal/asm"

// normalizeAddSub implements spec.md §4.4 step 2: the sentinel "#-0" maps
// to magnitude 0 with the add bit set; negative immediates become their
// positive magnitude with the add bit clear; non-negative immediates are
// unchanged with the add bit set.
func normalizeAddSub(v int64) (magnitude uint32, add bool) {
	if v == SentinelNegZero {
		return 0, true
	}
	if v < 0 {
		return uint32(-v), false
	}
	return uint32(v), true
}

// encodeAddrModeBase implements the shared "EncodeAddrModeOpValues" helper:
// sub-operands are [Rn, signed-immediate-or-shifted-register-descriptor].
// It normalizes the immediate per normalizeAddSub and returns Rn's encoded
// value alongside it.
func encodeAddrModeBase(in *Inst, opIdx int, ctx *EncodeContext) (reg uint32, magnitude uint32, add bool) {
	rn := in.requireReg(opIdx)
	magnitude, add = normalizeAddSub(in.requireImm(opIdx + 1))
	reg = regValue(ctx.Regs, rn)
	return
}

// literalPoolFixupKind picks the PC-relative load/store fixup kind for the
// current ISA mode.
func literalPoolFixupKind(armKind, t2Kind FixupKind, ctx *EncodeContext) FixupKind {
	if IsThumb2(ctx.Sub) {
		return t2Kind
	}
	return armKind
}

func requireExpr(in *Inst, opIdx int, op Operand) Expression {
	if op.Kind != OperandExpression {
		panicFatal(in.Opcode, opIdx, "addressing mode literal-pool reference requires an Expression operand, got %s", op.Kind)
	}
	return op.Expr
}

// encodeAddrModeImm12 implements addrmode_imm12: {17:13}=Rn, {12}=U,
// {11:0}=imm12. A non-register first operand means a literal-pool
// reference: base is PC, offset 0, U clear, and a load/store PC-relative
// fixup is recorded.
func encodeAddrModeImm12(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	first := in.operand(opIdx)
	var reg, imm uint32
	var add bool
	if first.Kind != OperandRegister {
		reg = regValue(ctx.Regs, REG_PC)
		kind := literalPoolFixupKind(FixupARMLdStPCRel12, FixupT2LdStPCRel12, ctx)
		recordFixup(ctx, kind, requireExpr(in, opIdx, first))
		ctx.bumpConstantPoolRelocations()
		add = false
	} else {
		reg, imm, add = encodeAddrModeBase(in, opIdx, ctx)
	}
	binary := imm & 0xFFF
	if add {
		binary |= 1 << 12
	}
	binary |= reg << 13
	return binary
}

// encodeT2AddrModeImm8s4 implements t2_addrmode_imm8s4: {12:9}=Rn, {8}=U,
// {7:0}=imm8 where imm8 is the stored immediate right-shifted by 2 (the
// true range is a 10-bit, 4-aligned offset).
func encodeT2AddrModeImm8s4(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	first := in.operand(opIdx)
	var reg, imm uint32
	var add bool
	if first.Kind != OperandRegister {
		reg = regValue(ctx.Regs, REG_PC)
		recordFixup(ctx, FixupARMPCRel10, requireExpr(in, opIdx, first))
		ctx.bumpConstantPoolRelocations()
		add = false
	} else {
		reg, imm, add = encodeAddrModeBase(in, opIdx, ctx)
	}
	binary := (imm >> 2) & 0xFF
	if add {
		binary |= 1 << 8
	}
	binary |= reg << 9
	return binary
}

// encodeAddrMode5 implements VFP's addrmode5: {12:9}=Rn, {8}=U, {7:0}=imm8.
func encodeAddrMode5(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	first := in.operand(opIdx)
	var reg, imm uint32
	var add bool
	if first.Kind != OperandRegister {
		reg = regValue(ctx.Regs, REG_PC)
		kind := literalPoolFixupKind(FixupARMPCRel10, FixupT2PCRel10, ctx)
		recordFixup(ctx, kind, requireExpr(in, opIdx, first))
		ctx.bumpConstantPoolRelocations()
		add = false
	} else {
		reg, imm, add = encodeAddrModeBase(in, opIdx, ctx)
	}
	binary := imm & 0xFF
	if add {
		binary |= 1 << 8
	}
	binary |= reg << 9
	return binary
}

// encodeLdStSOReg implements ldst_so_reg: {16:13}=Rn, {12}=U, {11:7}=imm,
// {6:5}=shift-type, {4}=0, {3:0}=Rm. Sub-operands are [Rn, Rm, packed
// shift-type+amount+add-bit] where the add bit is bit 0, below the shift
// packing (see unpackLdStSOReg).
func encodeLdStSOReg(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	rm := in.requireReg(opIdx + 1)
	shiftType, shiftImm, add := unpackLdStSOReg(in.requireImm(opIdx + 2))

	binary := regValue(ctx.Regs, rm)
	binary |= regValue(ctx.Regs, rn) << 13
	binary |= shiftOpBits(in, opIdx+2, shiftType) << 5
	binary |= shiftImm << 7
	if add {
		binary |= 1 << 12
	}
	return binary
}

// shiftOpBits maps a ShiftOpcode to the 2-bit {6:5} shift-type code common
// to addrmode2/addrmode2_offset/ldst_so_reg: LSL=00, LSR=01, ASR=10,
// ROR/RRX=11.
func shiftOpBits(in *Inst, opIdx int, opc ShiftOpcode) uint32 {
	switch opc {
	case ShiftLSL:
		return 0
	case ShiftLSR:
		return 1
	case ShiftASR:
		return 2
	case ShiftROR, ShiftRRX:
		return 3
	default:
		panicFatal(in.Opcode, opIdx, "unknown shift opcode %d", opc)
		return 0
	}
}

// The am2* constants below give the sub-field layout for the combined "AM2/AM3 offset"
// immediate operand this emitter's callers pack for addrmode2 / addrmode3
// and their *_offset variants: bit 0 is the add flag, bits [3:1] the shift
// opcode (addrmode2 only), and the remaining high bits the shift amount or
// the plain 8/12-bit immediate, depending on mode. This plays the role the
// external ARM_AM::AMOpc helpers play in the original.
const (
	am2AddBit       = 1
	am2ShiftOpcBits = 3
	am2ShiftOpcMask = 1<<am2ShiftOpcBits - 1
)

func unpackLdStSOReg(v int64) (opc ShiftOpcode, amount uint32, add bool) {
	add = v&am2AddBit != 0
	rest := v >> 1
	opc = ShiftOpcode(rest & am2ShiftOpcMask)
	amount = uint32(rest >> am2ShiftOpcBits)
	return
}

// encodeAddrMode2 implements addrmode2: {17:14}=Rn, then the am2offset
// layout below for the remaining 14 bits.
func encodeAddrMode2(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	binary := encodeAddrMode2Offset(in, opIdx+1, ctx)
	binary |= regValue(ctx.Regs, rn) << 14
	return binary
}

// encodeAddrMode2Offset implements am2offset: {13}=isReg, {12}=U,
// {11:0}=imm12-or-shifted-Rm. Sub-operands are [Rm-or-nil, packed
// shift-type+amount+add].
func encodeAddrMode2Offset(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	opc, amount, add := unpackLdStSOReg(in.requireImm(opIdx + 1))
	isReg := rm != asm.NilRegister

	var binary uint32
	if isReg {
		binary = amount << 7
		binary |= shiftOpBits(in, opIdx, opc) << 5
		binary |= regValue(ctx.Regs, rm)
	} else {
		binary = amount
	}
	if add {
		binary |= 1 << 12
	}
	if isReg {
		binary |= 1 << 13
	}
	return binary
}

// encodePostIdxReg implements postidx_reg: {4}=U, {3:0}=Rm.
func encodePostIdxReg(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	_, _, add := unpackLdStSOReg(in.requireImm(opIdx + 1))
	binary := regValue(ctx.Regs, rm)
	if add {
		binary |= 1 << 4
	}
	return binary
}

// encodeAddrMode3 implements addrmode3: {13}=isImm, {12:9}=Rn, {8}=U,
// {7:4}=imm_high-or-0, {3:0}=imm_low-or-Rm.
func encodeAddrMode3(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	rm := in.requireReg(opIdx + 1)
	imm8, add := am3OffsetValue(in, opIdx+2, ctx, rm)
	isImm := rm == asm.NilRegister

	binary := regValue(ctx.Regs, rn) << 9
	binary |= imm8
	if add {
		binary |= 1 << 8
	}
	if isImm {
		binary |= 1 << 13
	}
	return binary
}

// encodeAddrMode3Offset implements am3offset: same as addrmode3 without the
// {12:9}=Rn field, at bit 9 instead of 13 for the isImm flag.
func encodeAddrMode3Offset(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	imm8, add := am3OffsetValue(in, opIdx+1, ctx, rm)
	isImm := rm == asm.NilRegister

	binary := imm8
	if add {
		binary |= 1 << 8
	}
	if isImm {
		binary |= 1 << 9
	}
	return binary
}

// am3OffsetValue resolves the shared addrmode3 low-8-bit field: Rm's
// encoded value if a register offset is present, otherwise the packed
// 8-bit immediate magnitude.
func am3OffsetValue(in *Inst, opIdx int, ctx *EncodeContext, rm asm.Register) (imm8 uint32, add bool) {
	_, magnitude, addBit := unpackLdStSOReg(in.requireImm(opIdx))
	if rm != asm.NilRegister {
		return regValue(ctx.Regs, rm), addBit
	}
	return magnitude, addBit
}

// encodeThumbAddrModeSP implements t_addrmode_sp: {7:0}=imm8, base is
// implicitly SP.
func encodeThumbAddrModeSP(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	base := in.requireReg(opIdx)
	if base != REG_SP {
		panicFatal(in.Opcode, opIdx, "t_addrmode_sp: base register must be SP")
	}
	imm8 := in.requireImm(opIdx + 1)
	return uint32(imm8) & 0xFF
}

// encodeThumbAddrModeIS implements t_addrmode_is#: {7:3}=imm5, {2:0}=Rn.
func encodeThumbAddrModeIS(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	imm5 := uint32(in.requireImm(opIdx + 1))
	return ((imm5 & 0x1F) << 3) | regValue(ctx.Regs, rn)
}

// encodeThumbAddrModeRR implements t_addrmode_rr: {5:3}=Rm, {2:0}=Rn.
func encodeThumbAddrModeRR(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	rm := in.requireReg(opIdx + 1)
	return (regValue(ctx.Regs, rm) << 3) | regValue(ctx.Regs, rn)
}

// encodeThumbAddrModePC implements t_addrmode_pc: a Thumb literal-pool
// reference, handled like any other branch-target-shaped fixup.
func encodeThumbAddrModePC(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	return encodeThumbCPTarget(in, opIdx, ctx)
}

// encodeT2AddrModeSOReg implements t2_addrmode_so_reg: Rn<<4 | Rm<<2 | imm2.
func encodeT2AddrModeSOReg(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	rm := in.requireReg(opIdx + 1)
	imm2 := uint32(in.requireImm(opIdx + 2))

	value := regValue(ctx.Regs, rn)
	value <<= 4
	value |= regValue(ctx.Regs, rm)
	value <<= 2
	value |= imm2 & 0x3
	return value
}

// encodeT2AddrModeImm8 implements t2_addrmode_imm8: Rn<<9 | (add<<8) |
// |imm|, sub-operands [Rn, signed imm8].
func encodeT2AddrModeImm8(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	value := regValue(ctx.Regs, rn)
	value <<= 9
	value |= encodeT2AddrModeImm8Offset(in, opIdx+1, ctx)
	return value
}

// encodeT2AddrModeImm8Offset implements t2_addrmode_imm8_offset: the
// 9-bit add+magnitude pair without the Rn field.
func encodeT2AddrModeImm8Offset(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	tmp := in.requireImm(opIdx)
	var value uint32
	var magnitude int64
	if tmp < 0 {
		magnitude = -tmp
	} else {
		magnitude = tmp
		value |= 1 << 8
	}
	value |= uint32(magnitude) & 0xFF
	return value
}

// encodeT2AddrModeImm12Offset implements t2_addrmode_imm12_offset: the
// 13-bit add+magnitude pair analogous to the imm8 form above.
func encodeT2AddrModeImm12Offset(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	tmp := in.requireImm(opIdx)
	var value uint32
	var magnitude int64
	if tmp < 0 {
		magnitude = -tmp
	} else {
		magnitude = tmp
		value |= 1 << 12
	}
	value |= uint32(magnitude) & 0xFFF
	return value
}

// The neon*Alignment functions classify a concrete alignment value (2/4/8/16/32 bytes,
// or 0 for "no alignment specified") into the 2-bit field addrmode6 and its
// variants pack, per the three distinct tables in spec.md §4.4.
func neonStandardAlignment(align int64) uint32 {
	switch align {
	case Align2, Align4, Align8:
		return 0b01
	case Align16:
		return 0b10
	case Align32:
		return 0b11
	default:
		return 0
	}
}

func neonOneLane32Alignment(align int64) uint32 {
	switch align {
	case Align2, Align4, Align8, Align16:
		return 0
	case Align32:
		return 0b11
	default:
		return 0
	}
}

func neonDupAlignment(align int64) uint32 {
	switch align {
	case Align2, Align4, Align8:
		return 0b01
	case Align16:
		return 0b11
	default:
		return 0
	}
}

// encodeAddrMode6Address implements addrmode6's standard alignment table.
func encodeAddrMode6Address(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	align := in.requireImm(opIdx + 1)
	return regValue(ctx.Regs, rn) | neonStandardAlignment(align)<<4
}

// encodeAddrMode6OneLane32Address implements addrmode6's VLD1/VST1
// size=32 alignment table.
func encodeAddrMode6OneLane32Address(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	align := in.requireImm(opIdx + 1)
	return regValue(ctx.Regs, rn) | neonOneLane32Alignment(align)<<4
}

// encodeAddrMode6DupAddress implements addrmode6's VLD*-dup alignment
// table.
func encodeAddrMode6DupAddress(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rn := in.requireReg(opIdx)
	align := in.requireImm(opIdx + 1)
	return regValue(ctx.Regs, rn) | neonDupAlignment(align)<<4
}

// encodeAddrMode6Offset implements addrmode6's post-index offset operand:
// the zero register (no writeback offset register supplied) emits the
// reserved value 0x0D; any other register emits its own regno, used to
// distinguish "no writeback" from "register-offset writeback" from
// "immediate writeback" downstream.
func encodeAddrMode6Offset(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	if rm == asm.NilRegister {
		return 0x0D
	}
	return regValue(ctx.Regs, rm)
}
