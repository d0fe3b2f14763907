package arm

// The so_reg_imm / t2_so_reg sub-operand pair packs its shift the same way
// throughout this package: an Immediate whose low 3 bits hold a
// ShiftOpcode and whose remaining bits hold the shift amount. Upstream
// (instruction lowering) is responsible for building operands in this
// shape; it is the documented contract between this emitter and its
// caller, standing in for the external ARM_AM helpers the original
// ARMMCCodeEmitter relies on (getSORegShOp / getSORegOffset).
const shiftOpcodeBits = 3

func packShift(opc ShiftOpcode, amount uint32) int64 {
	return int64(amount)<<shiftOpcodeBits | int64(opc)
}

func unpackShift(v int64) (opc ShiftOpcode, amount uint32) {
	return ShiftOpcode(v & (1<<shiftOpcodeBits - 1)), uint32(v >> shiftOpcodeBits)
}

// encodeSOImm implements spec.md §4.3's "so_imm": the 12-bit ARM
// modified-immediate, packed by upstream as rotation (bits [11:8], meaning
// "rotate right by 2x this value") and an 8-bit value (bits [7:0]); this
// encoder's job is only to mask and repack those two sub-fields into the
// instruction's so_imm field.
func encodeSOImm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	v := uint32(in.requireImm(opIdx))
	rot := (v >> 8) & 0xF
	imm8 := v & 0xFF
	return (rot << 8) | imm8
}

// encodeT2SOImm implements spec.md §4.3's "t2_so_imm": the Thumb2
// modified-immediate is already canonical by the time it reaches this
// emitter, so the encoder only validates it fits in 12 bits and returns it.
func encodeT2SOImm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	v := uint32(in.requireImm(opIdx))
	if v&^uint32(0xFFF) != 0 {
		panicFatal(in.Opcode, opIdx, "t2_so_imm: value %#x does not fit in 12 bits", v)
	}
	return v
}

// encodeSORegReg implements the register-shifted-register flavor of
// so_reg: sub-operands are [Rm, Rs, shift-type]. Layout: {11:8}=Rs,
// {7}=0, {6:5}=shift-type, {4}=1, {3:0}=Rm. Rs absent (the zero register)
// means this is really an immediate shift, which uses encodeSORegImm
// instead — so SBits is 0 only when Rs is absent; with Rs present, LSL
// encodes as 0x1.
func encodeSORegReg(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	rs := in.requireReg(opIdx + 1)
	shiftType := ShiftOpcode(in.requireImm(opIdx + 2))

	binary := regValue(ctx.Regs, rm)

	var sbits uint32
	if rs != 0 {
		switch shiftType {
		case ShiftLSL:
			sbits = 0x1
		case ShiftLSR:
			sbits = 0x3
		case ShiftASR:
			sbits = 0x5
		case ShiftROR:
			sbits = 0x7
		default:
			panicFatal(in.Opcode, opIdx+2, "so_reg_reg: unknown shift opcode %d", shiftType)
		}
	}
	binary |= sbits << 4
	binary |= regValue(ctx.Regs, rs) << 8
	return binary
}

// encodeSORegImm implements the immediate-shifted-register flavor of
// so_reg: sub-operands are [Rm, packed shift-type+amount]. Layout:
// {11:7}=imm5, {6:5}=shift-type, {4}=0, {3:0}=Rm. RRX is the pseudo-shift
// "ROR #0" and encodes as 0x60 | Rm (spec.md §4.3).
func encodeSORegImm(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	opc, amount := unpackShift(in.requireImm(opIdx + 1))

	binary := regValue(ctx.Regs, rm)
	if opc == ShiftRRX {
		return binary | 0x60
	}

	var sbits uint32
	switch opc {
	case ShiftLSL:
		sbits = 0x0
	case ShiftLSR:
		sbits = 0x2
	case ShiftASR:
		sbits = 0x4
	case ShiftROR:
		sbits = 0x6
	default:
		panicFatal(in.Opcode, opIdx+1, "so_reg_imm: unknown shift opcode %d", opc)
	}
	binary |= sbits << 4
	binary |= amount << 7
	return binary
}

// encodeT2SOReg is the Thumb2 analogue of encodeSORegImm. Notably it has no
// RRX case at all (SPEC_FULL.md, Supplemented Features): the original
// ARMMCCodeEmitter's switch has no `rrx` arm, so an RRX shift here falls
// straight into the fatal "unknown shift opcode" path rather than being
// accepted, and this emitter preserves that exactly rather than silently
// widening Thumb2's supported shift set.
func encodeT2SOReg(in *Inst, opIdx int, ctx *EncodeContext) uint32 {
	rm := in.requireReg(opIdx)
	opc, amount := unpackShift(in.requireImm(opIdx + 1))

	binary := regValue(ctx.Regs, rm)

	var sbits uint32
	switch opc {
	case ShiftLSL:
		sbits = 0x0
	case ShiftLSR:
		sbits = 0x2
	case ShiftASR:
		sbits = 0x4
	case ShiftROR:
		sbits = 0x6
	default:
		panicFatal(in.Opcode, opIdx+1, "t2_so_reg: unsupported shift opcode %d", opc)
	}
	binary |= sbits << 4
	return binary | amount<<7
}
