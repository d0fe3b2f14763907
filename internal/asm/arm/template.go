package arm

import (
	"github.com/tetratelabs/armcodec/internal/asm"
)

// EncodeContext bundles the per-call state every operand encoder in
// §4.1-§4.6 needs: the two read-only external collaborators (register
// database, subtarget query) plus the two pieces of mutable, caller-owned
// state an encoder may append to (the fixup list and the constant-pool
// relocation counter). Design Notes in spec.md §9 suggest passing a
// "structured operand group" instead of ad hoc sub-operand indices; this
// plays the analogous role for the collaborators threaded alongside it,
// so individual encoder functions stay single-purpose pure functions of
// (*Inst, operand index, *EncodeContext).
type EncodeContext struct {
	Regs   RegisterDatabase
	Sub    SubtargetQuery
	Fixups *[]Fixup

	// ConstantPoolRelocations is bumped once per literal-pool reference an
	// addressing-mode encoder records (spec.md §4.4 step 1). It aliases the
	// Emitter's own counter field so a single EncodeContext can be reused
	// across every operand of one instruction.
	ConstantPoolRelocations *uint64
}

func (ctx *EncodeContext) bumpConstantPoolRelocations() {
	*ctx.ConstantPoolRelocations++
}

// Form classifies how many bytes, if any, a Template's instruction emits.
type Form uint8

const (
	// FormPseudo instructions produce no bytes and no fixups.
	FormPseudo Form = iota
	FormSize2
	FormSize4
)

// EncoderID is a closed enumeration over every operand-encoder function in
// §4.1-§4.6, resolved by the Instruction Template Applier from the
// Template's operand-plan. Using a closed enum (rather than dispatching by
// name, as the upstream tablegen'd source does) lets the dispatch table
// encoderTable be a fixed-size array of numEncoders entries; an id with no
// entry is caught at run time by applyTemplate.
type EncoderID uint8

const (
	EncGPRRegister EncoderID = iota
	EncImmediate
	EncFPImmediate

	EncSOImm
	EncT2SOImm
	EncSORegReg
	EncSORegImm
	EncT2SOReg

	EncAddrModeImm12
	EncT2AddrModeImm8s4
	EncAddrMode5
	EncLdStSOReg
	EncAddrMode2
	EncAddrMode2Offset
	EncPostIdxReg
	EncAddrMode3
	EncAddrMode3Offset
	EncThumbAddrModeSP
	EncThumbAddrModeIS
	EncThumbAddrModeRR
	EncThumbAddrModePC
	EncT2AddrModeSOReg
	EncT2AddrModeImm8
	EncT2AddrModeImm8Offset
	EncT2AddrModeImm12Offset
	EncAddrMode6Address
	EncAddrMode6OneLane32Address
	EncAddrMode6DupAddress
	EncAddrMode6Offset

	EncHiLo16Imm

	EncBitfieldInvertedMask
	EncMsb
	EncNEONVcvtImm32
	EncShiftRight8Imm
	EncShiftRight16Imm
	EncShiftRight32Imm
	EncShiftRight64Imm
	EncCCOut
	EncLdStmMode
	EncRegisterList

	EncARMBranchTarget24
	EncThumbBLTarget
	EncThumbBLXTarget
	EncThumbBRTarget
	EncThumbBccTarget
	EncThumbCBTarget
	EncThumbCPTarget
	EncT2UncondBranchTarget
	EncAdrLabel
	EncT2AdrLabel
	EncThumbAdrLabel

	numEncoders
)

// PostEncodeKind names the ISA-mode post-encoder (if any) a Template
// requests after its operand plan has been applied (spec.md §4.7).
type PostEncodeKind uint8

const (
	PostEncodeNone PostEncodeKind = iota
	PostEncodeNEONDataProcessing
	PostEncodeNEONLoadStore
	PostEncodeNEONDup
	PostEncodeVFP
)

// OperandPlan is one entry of a Template's operand-plan: which encoder to
// invoke, starting at which sub-operand index, and which bit-range of the
// final word its result is shifted into.
type OperandPlan struct {
	OperandIndex int
	Encoder      EncoderID
	BitOffset    uint8
	BitWidth     uint8
}

// Template is the external collaborator spec.md §6.1 calls "Template
// table": opcode -> fixed bits + operand plan + byte size. Loaded once,
// process-wide, immutable, read-only thereafter (spec.md §5).
type Template struct {
	BasePattern uint32
	Form        Form
	Size        uint8
	Plan        []OperandPlan
	PostEncode  PostEncodeKind
}

// TemplateTable looks up the Template for an opcode. A miss is always a
// fatal internal-invariant failure: it means the instruction selector
// produced an opcode the table doesn't know, which can never be
// recovered from at this layer (spec.md §7).
type TemplateTable interface {
	TemplateFor(opcode asm.Instruction) (Template, bool)
}

// mask is the canonical 1s mask of width bits, width in [0, 32].
func mask(width uint8) uint32 {
	if width >= 32 {
		return ^uint32(0)
	}
	return (uint32(1) << width) - 1
}

// applyTemplate composes every operand-plan entry's encoder output into the
// Template's fixed base pattern, then runs any requested ISA-mode
// post-encoder. It is the "Instruction Template Applier" of spec.md §2.3.
func applyTemplate(in *Inst, tmpl Template, ctx *EncodeContext) uint32 {
	word := tmpl.BasePattern
	for _, p := range tmpl.Plan {
		fn := encoderTable[p.Encoder]
		if fn == nil {
			panicFatal(in.Opcode, p.OperandIndex, "no operand encoder registered for encoder id %d", p.Encoder)
		}
		v := fn(in, p.OperandIndex, ctx)
		word |= (v & mask(p.BitWidth)) << p.BitOffset
	}
	return applyPostEncoder(tmpl.PostEncode, word, ctx.Sub)
}

// encoderFunc is the uniform shape every §4.1-§4.6 encoder implements, so
// dispatch from an OperandPlan's EncoderID is an O(1) array lookup (spec.md
// §9 Design Notes: "an array indexed by encoder-id holding function
// values").
type encoderFunc func(in *Inst, opIdx int, ctx *EncodeContext) uint32

var encoderTable = [numEncoders]encoderFunc{
	EncGPRRegister:  encodeOperand,
	EncImmediate:    encodeOperand,
	EncFPImmediate:  encodeOperand,

	EncSOImm:    encodeSOImm,
	EncT2SOImm:  encodeT2SOImm,
	EncSORegReg: encodeSORegReg,
	EncSORegImm: encodeSORegImm,
	EncT2SOReg:  encodeT2SOReg,

	EncAddrModeImm12:         encodeAddrModeImm12,
	EncT2AddrModeImm8s4:      encodeT2AddrModeImm8s4,
	EncAddrMode5:             encodeAddrMode5,
	EncLdStSOReg:             encodeLdStSOReg,
	EncAddrMode2:             encodeAddrMode2,
	EncAddrMode2Offset:       encodeAddrMode2Offset,
	EncPostIdxReg:            encodePostIdxReg,
	EncAddrMode3:             encodeAddrMode3,
	EncAddrMode3Offset:       encodeAddrMode3Offset,
	EncThumbAddrModeSP:       encodeThumbAddrModeSP,
	EncThumbAddrModeIS:       encodeThumbAddrModeIS,
	EncThumbAddrModeRR:       encodeThumbAddrModeRR,
	EncThumbAddrModePC:       encodeThumbAddrModePC,
	EncT2AddrModeSOReg:       encodeT2AddrModeSOReg,
	EncT2AddrModeImm8:        encodeT2AddrModeImm8,
	EncT2AddrModeImm8Offset:  encodeT2AddrModeImm8Offset,
	EncT2AddrModeImm12Offset: encodeT2AddrModeImm12Offset,
	EncAddrMode6Address:          encodeAddrMode6Address,
	EncAddrMode6OneLane32Address: encodeAddrMode6OneLane32Address,
	EncAddrMode6DupAddress:       encodeAddrMode6DupAddress,
	EncAddrMode6Offset:           encodeAddrMode6Offset,

	EncHiLo16Imm: encodeHiLo16Imm,

	EncBitfieldInvertedMask: encodeBitfieldInvertedMask,
	EncMsb:                  encodeMsb,
	EncNEONVcvtImm32:        encodeNEONVcvtImm32,
	EncShiftRight8Imm:       encodeShiftRight8Imm,
	EncShiftRight16Imm:      encodeShiftRight16Imm,
	EncShiftRight32Imm:      encodeShiftRight32Imm,
	EncShiftRight64Imm:      encodeShiftRight64Imm,
	EncCCOut:                encodeCCOut,
	EncLdStmMode:            encodeLdStmMode,
	EncRegisterList:         encodeRegisterList,

	EncARMBranchTarget24:    encodeARMBranchTarget24,
	EncThumbBLTarget:        encodeThumbBLTarget,
	EncThumbBLXTarget:       encodeThumbBLXTarget,
	EncThumbBRTarget:        encodeThumbBRTarget,
	EncThumbBccTarget:       encodeThumbBccTarget,
	EncThumbCBTarget:        encodeThumbCBTarget,
	EncThumbCPTarget:        encodeThumbCPTarget,
	EncT2UncondBranchTarget: encodeT2UncondBranchTarget,
	EncAdrLabel:             encodeAdrLabel,
	EncT2AdrLabel:           encodeT2AdrLabel,
	EncThumbAdrLabel:        encodeThumbAdrLabel,
}
