package arm

import "github.com/tetratelabs/armcodec/internal/asm"

// StaticTemplateTable is the default TemplateTable implementation: an
// immutable map built once at construction and never mutated afterward,
// matching spec.md §5's "process-wide constant, loaded once" lifecycle for
// the Template entity.
type StaticTemplateTable struct {
	templates map[asm.Instruction]Template
}

// NewStaticTemplateTable builds a StaticTemplateTable from a caller-supplied
// opcode -> Template map. The map is copied so the caller's own map may be
// mutated or discarded afterward without affecting the table.
func NewStaticTemplateTable(templates map[asm.Instruction]Template) *StaticTemplateTable {
	t := &StaticTemplateTable{templates: make(map[asm.Instruction]Template, len(templates))}
	for op, tmpl := range templates {
		t.templates[op] = tmpl
	}
	return t
}

func (t *StaticTemplateTable) TemplateFor(opcode asm.Instruction) (Template, bool) {
	tmpl, ok := t.templates[opcode]
	return tmpl, ok
}

// DefaultTemplates returns the Template set this package ships for its own
// tests and for cmd/armcdump's demonstration fixtures: one Template per
// opcode in opcodes.go, covering a representative slice of each addressing
// mode family in spec.md §4.4 rather than the full ARM ISA (which lives in
// the external tablegen-derived table spec.md §6.1 treats as out of scope).
func DefaultTemplates() map[asm.Instruction]Template {
	return map[asm.Instruction]Template{
		// ADD (immediate), encoding A1: cond=1110, 00,I=1,opcode=0100,S=0,
		// Rn[19:16], Rd[15:12], so_imm[11:0].
		ADD: {
			BasePattern: 0xE2800000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 1, Encoder: EncGPRRegister, BitOffset: 16, BitWidth: 4},
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 2, Encoder: EncSOImm, BitOffset: 0, BitWidth: 12},
			},
		},
		// SUB (immediate), encoding A1: same shape as ADD with opcode=0010.
		SUB: {
			BasePattern: 0xE2400000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 1, Encoder: EncGPRRegister, BitOffset: 16, BitWidth: 4},
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 2, Encoder: EncSOImm, BitOffset: 0, BitWidth: 12},
			},
		},
		// LDR (immediate), encoding A1: cond,01,I=0,P=1,U,0,W=0,L=1,
		// Rn[19:16], Rd[15:12], addrmode_imm12.
		LDR: {
			BasePattern: 0xE5900000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrModeImm12, BitOffset: 0, BitWidth: 18},
			},
		},
		STR: {
			BasePattern: 0xE5800000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrModeImm12, BitOffset: 0, BitWidth: 18},
			},
		},
		// B (ARM unconditional/conditional 24-bit branch), encoding A1:
		// cond, 101, L=0, imm24.
		B: {
			BasePattern: 0xEA000000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncARMBranchTarget24, BitOffset: 0, BitWidth: 24},
			},
		},
		// B.W (Thumb2 unconditional wide branch), encoding T4:
		// 11110 S imm10, 10 J1 1 J2 imm11.
		BW: {
			BasePattern: 0xF0009000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncT2UncondBranchTarget, BitOffset: 0, BitWidth: 32},
			},
		},
		BL: {
			BasePattern: 0xF000D000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncThumbBLTarget, BitOffset: 0, BitWidth: 32},
			},
		},
		BLX: {
			BasePattern: 0xF000C000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncThumbBLXTarget, BitOffset: 0, BitWidth: 32},
			},
		},
		BCC: {
			BasePattern: 0x0000D000,
			Form:        FormSize2,
			Size:        2,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncThumbBccTarget, BitOffset: 0, BitWidth: 8},
			},
		},
		CBZ: {
			BasePattern: 0x0000B100,
			Form:        FormSize2,
			Size:        2,
			Plan: []OperandPlan{
				{OperandIndex: 1, Encoder: EncThumbCBTarget, BitOffset: 0, BitWidth: 7},
			},
		},
		// MOVW (immediate), encoding A2: cond,0011,0,000, imm4[19:16],
		// Rd[15:12], imm12[11:0].
		MOVW: {
			BasePattern: 0xE3000000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncHiLo16Imm, BitOffset: 0, BitWidth: 16},
			},
		},
		MOVT: {
			BasePattern: 0xE3400000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncHiLo16Imm, BitOffset: 0, BitWidth: 16},
			},
		},
		// LDM, encoding A1: cond,100, P U S W L=1, Rn[19:16], register_list.
		LDM: {
			BasePattern: 0xE8900000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 16, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncRegisterList, BitOffset: 0, BitWidth: 16},
			},
		},
		STM: {
			BasePattern: 0xE8800000,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 16, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncRegisterList, BitOffset: 0, BitWidth: 16},
			},
		},
		// VLDR, encoding: cond,1101,U,D,01,Rn[19:16],Vd[15:12],101x,imm8.
		VLDR: {
			BasePattern: 0xED100A00,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrMode5, BitOffset: 0, BitWidth: 17},
			},
			PostEncode: PostEncodeVFP,
		},
		VSTR: {
			BasePattern: 0xED000A00,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrMode5, BitOffset: 0, BitWidth: 17},
			},
			PostEncode: PostEncodeVFP,
		},
		// VLD1 (one lane, 32-bit), encoding: cond,1111,0100,1,D,10, Rn[19:16],
		// Vd[15:12], size=10,align[5:4],Rm[3:0].
		VLD1: {
			BasePattern: 0xF4A00800,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrMode6OneLane32Address, BitOffset: 0, BitWidth: 8},
			},
			PostEncode: PostEncodeNEONLoadStore,
		},
		VST1: {
			BasePattern: 0xF4000800,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncAddrMode6OneLane32Address, BitOffset: 0, BitWidth: 8},
			},
			PostEncode: PostEncodeNEONLoadStore,
		},
		VMOV: {
			BasePattern: 0xEE000A10,
			Form:        FormSize4,
			Size:        4,
			Plan: []OperandPlan{
				{OperandIndex: 0, Encoder: EncGPRRegister, BitOffset: 16, BitWidth: 4},
				{OperandIndex: 1, Encoder: EncGPRRegister, BitOffset: 12, BitWidth: 4},
			},
			PostEncode: PostEncodeVFP,
		},
		NOP: {
			Form: FormPseudo,
		},
	}
}
