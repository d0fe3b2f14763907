package arm

import "github.com/tetratelabs/armcodec/internal/asm"

// ARM/Thumb/VFP/NEON mnemonics this package ships a Template for. Naming
// convention follows the ARM assembler mnemonics themselves, the same way
// the teacher's arm64 package names its own opcode constants after the Go
// assembler's mnemonics.
const (
	NOP asm.Instruction = iota
	ADD
	SUB
	LDR
	STR
	B
	BW    // Thumb2 unconditional wide branch (B.W)
	BL
	BLX
	BCC
	CBZ
	MOVW
	MOVT
	LDM
	STM
	VLDR
	VSTR
	VLD1
	VST1
	VMOV
)
