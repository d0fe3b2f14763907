package arm

import (
	"github.com/tetratelabs/armcodec/internal/asm"
)

// ARM-specific registers.
//
// Note: naming convention follows the teacher's arm64 package
// (REG_R0, REG_F0, ...); regno() translation into the architectural bit
// pattern is the external RegisterDatabase's job (see regs.go), these
// constants only identify *which* register an operand refers to.
const (
	// General-purpose (and banked) registers.

	REG_R0 asm.Register = asm.NilRegister + 1 + iota
	REG_R1
	REG_R2
	REG_R3
	REG_R4
	REG_R5
	REG_R6
	REG_R7
	REG_R8
	REG_R9
	REG_R10
	REG_R11
	REG_R12
	REG_SP
	REG_LR
	REG_PC

	// VFP single-precision registers.

	REG_S0
	REG_S1
	REG_S2
	REG_S3
	REG_S4
	REG_S5
	REG_S6
	REG_S7
	REG_S8
	REG_S9
	REG_S10
	REG_S11
	REG_S12
	REG_S13
	REG_S14
	REG_S15
	REG_S16
	REG_S17
	REG_S18
	REG_S19
	REG_S20
	REG_S21
	REG_S22
	REG_S23
	REG_S24
	REG_S25
	REG_S26
	REG_S27
	REG_S28
	REG_S29
	REG_S30
	REG_S31

	// VFP/NEON double-precision registers.

	REG_D0
	REG_D1
	REG_D2
	REG_D3
	REG_D4
	REG_D5
	REG_D6
	REG_D7
	REG_D8
	REG_D9
	REG_D10
	REG_D11
	REG_D12
	REG_D13
	REG_D14
	REG_D15
	REG_D16
	REG_D17
	REG_D18
	REG_D19
	REG_D20
	REG_D21
	REG_D22
	REG_D23
	REG_D24
	REG_D25
	REG_D26
	REG_D27
	REG_D28
	REG_D29
	REG_D30
	REG_D31

	// NEON quad (128-bit) registers. Encoded as 2x their logical number
	// (invariant from spec.md §3); see regValue in regs.go.

	REG_Q0
	REG_Q1
	REG_Q2
	REG_Q3
	REG_Q4
	REG_Q5
	REG_Q6
	REG_Q7
	REG_Q8
	REG_Q9
	REG_Q10
	REG_Q11
	REG_Q12
	REG_Q13
	REG_Q14
	REG_Q15

	// Condition flags register ("CPSR"/"APSR_nzcv" in ARM assembly). Used as
	// the distinguished "flags register" in condition-code detection and
	// the CCOut encoder.
	REG_CPSR
)

// ConditionCode is an ARM 4-bit condition field value.
type ConditionCode int64

// Condition codes, in the order the ARM ARM lists them. AL ("always") is
// the one condition that does *not* make a branch conditional.
const (
	CondEQ ConditionCode = iota
	CondNE
	CondHS
	CondLO
	CondMI
	CondPL
	CondVS
	CondVC
	CondHI
	CondLS
	CondGE
	CondLT
	CondGT
	CondLE
	CondAL
	CondNV
)

// ShiftOpcode identifies the kind of shift packed into a so_reg operand.
type ShiftOpcode int64

const (
	ShiftLSL ShiftOpcode = iota
	ShiftLSR
	ShiftASR
	ShiftROR
	ShiftRRX
)

// AMSubMode is a load/store-multiple addressing sub-mode.
type AMSubMode int64

const (
	AMSubModeDA AMSubMode = iota
	AMSubModeIA
	AMSubModeDB
	AMSubModeIB
)

// FeatureBit is a subtarget feature flag, queried through SubtargetQuery.
type FeatureBit uint

const (
	FeatureThumb FeatureBit = iota
	FeatureThumb2
)

// OsTag distinguishes the handful of target triples the emitter cares
// about: whether Darwin's never-PC-relative movw/movt convention applies.
type OsTag uint8

const (
	OsOther OsTag = iota
	OsDarwin
	OsMacOSX
	OsIOS
)

// SentinelNegZero is the architectural encoding of "#-0": the most-negative
// 32-bit signed integer is mapped to magnitude 0 with the add bit set by
// normalizeAddSub (addrmode.go), which the addrmode_imm12,
// t2_addrmode_imm8s4 and addrmode5 encoders use.
const SentinelNegZero int64 = -1 << 31

// NEON/VFP vector arrangement alignment values, named purely for
// readability at call sites in addrmode.go.
const (
	Align2  = 2
	Align4  = 4
	Align8  = 8
	Align16 = 16
	Align32 = 32
)
