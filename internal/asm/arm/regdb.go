package arm

import "github.com/tetratelabs/armcodec/internal/asm"

// StaticRegisterDatabase is the default RegisterDatabase implementation:
// regno() is computed by range-checking reg against this package's own
// REG_* constant blocks and subtracting the block's base, the same idiom
// the teacher's arm64 package uses in registerBits/intRegisterBits/
// vectorRegisterBits (range check against a base constant, subtract).
type StaticRegisterDatabase struct{}

func isGPR(r asm.Register) bool  { return REG_R0 <= r && r <= REG_PC }
func isSPR(r asm.Register) bool  { return REG_S0 <= r && r <= REG_S31 }
func isDPR(r asm.Register) bool  { return REG_D0 <= r && r <= REG_D31 }
func isQPR(r asm.Register) bool  { return REG_Q0 <= r && r <= REG_Q15 }

// Regno implements RegisterDatabase. It returns the architectural register
// number within reg's class; Q-register doubling is applied by regValue in
// regs.go, not here — Regno always answers with the *logical* number.
func (StaticRegisterDatabase) Regno(reg asm.Register) uint16 {
	switch {
	case isGPR(reg):
		return uint16(reg - REG_R0)
	case isSPR(reg):
		return uint16(reg - REG_S0)
	case isDPR(reg):
		return uint16(reg - REG_D0)
	case isQPR(reg):
		return uint16(reg - REG_Q0)
	case reg == REG_CPSR:
		return 0
	default:
		panicFatal(0, -1, "regno: register id %d is not a known ARM register", reg)
		return 0
	}
}

// ClassContains implements RegisterDatabase for the two NEON/VFP classes
// the register-list encoder (numeric.go) needs to distinguish from plain
// GPR lists.
func (StaticRegisterDatabase) ClassContains(class RegisterClass, reg asm.Register) bool {
	switch class {
	case ClassSPR:
		return isSPR(reg)
	case ClassDPR:
		return isDPR(reg) || isQPR(reg)
	default:
		return false
	}
}
