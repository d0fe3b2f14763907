package arm

import (
	"github.com/tetratelabs/armcodec/internal/asm"
)

// RegisterClass is a register-class id, used only by ClassContains. Per
// spec.md §6.1 the register database only needs to answer class-membership
// queries for the VFP single- and double-precision classes (used by the
// register-list encoder to distinguish VLDM/VSTM from LDM/STM).
type RegisterClass uint8

const (
	ClassSPR RegisterClass = iota
	ClassDPR
)

// RegisterDatabase is the external collaborator spec.md §6.1 calls the
// "register database": regno(reg) -> small integer, and class membership
// queries for SPR/DPR. It is process-wide, read-only once initialized, and
// safe for concurrent readers (spec.md §5).
type RegisterDatabase interface {
	Regno(reg asm.Register) uint16
	ClassContains(class RegisterClass, reg asm.Register) bool
}

// isQRegister reports whether reg is one of the sixteen NEON quad
// registers, which double their logical number when encoded (spec.md §3
// invariant). Register *identity* is fixed by our own constants (consts.go)
// regardless of what the external RegisterDatabase's regno() mapping does
// with it, exactly as the teacher's arm64 package switches on its own
// REG_Q0..REG_Q15 constants in encodeRegisterOperand rather than asking an
// external collaborator "is this a Q register".
func isQRegister(reg asm.Register) bool {
	switch reg {
	case REG_Q0, REG_Q1, REG_Q2, REG_Q3, REG_Q4, REG_Q5, REG_Q6, REG_Q7,
		REG_Q8, REG_Q9, REG_Q10, REG_Q11, REG_Q12, REG_Q13, REG_Q14, REG_Q15:
		return true
	default:
		return false
	}
}

// regValue returns the encoded bit pattern for reg: its regno(), doubled if
// reg is a Q register.
func regValue(regs RegisterDatabase, reg asm.Register) uint32 {
	n := uint32(regs.Regno(reg))
	if isQRegister(reg) {
		n *= 2
	}
	return n
}
