package arm

import (
	"fmt"

	"github.com/tetratelabs/armcodec/internal/asm"
)

// FatalError reports a programmer/internal-invariant failure: an unknown
// shift opcode, a malformed so_imm, an operand of the wrong kind for its
// encoder, an instruction size other than 2 or 4, and so on. Per spec.md
// §7, these never indicate a mistake the *caller* (the assembler/codegen
// pipeline feeding this emitter) can recover from — they indicate that the
// upstream instruction selection, the template table, or the operand
// lowering it relies on is already broken, so encoding would otherwise
// silently produce wrong object code. FatalError is always delivered via
// panic (see panicFatal), never as a returned error: there is deliberately
// no "encode and hope" path.
type FatalError struct {
	Opcode       asm.Instruction
	OperandIndex int
	Message      string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("arm: opcode %d, operand %d: %s", e.Opcode, e.OperandIndex, e.Message)
}

// panicFatal raises a FatalError identifying the opcode and operand index
// at fault, per spec.md §7's requirement that fatal conditions "abort with
// a diagnostic identifying the opcode and operand index".
func panicFatal(opcode asm.Instruction, operandIndex int, format string, args ...interface{}) {
	panic(&FatalError{
		Opcode:       opcode,
		OperandIndex: operandIndex,
		Message:      fmt.Sprintf(format, args...),
	})
}
