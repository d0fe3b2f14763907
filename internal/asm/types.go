// Package asm holds the primitive types shared by every architecture-specific
// encoder package (see internal/asm/arm). Keeping them here, instead of
// duplicating them per architecture, is how the teacher this module is
// based on (tetratelabs/wazero's internal/asm + internal/asm/arm64) avoids
// drift between its own amd64 and arm64 backends.
package asm

// Instruction identifies an opcode as assigned by the upstream
// tablegen-derived instruction tables. The table itself is an external
// collaborator (see arm.TemplateTable) and is consumed as opaque data here.
type Instruction int32

// Register identifies a logical register as assigned by the upstream
// register database. The zero value, NilRegister, is the sentinel for
// "operand slot not populated" (e.g. an absent post-index register, or the
// absent flags-register operand of a non-flag-setting instruction) — it is
// never itself a valid architectural register.
type Register int32

// NilRegister is the sentinel "no register" value. Naming follows the same
// convention as the teacher's asm.NilRegister.
const NilRegister Register = 0

// ConstantValue is a signed immediate operand value.
type ConstantValue = int64

// NodeOffsetInBinary is a byte offset of an encoded instruction within its
// containing section. The core emitter never needs more than the constant
// zero (see arm.Fixup), but the type exists so callers resolving fixups
// later have somewhere natural to put the real offset.
type NodeOffsetInBinary = uint64
