package arm

import "github.com/tetratelabs/armcodec/internal/asm"

// FixupKind identifies the relocation semantic a deferred operand carries.
// Names follow the ARM backend's own fixup kind names (spec.md §3) so a
// reader cross-referencing the ARM ARM or an object-file dump recognizes
// them immediately.
type FixupKind int32

const (
	FixupNone FixupKind = iota

	FixupARMCondBranch
	FixupARMUncondBranch
	FixupT2CondBranch
	FixupT2UncondBranch

	FixupARMThumbBL
	FixupARMThumbBLX
	FixupARMThumbBR
	FixupARMThumbBcc
	FixupARMThumbCB
	FixupARMThumbCP

	FixupARMAdrPCRel12
	FixupT2AdrPCRel12
	FixupThumbAdrPCRel10

	FixupARMLdStPCRel12
	FixupT2LdStPCRel12

	FixupARMPCRel10
	FixupT2PCRel10

	FixupARMMovwLo16
	FixupARMMovwLo16PCRel
	FixupARMMovtHi16
	FixupARMMovtHi16PCRel
	FixupT2MovwLo16
	FixupT2MovwLo16PCRel
	FixupT2MovtHi16
	FixupT2MovtHi16PCRel
)

// Fixup is a deferred computation for one operand whose final value depends
// on section/symbol layout not yet known. Offset is always 0 at this
// layer (spec.md §3): the caller resolves it relative to the instruction's
// first byte once OffsetInBinary is known.
type Fixup struct {
	Offset asm.NodeOffsetInBinary
	Expr   Expression
	Kind   FixupKind
}

// recordFixup appends a Fixup for expr with the given kind to ctx's
// caller-owned fixup list and returns the zero placeholder value — the
// generic shape of every "Fixup Recorder" call site in spec.md §4.2-§4.5.
func recordFixup(ctx *EncodeContext, kind FixupKind, expr Expression) uint32 {
	*ctx.Fixups = append(*ctx.Fixups, Fixup{Offset: 0, Expr: expr, Kind: kind})
	return 0
}
