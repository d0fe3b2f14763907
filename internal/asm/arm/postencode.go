package arm

// applyPostEncoder is the ISA-mode post-encoder step of spec.md §4.7: after
// a Template's operand plan has been applied, certain NEON and VFP
// instruction words need extra bit rewrites when running in Thumb2 mode,
// where their fixed encoding differs slightly from the ARM-mode form the
// base pattern and operand plan were written against.
func applyPostEncoder(kind PostEncodeKind, word uint32, sub SubtargetQuery) uint32 {
	if !IsThumb2(sub) {
		return word
	}
	switch kind {
	case PostEncodeNEONDataProcessing:
		return postEncodeNEONDataProcessing(word)
	case PostEncodeNEONLoadStore:
		return postEncodeNEONLoadStore(word)
	case PostEncodeNEONDup:
		return postEncodeNEONDup(word)
	case PostEncodeVFP:
		return postEncodeVFP(word)
	default:
		return word
	}
}

// postEncodeNEONDataProcessing moves the ARM-mode bit 24 up to bit 28
// (it distinguishes two NEON data-processing sub-classes that the Thumb2
// encoding tells apart via the top nibble instead). Bits [31:29] and
// [27:24] are left untouched; only bit 28 is cleared and replaced.
func postEncodeNEONDataProcessing(word uint32) uint32 {
	bit24 := (word >> 24) & 1
	word &^= 0x10000000
	word |= bit24 << 28
	return word
}

// postEncodeNEONLoadStore forces bits [27:24] to 0b1001, leaving the
// cond/unconditional-prefix bits [31:28] untouched.
func postEncodeNEONLoadStore(word uint32) uint32 {
	word &^= 0x0F000000
	word |= 0x09000000
	return word
}

// postEncodeNEONDup forces bits [31:24] to 0b1110_1110 (VDUP's Thumb2
// unconditional prefix).
func postEncodeNEONDup(word uint32) uint32 {
	word &^= 0xFF000000
	word |= 0xEE000000
	return word
}

// postEncodeVFP forces bits [31:28] to 0b1110, the Thumb2 prefix for VFP
// instructions. VFP's Thumb2 encoding keeps the same top nibble as an
// unconditional ARM-mode one (cond=0b1110, "always"), so such a word is
// returned unchanged; any other value in bits [31:28] is overwritten.
func postEncodeVFP(word uint32) uint32 {
	word &^= 0xF0000000
	word |= 0xE0000000
	return word
}
