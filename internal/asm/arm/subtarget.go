package arm

// SubtargetQuery is the external collaborator spec.md §6.1 calls the
// "subtarget query": has_feature(bit) and triple(), the minimum surface the
// emitter needs to distinguish Thumb/Thumb2 mode and Darwin-family targets.
type SubtargetQuery interface {
	HasFeature(bit FeatureBit) bool
	Triple() OsTag
}

// SubtargetState is the default, immutable-after-construction
// implementation of SubtargetQuery that new_emitter (NewEmitter) takes
// ownership of. Per spec.md §5, it is never mutated after construction and
// is safe to share across multiple emitters running on different
// goroutines, each with its own Emitter.
type SubtargetState struct {
	features uint32
	os       OsTag
}

// NewSubtarget constructs a SubtargetState from a set of feature bits and a
// target triple OS tag.
func NewSubtarget(os OsTag, features ...FeatureBit) SubtargetState {
	s := SubtargetState{os: os}
	for _, f := range features {
		s.features |= 1 << f
	}
	return s
}

func (s SubtargetState) HasFeature(bit FeatureBit) bool {
	return s.features&(1<<bit) != 0
}

func (s SubtargetState) Triple() OsTag {
	return s.os
}

// IsThumb reports whether the subtarget is assembling in Thumb mode at all
// (this includes both plain Thumb and Thumb2).
func IsThumb(s SubtargetQuery) bool {
	return s.HasFeature(FeatureThumb)
}

// IsThumb2 reports whether the subtarget is assembling in Thumb2 mode,
// which requires Thumb mode plus the Thumb2 feature bit.
func IsThumb2(s SubtargetQuery) bool {
	return IsThumb(s) && s.HasFeature(FeatureThumb2)
}

// IsDarwin reports whether the subtarget's target triple is one of the
// three Darwin-family OS tags spec.md §6.1 calls out by name.
func IsDarwin(s SubtargetQuery) bool {
	switch s.Triple() {
	case OsDarwin, OsMacOSX, OsIOS:
		return true
	default:
		return false
	}
}
