package arm

// ByteSink is the external collaborator spec.md §6.2 calls "a sink that
// supports single-byte appends" — the output object file / section buffer
// the emitter writes its encoded bytes into.
type ByteSink interface {
	WriteByte(b byte) error
}

// ByteSliceSink is a ByteSink backed by an in-memory slice, the default
// target for tests and for cmd/armcdump's demonstration output.
type ByteSliceSink struct {
	bytes []byte
}

func (s *ByteSliceSink) WriteByte(b byte) error {
	s.bytes = append(s.bytes, b)
	return nil
}

// NewByteSliceSink returns a ByteSink that accumulates into an in-memory
// byte slice, retrievable via Bytes.
func NewByteSliceSink() *ByteSliceSink {
	return &ByteSliceSink{}
}

func (s *ByteSliceSink) Bytes() []byte {
	return s.bytes
}
