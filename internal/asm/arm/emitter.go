package arm

import "github.com/sirupsen/logrus"

// Emitter is spec.md §6.3's construction target: the top-level entry point
// that owns the three read-only external collaborators (template table,
// register database, subtarget state) plus the two monotonically
// increasing statistics counters §6.2 requires. It carries no other
// mutable state — the fixup list and byte sink are supplied per call,
// exactly as spec.md §5 requires ("the fixup list and output byte sink"
// are the only mutated state, and both are caller-owned).
type Emitter struct {
	templates TemplateTable
	regs      RegisterDatabase
	sub       SubtargetQuery

	instructionsEmitted     uint64
	constantPoolRelocations uint64

	// trace, when non-nil, receives one structured log entry per emitted
	// instruction. Off by default; cmd/armcdump turns it on. Never consulted
	// in the encoder functions themselves (spec.md's ambient-stack note:
	// logging never sits on the hot per-operand path).
	trace *logrus.Logger
}

// NewEmitter implements spec.md §6.3's `new_emitter`: the emitter takes
// ownership of its three collaborators and starts both counters at zero.
// Apart from the optional trace logger (SetTraceLogger), there is no other
// configuration surface at this layer.
func NewEmitter(templates TemplateTable, regs RegisterDatabase, sub SubtargetQuery) *Emitter {
	return &Emitter{templates: templates, regs: regs, sub: sub}
}

// SetTraceLogger attaches an optional structured logger that receives one
// entry per EncodeInstruction call. Passing nil disables tracing.
func (e *Emitter) SetTraceLogger(l *logrus.Logger) {
	e.trace = l
}

// InstructionsEmitted returns the running count of non-pseudo instructions
// this Emitter has encoded.
func (e *Emitter) InstructionsEmitted() uint64 {
	return e.instructionsEmitted
}

// ConstantPoolRelocations returns the running count of literal-pool
// references this Emitter's addressing-mode encoders have recorded.
func (e *Emitter) ConstantPoolRelocations() uint64 {
	return e.constantPoolRelocations
}

// EncodeInstruction is spec.md §4.8's "encode_instruction", the Emission
// Driver: it looks up in's template, classifies pseudo vs real and 2- vs
// 4-byte forms, applies the template (which internally runs per-operand
// encoders and post-encoders), and writes the result to sink in the
// correct endianness and halfword order. Fixups discovered while encoding
// in's operands are appended to fixups, which the caller owns.
func (e *Emitter) EncodeInstruction(in *Inst, fixups *[]Fixup, sink ByteSink) {
	tmpl, ok := e.templates.TemplateFor(in.Opcode)
	if !ok {
		panicFatal(in.Opcode, -1, "no template registered for opcode %d", in.Opcode)
	}
	if tmpl.Form == FormPseudo {
		return
	}
	if tmpl.Size != 2 && tmpl.Size != 4 {
		panicFatal(in.Opcode, -1, "template declares instruction size %d, must be 2 or 4", tmpl.Size)
	}

	ctx := &EncodeContext{
		Regs:                    e.regs,
		Sub:                     e.sub,
		Fixups:                  fixups,
		ConstantPoolRelocations: &e.constantPoolRelocations,
	}
	word := applyTemplate(in, tmpl, ctx)

	if IsThumb(e.sub) && tmpl.Size == 4 {
		writeLEHalfword(sink, uint16(word>>16))
		writeLEHalfword(sink, uint16(word))
	} else {
		for i := uint8(0); i < tmpl.Size; i++ {
			mustWriteByte(sink, byte(word>>(8*i)))
		}
	}

	e.instructionsEmitted++
	if e.trace != nil {
		e.trace.WithFields(logrus.Fields{
			"opcode": in.Opcode,
			"size":   tmpl.Size,
		}).Trace("encoded instruction")
	}
}

func writeLEHalfword(sink ByteSink, h uint16) {
	mustWriteByte(sink, byte(h))
	mustWriteByte(sink, byte(h>>8))
}

// mustWriteByte treats a sink write failure as fatal: spec.md's emission
// driver has no recoverable-error return path (§7), and a full output
// buffer/closed writer is exactly the kind of upstream bug that should
// never be silently swallowed.
func mustWriteByte(sink ByteSink, b byte) {
	if err := sink.WriteByte(b); err != nil {
		panic(err)
	}
}
