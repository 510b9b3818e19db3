package bytecode

import (
	"encoding/binary"
	"math"
	"math/big"
)

// Builder accumulates a flat, unframed instruction stream (spec.md §4.5).
// All multi-byte integers are written big-endian (§6.3) — a deliberate
// divergence from the little-endian convention used elsewhere in this
// codebase's ancestry, because the wire format fixes it explicitly.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Bytes returns the accumulated stream. The returned slice aliases the
// Builder's internal buffer; callers must not mutate it.
func (b *Builder) Bytes() []byte { return b.buf }

func (b *Builder) WriteBool(v bool) {
	if v {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
}

func (b *Builder) WriteU32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *Builder) WriteU64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *Builder) WriteF32(v float32) { b.WriteU32(math.Float32bits(v)) }
func (b *Builder) WriteF64(v float64) { b.WriteU64(math.Float64bits(v)) }

// WriteUsize writes an 8-byte usize/isize per §6.3.
func (b *Builder) WriteUsize(v uint64) { b.WriteU64(v) }

// WriteString writes a usize byte length followed by the UTF-8 bytes.
func (b *Builder) WriteString(s string) {
	b.WriteUsize(uint64(len(s)))
	b.buf = append(b.buf, s...)
}

// WriteChar writes a rune as its UTF-8 byte length followed by those
// bytes (§6.3: "usize UTF-8 byte length followed by that many bytes").
func (b *Builder) WriteChar(r rune) {
	b.WriteString(string(r))
}

// WriteBigInt writes a *big.Int via its canonical decimal textual form
// (§6.3: big integers decode from the `string` encoding).
func (b *Builder) WriteBigInt(v *big.Int) {
	b.WriteString(v.String())
}

// WriteBigDecimal writes a *big.Float via its canonical textual form.
func (b *Builder) WriteBigDecimal(v *big.Float) {
	b.WriteString(v.Text('g', -1))
}

// WriteVecString writes a usize count followed by each string in order
// (vec<string>, §6.3).
func (b *Builder) WriteVecString(items []string) {
	b.WriteUsize(uint64(len(items)))
	for _, s := range items {
		b.WriteString(s)
	}
}

// WriteInstruction appends one instruction: its opcode byte followed by
// whatever operand the opcode table (§3.3) specifies.
func (b *Builder) WriteInstruction(in Instruction) {
	b.buf = append(b.buf, byte(in.Op))
	switch operandKinds[in.Op] {
	case operandString:
		b.WriteString(in.Str)
	case operandUsize:
		b.WriteUsize(in.Operand)
	}
}

// WriteProgram appends a full instruction list in order — the shape
// exercised by the bytecode round-trip property (spec §8 invariant 3).
func (b *Builder) WriteProgram(instructions []Instruction) {
	for _, in := range instructions {
		b.WriteInstruction(in)
	}
}
