package bytecode

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"strings"
	"unicode/utf8"
)

// ErrShortRead marks a decode failure caused by the stream ending mid
// primitive. Codec errors fail closed: no partial instruction is ever
// returned (spec.md §4.5, §7).
type ErrShortRead struct {
	Want int
	Have int
}

func (e *ErrShortRead) Error() string {
	return fmt.Sprintf("bytecode: short read, wanted %d bytes, have %d", e.Want, e.Have)
}

// ErrUnknownOpcode marks a byte that does not match any opcode in §3.3.
type ErrUnknownOpcode struct{ Byte byte }

func (e *ErrUnknownOpcode) Error() string {
	return fmt.Sprintf("bytecode: unknown opcode 0x%02X", e.Byte)
}

// ErrUsizeOverflow marks a decoded usize that does not fit this host's
// int range — relevant to 32-bit targets per §6.3's range-check note.
type ErrUsizeOverflow struct{ Value uint64 }

func (e *ErrUsizeOverflow) Error() string {
	return fmt.Sprintf("bytecode: usize %d exceeds platform int range", e.Value)
}

// Reader advances a cursor over an owned byte slice (spec.md §4.5).
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps a byte slice for decoding. The slice is not copied;
// callers must not mutate it while the Reader is in use.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Pos returns the current byte offset.
func (r *Reader) Pos() int { return r.pos }

// AtEnd reports whether the cursor is at or past the end of the stream.
func (r *Reader) AtEnd() bool { return r.pos >= len(r.data) }

func (r *Reader) take(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, &ErrShortRead{Want: n, Have: len(r.data) - r.pos}
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *Reader) ReadF32() (float32, error) {
	bits, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadF64() (float64, error) {
	bits, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

// ReadUsize decodes an 8-byte usize and range-checks it against this
// host's int width (§6.3: "Implementations targeting 32-bit hosts must
// range-check on decode").
func (r *Reader) ReadUsize() (uint64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt {
		return 0, &ErrUsizeOverflow{Value: v}
	}
	return v, nil
}

// ReadString decodes a usize byte length followed by that many bytes.
// Invalid UTF-8 is replaced rather than rejected (§6.3) — decoding a
// malformed string never fails on that account alone.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	return strings.ToValidUTF8(string(b), string(utf8.RuneError)), nil
}

// ReadChar decodes a usize UTF-8 byte length followed by those bytes,
// reported as the rune it encodes.
func (r *Reader) ReadChar() (rune, error) {
	s, err := r.ReadString()
	if err != nil {
		return 0, err
	}
	ru, _ := utf8.DecodeRuneInString(s)
	return ru, nil
}

// ReadBigInt decodes a big integer from its canonical textual form.
func (r *Reader) ReadBigInt() (*big.Int, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("bytecode: invalid big integer literal %q", s)
	}
	return v, nil
}

// ReadBigDecimal decodes a big decimal from its canonical textual form.
func (r *Reader) ReadBigDecimal() (*big.Float, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("bytecode: invalid big decimal literal %q: %w", s, err)
	}
	return v, nil
}

// ReadVecString decodes a usize count followed by that many strings.
func (r *Reader) ReadVecString() ([]string, error) {
	n, err := r.ReadUsize()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := uint64(0); i < n; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Next decodes one instruction. ok=false with err=nil means the stream is
// exhausted cleanly; err != nil means a decode failure partway through
// (design note: end-of-stream and decode failure are distinct results).
func (r *Reader) Next() (in Instruction, ok bool, err error) {
	if r.AtEnd() {
		return Instruction{}, false, nil
	}
	opByte, decErr := r.take(1)
	if decErr != nil {
		return Instruction{}, false, decErr
	}
	op := OpCode(opByte[0])
	if !op.isKnown() {
		return Instruction{}, false, &ErrUnknownOpcode{Byte: opByte[0]}
	}

	switch operandKinds[op] {
	case operandString:
		s, err := r.ReadString()
		if err != nil {
			return Instruction{}, false, err
		}
		return Instruction{Op: op, Str: s}, true, nil
	case operandUsize:
		v, err := r.ReadUsize()
		if err != nil {
			return Instruction{}, false, err
		}
		return Instruction{Op: op, Operand: v}, true, nil
	default:
		return Instruction{Op: op}, true, nil
	}
}

// ReadProgram decodes every instruction up to end-of-stream, stopping at
// the first decode failure.
func (r *Reader) ReadProgram() ([]Instruction, error) {
	var out []Instruction
	for {
		in, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, in)
	}
}
