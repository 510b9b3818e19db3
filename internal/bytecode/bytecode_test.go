package bytecode

import (
	"bytes"
	"testing"
)

func TestRoundTripScenario(t *testing.T) {
	program := []Instruction{
		Metadata("x.ld"),
		Constant("Foo"),
		NewObject(0),
		Return(),
	}

	b := NewBuilder()
	b.WriteProgram(program)

	want := []byte{
		0x00, 0, 0, 0, 0, 0, 0, 0, 4, 'x', '.', 'l', 'd',
		0x02, 0, 0, 0, 0, 0, 0, 0, 3, 'F', 'o', 'o',
		0x05, 0, 0, 0, 0, 0, 0, 0, 0,
		0x0D,
	}
	if !bytes.Equal(b.Bytes(), want) {
		t.Fatalf("encoded bytes mismatch:\n got %v\nwant %v", b.Bytes(), want)
	}

	r := NewReader(b.Bytes())
	got, err := r.ReadProgram()
	if err != nil {
		t.Fatalf("ReadProgram: %v", err)
	}
	if len(got) != len(program) {
		t.Fatalf("got %d instructions, want %d", len(got), len(program))
	}
	for i := range program {
		if got[i] != program[i] {
			t.Errorf("instruction %d: got %+v, want %+v", i, got[i], program[i])
		}
	}
	if !r.AtEnd() {
		t.Error("reader did not reach end of stream")
	}
}

func TestReaderEndOfStreamIsNotAnError(t *testing.T) {
	r := NewReader(nil)
	_, ok, err := r.Next()
	if err != nil {
		t.Fatalf("unexpected error on empty stream: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false on empty stream")
	}
}

func TestReaderShortReadFailsClosed(t *testing.T) {
	r := NewReader([]byte{byte(OpConstant), 0, 0, 0, 0, 0, 0, 0}) // length prefix truncated
	_, _, err := r.Next()
	if err == nil {
		t.Fatal("expected short-read error")
	}
}

func TestReaderUnknownOpcode(t *testing.T) {
	r := NewReader([]byte{0xFE})
	_, _, err := r.Next()
	if err == nil {
		t.Fatal("expected unknown-opcode error")
	}
	if _, ok := err.(*ErrUnknownOpcode); !ok {
		t.Fatalf("got %T, want *ErrUnknownOpcode", err)
	}
}

func TestStringRoundTripWithInvalidUTF8(t *testing.T) {
	b := NewBuilder()
	b.WriteUsize(3)
	b.buf = append(b.buf, 0xFF, 0xFE, 'a')

	r := NewReader(b.buf)
	s, err := r.ReadString()
	if err != nil {
		t.Fatalf("ReadString should not fail on invalid UTF-8: %v", err)
	}
	if s == "" {
		t.Fatal("expected a non-empty replacement string")
	}
}
