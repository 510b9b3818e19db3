package bytecode

import (
	"fmt"
	"io"
)

// Disassembler renders an instruction stream as human-readable text: a
// `== name ==` header, then one `offset  Mnemonic operand` line per
// instruction, with the byte offset as four zero-padded digits.
type Disassembler struct {
	writer io.Writer
}

// NewDisassembler returns a Disassembler writing to w.
func NewDisassembler(w io.Writer) *Disassembler { return &Disassembler{writer: w} }

// Disassemble decodes data in full and prints each instruction, stopping
// at the first decode failure (matching Reader's fail-fast contract).
func (d *Disassembler) Disassemble(name string, data []byte) error {
	fmt.Fprintf(d.writer, "== %s ==\n", name)
	r := NewReader(data)
	for {
		offset := r.Pos()
		in, ok, err := r.Next()
		if err != nil {
			return fmt.Errorf("disassemble at byte %d: %w", offset, err)
		}
		if !ok {
			return nil
		}
		fmt.Fprintf(d.writer, "%04d  %s\n", offset, in.String())
	}
}
