// Package bytecode implements the wire codec for the bytecode instruction
// stream: a flat sequence of instructions, each an opcode byte followed by
// its operands (strings length-prefixed), with no outer framing (spec.md
// §3.3, §6.3). Builder appends to a growing byte vector;
// Reader advances a cursor over an owned byte slice. There is no execution
// engine here — only the symmetric encode/decode pair.
package bytecode

import "fmt"

// OpCode identifies one instruction kind. Values are fixed by the wire
// format, not reassignable for Go's enum convenience.
type OpCode byte

const (
	OpMetadata     OpCode = 0x00
	OpNop          OpCode = 0x01
	OpConstant     OpCode = 0x02
	OpLoadConst    OpCode = 0x03
	OpGetObject    OpCode = 0x04
	OpNewObject    OpCode = 0x05
	OpLoad         OpCode = 0x06
	OpStore        OpCode = 0x07
	OpLoadLocal    OpCode = 0x08
	OpPop          OpCode = 0x09
	OpDup          OpCode = 0x0A
	OpSwap         OpCode = 0x0B
	OpInvoke       OpCode = 0x0C
	OpReturn       OpCode = 0x0D
	OpJump         OpCode = 0x0E
	OpJumpIfTrue   OpCode = 0x0F
	OpJumpIfFalse  OpCode = 0x10
	OpGetField     OpCode = 0x11
	OpSetField     OpCode = 0x12
	OpCheckCast    OpCode = 0x13
	OpInstanceOf   OpCode = 0x14
	OpThrow        OpCode = 0x15
)

// mnemonics maps each opcode to its spec name, used by String() and the
// disassembler.
var mnemonics = map[OpCode]string{
	OpMetadata:    "Metadata",
	OpNop:         "Nop",
	OpConstant:    "Constant",
	OpLoadConst:   "LoadConst",
	OpGetObject:   "GetObject",
	OpNewObject:   "NewObject",
	OpLoad:        "Load",
	OpStore:       "Store",
	OpLoadLocal:   "LoadLocal",
	OpPop:         "Pop",
	OpDup:         "Dup",
	OpSwap:        "Swap",
	OpInvoke:      "Invoke",
	OpReturn:      "Return",
	OpJump:        "Jump",
	OpJumpIfTrue:  "JumpIfTrue",
	OpJumpIfFalse: "JumpIfFalse",
	OpGetField:    "GetField",
	OpSetField:    "SetField",
	OpCheckCast:   "CheckCast",
	OpInstanceOf:  "InstanceOf",
	OpThrow:       "Throw",
}

func (op OpCode) String() string {
	if name, ok := mnemonics[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(0x%02X)", byte(op))
}

// operandKind classifies what, if anything, follows an opcode byte.
type operandKind int

const (
	operandNone operandKind = iota
	operandString
	operandUsize
)

var operandKinds = map[OpCode]operandKind{
	OpMetadata:    operandString,
	OpNop:         operandNone,
	OpConstant:    operandString,
	OpLoadConst:   operandUsize,
	OpGetObject:   operandUsize,
	OpNewObject:   operandUsize,
	OpLoad:        operandNone,
	OpStore:       operandUsize,
	OpLoadLocal:   operandUsize,
	OpPop:         operandNone,
	OpDup:         operandNone,
	OpSwap:        operandNone,
	OpInvoke:      operandUsize,
	OpReturn:      operandNone,
	OpJump:        operandUsize,
	OpJumpIfTrue:  operandUsize,
	OpJumpIfFalse: operandUsize,
	OpGetField:    operandUsize,
	OpSetField:    operandUsize,
	OpCheckCast:   operandUsize,
	OpInstanceOf:  operandUsize,
	OpThrow:       operandNone,
}

func (op OpCode) isKnown() bool {
	_, ok := operandKinds[op]
	return ok
}
