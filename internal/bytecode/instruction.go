package bytecode

import "fmt"

// Instruction is a flat tagged union over the opcode table in spec.md
// §3.3 (design note: "prefer tagged sum types with exhaustive pattern
// matching" over a trait-object hierarchy). Str holds the operand for
// string-carrying opcodes (Metadata, Constant); Operand holds the usize
// operand for every other operand-carrying opcode. Unused fields are zero.
type Instruction struct {
	Op      OpCode
	Str     string
	Operand uint64
}

func Metadata(filename string) Instruction { return Instruction{Op: OpMetadata, Str: filename} }
func Nop() Instruction                     { return Instruction{Op: OpNop} }
func Constant(value string) Instruction    { return Instruction{Op: OpConstant, Str: value} }
func LoadConst(index uint64) Instruction   { return Instruction{Op: OpLoadConst, Operand: index} }
func GetObject(index uint64) Instruction   { return Instruction{Op: OpGetObject, Operand: index} }
func NewObject(index uint64) Instruction   { return Instruction{Op: OpNewObject, Operand: index} }
func Load() Instruction                    { return Instruction{Op: OpLoad} }
func Store(slot uint64) Instruction        { return Instruction{Op: OpStore, Operand: slot} }
func LoadLocal(slot uint64) Instruction    { return Instruction{Op: OpLoadLocal, Operand: slot} }
func Pop() Instruction                     { return Instruction{Op: OpPop} }
func Dup() Instruction                     { return Instruction{Op: OpDup} }
func Swap() Instruction                    { return Instruction{Op: OpSwap} }
func Invoke(index uint64) Instruction      { return Instruction{Op: OpInvoke, Operand: index} }
func Return() Instruction                  { return Instruction{Op: OpReturn} }
func Jump(target uint64) Instruction       { return Instruction{Op: OpJump, Operand: target} }
func JumpIfTrue(target uint64) Instruction { return Instruction{Op: OpJumpIfTrue, Operand: target} }
func JumpIfFalse(target uint64) Instruction {
	return Instruction{Op: OpJumpIfFalse, Operand: target}
}
func GetField(index uint64) Instruction   { return Instruction{Op: OpGetField, Operand: index} }
func SetField(index uint64) Instruction   { return Instruction{Op: OpSetField, Operand: index} }
func CheckCast(index uint64) Instruction  { return Instruction{Op: OpCheckCast, Operand: index} }
func InstanceOf(index uint64) Instruction { return Instruction{Op: OpInstanceOf, Operand: index} }
func Throw() Instruction                  { return Instruction{Op: OpThrow} }

// String renders an instruction the way the disassembler does, minus
// offsets: the mnemonic, then a space and the operand if there is one
// (strings quoted).
func (in Instruction) String() string {
	switch operandKinds[in.Op] {
	case operandString:
		return fmt.Sprintf("%s %q", in.Op, in.Str)
	case operandUsize:
		return fmt.Sprintf("%s %d", in.Op, in.Operand)
	default:
		return in.Op.String()
	}
}
