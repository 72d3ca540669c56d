package cpu

import (
	"fmt"

	"github.com/ezrec/mix/field"
	"github.com/ezrec/mix/word"
)

const (
	ADDRESS_MASK  = 0xfff // Address magnitude, two bytes.
	INDEX_MASK    = 0x3f  // Index register, one byte.
	MODIFIER_MASK = 0x3f  // Modifier, one byte.
	COMMAND_MASK  = 0x3f  // Operation code, one byte.

	ADDRESS_SHIFT  = 18
	INDEX_SHIFT    = 12
	MODIFIER_SHIFT = 6
	COMMAND_SHIFT  = 0
)

// Instruction is the decoded view of an instruction word. The sign applies
// to the address, giving a 13 bit signed address.
type Instruction struct {
	Sign     word.Sign // Sign of the address.
	Address  uint32    // Address magnitude.
	Index    uint32    // Index register, 0 for none.
	Modifier uint32    // Modifier F.
	Command  OpCode    // Operation code C.
}

// MakeInstruction creates an instruction from a signed address.
func MakeInstruction(command OpCode, address int, index uint32, modifier uint32) Instruction {
	sign := word.SignOf(int64(address))
	if address < 0 {
		address = -address
	}
	return Instruction{
		Sign:     sign,
		Address:  uint32(address),
		Index:    index,
		Modifier: modifier,
		Command:  command,
	}
}

// Decode unpacks an instruction word.
func Decode(w word.Word) Instruction {
	data := w.ReadData()
	return Instruction{
		Sign:     w.Sign(),
		Address:  (data >> ADDRESS_SHIFT) & ADDRESS_MASK,
		Index:    (data >> INDEX_SHIFT) & INDEX_MASK,
		Modifier: (data >> MODIFIER_SHIFT) & MODIFIER_MASK,
		Command:  OpCode((data >> COMMAND_SHIFT) & COMMAND_MASK),
	}
}

// Word packs the instruction. Each field is truncated to its width.
func (inst Instruction) Word() word.Word {
	data := (inst.Address&ADDRESS_MASK)<<ADDRESS_SHIFT |
		(inst.Index&INDEX_MASK)<<INDEX_SHIFT |
		(inst.Modifier&MODIFIER_MASK)<<MODIFIER_SHIFT |
		(uint32(inst.Command)&COMMAND_MASK)<<COMMAND_SHIFT
	return word.NewWord(data, inst.Sign)
}

// Check reports ErrFieldOverflow if any field would be truncated by Word.
func (inst Instruction) Check() (err error) {
	switch {
	case inst.Address > ADDRESS_MASK:
		err = fmt.Errorf("%w: address %d", ErrFieldOverflow, inst.Address)
	case inst.Index > INDEX_MASK:
		err = fmt.Errorf("%w: index %d", ErrFieldOverflow, inst.Index)
	case inst.Modifier > MODIFIER_MASK:
		err = fmt.Errorf("%w: modifier %d", ErrFieldOverflow, inst.Modifier)
	case inst.Command < 0 || inst.Command >= OPCODE_COUNT:
		err = fmt.Errorf("%w: command %d", ErrFieldOverflow, int(inst.Command))
	case inst.Sign != word.PLUS && inst.Sign != word.MINUS:
		err = fmt.Errorf("%w: sign %d", ErrFieldOverflow, int(inst.Sign))
	}
	return
}

// SignedAddress returns the address with its sign applied.
func (inst Instruction) SignedAddress() int {
	address := int(inst.Address)
	if inst.Sign == word.MINUS {
		address = -address
	}
	return address
}

// Mnemonic returns the assembler mnemonic of the instruction.
func (inst Instruction) Mnemonic() string {
	return Mnemonic(inst.Command, inst.Modifier)
}

// String returns the instruction in assembler notation, with the modifier
// shown as a field specification when it is one.
func (inst Instruction) String() string {
	text := fmt.Sprintf("%v %v%d", inst.Mnemonic(), inst.Sign, inst.Address)
	if inst.Index != 0 {
		text += fmt.Sprintf(",%d", inst.Index)
	}
	spec, err := field.Parse(inst.Modifier, word.WORD_BYTES)
	if err == nil {
		text += spec.String()
	} else {
		text += fmt.Sprintf("(%d)", inst.Modifier)
	}
	return text
}
