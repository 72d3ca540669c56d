package cpu

import (
	"iter"

	"github.com/ezrec/mix/word"
)

// Program is an ordered sequence of instructions, loaded at address 0.
type Program struct {
	Instructions []Instruction
}

// Add appends an instruction.
func (prog *Program) Add(inst Instruction) {
	prog.Instructions = append(prog.Instructions, inst)
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// All iterates over the instructions with their load address.
func (prog *Program) All() iter.Seq2[int, Instruction] {
	return func(yield func(address int, inst Instruction) bool) {
		for address, inst := range prog.Instructions {
			if !yield(address, inst) {
				return
			}
		}
	}
}

// Words returns the packed instruction words.
func (prog *Program) Words() (words []word.Word) {
	for _, inst := range prog.All() {
		words = append(words, inst.Word())
	}
	return
}
