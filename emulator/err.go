package emulator

import (
	"fmt"

	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address     int
	Instruction cpu.Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	return f("address %v %v: %v", fmt.Sprintf("%04d", err.Address), err.Instruction.Mnemonic(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
