package cpu

import (
	"errors"

	"github.com/ezrec/mix/field"
	"github.com/ezrec/mix/translate"
)

var f = translate.From

var (
	// Load errors
	ErrCapacityExceeded = errors.New(f("program exceeds memory capacity"))

	// Instruction encoding errors
	ErrFieldOverflow = errors.New(f("instruction field overflow"))

	// Execution errors
	ErrFieldInvalid    = field.ErrFieldInvalid
	ErrAddressRange    = errors.New(f("address out of range"))
	ErrIndexInvalid    = errors.New(f("index register invalid"))
	ErrShiftNegative   = errors.New(f("negative shift count"))
	ErrDeviceMissing   = errors.New(f("device unit not attached"))
	ErrUnitInvalid     = errors.New(f("device unit out of range"))
	ErrHalted          = errors.New(f("machine halted"))
	ErrBudgetExhausted = errors.New(f("instruction budget exhausted"))

	// Snapshot errors
	ErrSnapshotInvalid = errors.New(f("snapshot invalid"))
)

// ErrUnsupported is an operation code and modifier combination the
// dispatch table does not implement.
type ErrUnsupported struct {
	Code  OpCode
	Field uint32
}

func (eu ErrUnsupported) Error() string {
	return f("unsupported operation %v variant %d", eu.Code, eu.Field)
}

func (eu ErrUnsupported) Is(err error) (ok bool) {
	_, ok = err.(ErrUnsupported)
	return
}

// ErrInstruction tags an execution error with the instruction that raised it.
type ErrInstruction Instruction

func (ei ErrInstruction) Error() string {
	return f("bad instruction %v", Instruction(ei))
}

func (ei ErrInstruction) Is(err error) (ok bool) {
	_, ok = err.(ErrInstruction)
	return
}
