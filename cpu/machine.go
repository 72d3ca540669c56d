// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	"github.com/ezrec/mix/field"
	"github.com/ezrec/mix/io"
	"github.com/ezrec/mix/word"
)

// Device is a peripheral attached to an I/O unit.
type Device io.Device

const (
	MEMORY_SIZE = 4000 // Words of memory.
	INDEX_COUNT = 6    // Index registers rI1-rI6.
	UNIT_COUNT  = 21   // I/O units 0-20.

	REG_A = 0 // Register family index of rA.
	REG_X = 7 // Register family index of rX.
)

// Comparison is the state of the comparison indicator.
type Comparison int

//go:generate go tool stringer -linecomment -type=Comparison
const (
	COMPARE_NONE    = Comparison(0) // None
	COMPARE_LESS    = Comparison(1) // Less
	COMPARE_EQUAL   = Comparison(2) // Equal
	COMPARE_GREATER = Comparison(3) // Greater
)

// Machine is the architectural state of a MIX computer.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Overflow   bool                      // Overflow toggle.
	Comparison Comparison                // Comparison indicator.
	Memory     [MEMORY_SIZE]word.Word    // Main memory.
	A          word.Word                 // Accumulator.
	X          word.Word                 // Extension register.
	I          [INDEX_COUNT]word.Register // Index registers rI1-rI6.
	J          word.Register             // Jump register.

	PC     int  // Address of the next instruction.
	Halted bool // Set by HLT.
	Ticks  int  // Instructions executed since reset.

	device [UNIT_COUNT]Device // I/O units.
}

// NewMachine creates a machine with all-zero state.
func NewMachine() *Machine {
	return &Machine{}
}

// Reset clears registers, flags and memory, and rewinds attached devices.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("cpu: reset")
	}

	m.Overflow = false
	m.Comparison = COMPARE_NONE
	clear(m.Memory[:])
	m.A = word.Word{}
	m.X = word.Word{}
	clear(m.I[:])
	m.J = word.Register{}
	m.PC = 0
	m.Halted = false
	m.Ticks = 0

	for _, dev := range m.device {
		if dev != nil {
			dev.Rewind()
		}
	}
}

// SetDevice attaches a device to a unit, or detaches it when dev is nil.
func (m *Machine) SetDevice(unit int, dev Device) (err error) {
	if unit < 0 || unit >= UNIT_COUNT {
		err = fmt.Errorf("%w: unit %d", ErrUnitInvalid, unit)
		return
	}
	m.device[unit] = dev
	return
}

// GetDevice returns the device attached to a unit.
func (m *Machine) GetDevice(unit int) (dev Device, err error) {
	if unit < 0 || unit >= UNIT_COUNT {
		err = fmt.Errorf("%w: unit %d", ErrUnitInvalid, unit)
		return
	}

	dev = m.device[unit]
	if dev == nil {
		err = fmt.Errorf("%w: unit %d", ErrDeviceMissing, unit)
	}
	return
}

// Load stores a program's instructions at addresses 0 onward. Nothing is
// written if the program does not fit in memory.
func (m *Machine) Load(prog *Program) (err error) {
	if prog.Len() > MEMORY_SIZE {
		err = fmt.Errorf("%w: %d instructions", ErrCapacityExceeded, prog.Len())
		return
	}

	for address, inst := range prog.All() {
		m.Memory[address] = inst.Word()
	}

	if m.Verbose {
		log.Printf("cpu: loaded %d instructions", prog.Len())
	}

	return
}

// Fetch decodes the instruction at the program counter.
func (m *Machine) Fetch() (inst Instruction, err error) {
	if m.PC < 0 || m.PC >= MEMORY_SIZE {
		err = fmt.Errorf("%w: pc %d", ErrAddressRange, m.PC)
		return
	}

	inst = Decode(m.Memory[m.PC])
	return
}

// Tick executes a single fetch-decode-execute cycle.
func (m *Machine) Tick() (err error) {
	if m.Halted {
		err = ErrHalted
		return
	}

	inst, err := m.Fetch()
	if err != nil {
		return
	}

	err = m.Dispatch(inst)
	return
}

// Dispatch executes a decoded instruction as if fetched from the program
// counter. On error no register, flag or memory cell is modified and the
// program counter still addresses the instruction.
func (m *Machine) Dispatch(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInstruction(inst), err)
		}
	}()

	if m.Verbose {
		log.Printf("cpu: %04d: %v", m.PC, inst)
	}

	if inst.Command < 0 || inst.Command >= OPCODE_COUNT {
		err = ErrUnsupported{Code: inst.Command, Field: inst.Modifier}
		return
	}

	handler := dispatch[inst.Command]
	if handler == nil {
		err = ErrUnsupported{Code: inst.Command, Field: inst.Modifier}
		return
	}

	next, err := handler(m, inst)
	if err != nil {
		return
	}

	m.PC = next
	m.Ticks++

	return
}

// Execute runs from the program counter until HLT or the end of memory.
func (m *Machine) Execute() (err error) {
	return m.Run(0)
}

// Run is Execute bounded by a budget of instructions. A budget of zero or
// less is unlimited.
func (m *Machine) Run(budget int) (err error) {
	for ticks := 0; !m.Halted && m.PC < MEMORY_SIZE; ticks++ {
		if budget > 0 && ticks >= budget {
			err = ErrBudgetExhausted
			return
		}
		err = m.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Register returns register reg of a family (rA, rI1-rI6, rX) as a word.
func (m *Machine) Register(reg int) word.Word {
	switch reg {
	case REG_A:
		return m.A
	case REG_X:
		return m.X
	default:
		return m.I[reg-1].Word()
	}
}

// SetRegister stores a word into register reg of a family. Index
// registers keep the sign and two low bytes.
func (m *Machine) SetRegister(reg int, w word.Word) {
	switch reg {
	case REG_A:
		m.A = w
	case REG_X:
		m.X = w
	default:
		m.I[reg-1], _ = word.RegisterFromWord(w)
	}
}

// effectiveAddress returns M, the instruction address plus the contents
// of its index register.
func (m *Machine) effectiveAddress(inst Instruction) (address int, err error) {
	if inst.Index > INDEX_COUNT {
		err = fmt.Errorf("%w: %d", ErrIndexInvalid, inst.Index)
		return
	}

	address = inst.SignedAddress()
	if inst.Index > 0 {
		address += int(m.I[inst.Index-1].Int())
	}

	return
}

// memoryAddress returns M, which must address memory.
func (m *Machine) memoryAddress(inst Instruction) (address int, err error) {
	address, err = m.effectiveAddress(inst)
	if err != nil {
		return
	}

	err = checkAddress(address)
	return
}

// fieldSpec returns the instruction's modifier as a word field.
func (m *Machine) fieldSpec(inst Instruction) (spec field.Spec, err error) {
	return field.Parse(inst.Modifier, word.WORD_BYTES)
}

// operand returns V, the field F of the word at M.
func (m *Machine) operand(inst Instruction) (value word.Word, err error) {
	address, err := m.memoryAddress(inst)
	if err != nil {
		return
	}

	spec, err := m.fieldSpec(inst)
	if err != nil {
		return
	}

	value = m.Memory[address].Field(spec)
	return
}

func checkAddress(address int) (err error) {
	if address < 0 || address >= MEMORY_SIZE {
		err = fmt.Errorf("%w: %d", ErrAddressRange, address)
	}
	return
}
