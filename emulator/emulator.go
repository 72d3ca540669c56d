// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs MIX programs on a machine with attached tape and
// drum units, reporting failures with the address and instruction that
// raised them.
package emulator

import (
	"log"
	"maps"
	"slices"

	"github.com/ezrec/mix/cpu"
	"github.com/ezrec/mix/io"
)

// Emulator state. Machine + program + I/O units.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*cpu.Machine              // Reference to the machine simulation.
	Program      *cpu.Program // Reference to the program loaded on reset.
	Budget       int          // Instructions allowed per Run; 0 is unlimited.

	Tapes map[int]*io.Tape // Tape units, by unit number.
	Drums map[int]*io.Drum // Drum units, by unit number.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(),
		Program: &cpu.Program{},
		Tapes:   map[int]*io.Tape{},
		Drums:   map[int]*io.Drum{},
	}

	return
}

// Reset clears the machine, attaches the I/O units and loads the program.
func (emu *Emulator) Reset() (err error) {
	emu.Machine.Verbose = false

	for unit := range cpu.UNIT_COUNT {
		_ = emu.Machine.SetDevice(unit, nil)
	}

	for _, unit := range slices.Sorted(maps.Keys(emu.Tapes)) {
		err = emu.Machine.SetDevice(unit, emu.Tapes[unit])
		if err != nil {
			return
		}
	}

	for _, unit := range slices.Sorted(maps.Keys(emu.Drums)) {
		err = emu.Machine.SetDevice(unit, emu.Drums[unit])
		if err != nil {
			return
		}
	}

	emu.Machine.Reset()

	err = emu.Machine.Load(emu.Program)
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %d instructions, %d tapes, %d drums",
			emu.Program.Len(), len(emu.Tapes), len(emu.Drums))
	}

	emu.Machine.Verbose = emu.Verbose

	return
}

// Done returns true once the machine has halted or run off the end of
// memory.
func (emu *Emulator) Done() bool {
	return emu.Machine.Halted || emu.Machine.PC >= cpu.MEMORY_SIZE
}

// Instruction returns the instruction at the program counter.
func (emu *Emulator) Instruction() (inst cpu.Instruction, err error) {
	return emu.Machine.Fetch()
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Done() {
		done = true
		return
	}

	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	address := emu.Machine.PC
	inst, err := emu.Instruction()
	if err != nil {
		err = &ErrRuntime{Address: address, Err: err}
		return
	}

	defer func() {
		if err != nil {
			err = &ErrRuntime{Address: address, Instruction: inst, Err: err}
		}
	}()

	err = emu.Machine.Tick()
	if err != nil {
		return
	}

	done = emu.Done()
	return
}

// Run ticks the emulator until it is done, or the budget is exhausted.
func (emu *Emulator) Run() (err error) {
	for ticks := 0; ; ticks++ {
		if emu.Budget > 0 && ticks >= emu.Budget {
			inst, _ := emu.Machine.Fetch()
			err = &ErrRuntime{
				Address:     emu.Machine.PC,
				Instruction: inst,
				Err:         cpu.ErrBudgetExhausted,
			}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			break
		}
	}

	if emu.Verbose {
		log.Printf("emulator: %d ticks, pc %04d", emu.Machine.Ticks, emu.Machine.PC)
	}

	return
}
