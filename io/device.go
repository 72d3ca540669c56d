// Package io provides the peripheral devices of the MIX emulator. Devices
// transfer fixed size blocks of words, synchronously, between memory and a
// backing store: sequential streams (Tape) or random access blocks (Drum).
package io

import (
	"github.com/ezrec/mix/word"
)

// BLOCK_WORDS is the block size of tape and drum units.
const BLOCK_WORDS = 100

// Device defines the interface for all units attached to a MIX machine.
type Device interface {
	// BlockSize returns the number of words moved by one IN or OUT.
	BlockSize() int
	// Busy returns true if the unit is not ready. Transfers here complete
	// immediately, so a unit is only busy if its medium says so.
	Busy() bool
	// In fills block from the unit.
	In(block []word.Word) error
	// Out writes block to the unit.
	Out(block []word.Word) error
	// Control performs the unit specific IOC operation M, with rX.
	Control(op int64, x word.Word) error
	// Rewind resets the unit to its initial position.
	Rewind()
}

// Positioner is implemented by block addressed devices, which are moved to
// the block in rX before each transfer.
type Positioner interface {
	Position(block int64) error
}
