package cpu

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ezrec/mix/word"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("cpu: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot is the architectural state of a machine, words and registers as
// raw patterns. Attached devices are not part of a snapshot.
type Snapshot struct {
	Overflow   bool                `cbor:"1,keyasint"`
	Comparison Comparison          `cbor:"2,keyasint"`
	Memory     []uint32            `cbor:"3,keyasint"`
	A          uint32              `cbor:"4,keyasint"`
	X          uint32              `cbor:"5,keyasint"`
	I          [INDEX_COUNT]uint16 `cbor:"6,keyasint"`
	J          uint16              `cbor:"7,keyasint"`
	PC         int                 `cbor:"8,keyasint"`
	Halted     bool                `cbor:"9,keyasint"`
	Ticks      int                 `cbor:"10,keyasint"`
}

// Snapshot captures the machine state.
func (m *Machine) Snapshot() (snap *Snapshot) {
	snap = &Snapshot{
		Overflow:   m.Overflow,
		Comparison: m.Comparison,
		Memory:     make([]uint32, MEMORY_SIZE),
		A:          m.A.Read(),
		X:          m.X.Read(),
		J:          m.J.Read(),
		PC:         m.PC,
		Halted:     m.Halted,
		Ticks:      m.Ticks,
	}

	for address, w := range m.Memory {
		snap.Memory[address] = w.Read()
	}

	for n, r := range m.I {
		snap.I[n] = r.Read()
	}

	return
}

// Check validates a snapshot before it is restored.
func (snap *Snapshot) Check() (err error) {
	switch {
	case len(snap.Memory) != MEMORY_SIZE:
		err = fmt.Errorf("%w: %d memory words", ErrSnapshotInvalid, len(snap.Memory))
	case snap.Comparison < COMPARE_NONE || snap.Comparison > COMPARE_GREATER:
		err = fmt.Errorf("%w: comparison %d", ErrSnapshotInvalid, int(snap.Comparison))
	case snap.PC < 0 || snap.PC > MEMORY_SIZE:
		err = fmt.Errorf("%w: pc %d", ErrSnapshotInvalid, snap.PC)
	case snap.Ticks < 0:
		err = fmt.Errorf("%w: ticks %d", ErrSnapshotInvalid, snap.Ticks)
	}
	return
}

// Restore replaces the machine state with a snapshot. The machine is not
// modified if the snapshot is invalid.
func (m *Machine) Restore(snap *Snapshot) (err error) {
	err = snap.Check()
	if err != nil {
		return
	}

	m.Overflow = snap.Overflow
	m.Comparison = snap.Comparison
	for address, bits := range snap.Memory {
		m.Memory[address] = word.WordFromBits(bits)
	}
	m.A = word.WordFromBits(snap.A)
	m.X = word.WordFromBits(snap.X)
	for n, bits := range snap.I {
		m.I[n] = word.RegisterFromBits(bits)
	}
	m.J = word.RegisterFromBits(snap.J)
	m.PC = snap.PC
	m.Halted = snap.Halted
	m.Ticks = snap.Ticks

	return
}

// MarshalBinary encodes the machine state as canonical CBOR.
func (m *Machine) MarshalBinary() ([]byte, error) {
	return cborEncMode.Marshal(m.Snapshot())
}

// UnmarshalBinary restores the machine state from CBOR.
func (m *Machine) UnmarshalBinary(data []byte) (err error) {
	var snap Snapshot
	err = cbor.Unmarshal(data, &snap)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrSnapshotInvalid, err)
		return
	}

	return m.Restore(&snap)
}
