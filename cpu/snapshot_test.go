package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mix/word"
)

func TestMachine_Snapshot(t *testing.T) {
	assert := assert.New(t)

	m, err := execute(t, func(m *Machine) {
		m.X = wordOf(-1234)
		m.I[5] = word.NewRegister(17, word.MINUS)
		m.Memory[3999] = word.MakeWord(word.MINUS, 63, 1, 2, 3, 4)
	},
		MakeInstruction(OP_ENTA, 77, 0, ADDR_ENT),
		MakeInstruction(OP_CMPA, 3999, 0, 5),
		MakeInstruction(OP_ENTA, 1, 0, ADDR_INC),
	)
	assert.NoError(err)

	data, err := m.MarshalBinary()
	assert.NoError(err)

	again, err := m.MarshalBinary()
	assert.NoError(err)
	assert.Equal(data, again)

	other := NewMachine()
	assert.NoError(other.UnmarshalBinary(data))

	assert.Equal(m.Snapshot(), other.Snapshot())
	assert.Equal(m.Memory, other.Memory)
	assert.Equal(wordOf(78), other.A)
	assert.Equal(wordOf(-1234), other.X)
	assert.Equal(word.NewRegister(17, word.MINUS), other.I[5])
	assert.Equal(COMPARE_GREATER, other.Comparison)
	assert.True(other.Halted)
	assert.Equal(m.PC, other.PC)
	assert.Equal(m.Ticks, other.Ticks)
}

func TestMachine_Snapshot_Invalid(t *testing.T) {
	assert := assert.New(t)

	m := NewMachine()
	m.A = wordOf(5)

	err := m.UnmarshalBinary([]byte{0xff, 0x00})
	assert.ErrorIs(err, ErrSnapshotInvalid)

	table := [...]*Snapshot{
		{Memory: make([]uint32, 10)},
		{Memory: make([]uint32, MEMORY_SIZE), Comparison: Comparison(4)},
		{Memory: make([]uint32, MEMORY_SIZE), PC: MEMORY_SIZE + 1},
		{Memory: make([]uint32, MEMORY_SIZE), PC: -1},
		{Memory: make([]uint32, MEMORY_SIZE), Ticks: -1},
	}

	for _, snap := range table {
		data, err := cborEncMode.Marshal(snap)
		assert.NoError(err)

		err = m.UnmarshalBinary(data)
		assert.ErrorIs(err, ErrSnapshotInvalid)
		assert.Equal(wordOf(5), m.A)
	}
}
