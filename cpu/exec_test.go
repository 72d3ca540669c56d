package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/mix/io"
	"github.com/ezrec/mix/word"
)

const maxWord = word.WORD_DATA_MASK

func TestExec_Arith(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		op       OpCode
		modifier uint32
		a, x     word.Word
		v        word.Word
		expectA  word.Word
		expectX  word.Word
		overflow bool
	}{
		{op: OP_ADD, modifier: 5, a: wordOf(100), v: wordOf(23), expectA: wordOf(123)},
		{op: OP_ADD, modifier: 5, a: wordOf(-5), v: wordOf(5), expectA: word.NewWord(0, word.MINUS)},
		{op: OP_ADD, modifier: 5, a: wordOf(maxWord), v: wordOf(1), expectA: wordOf(0), overflow: true},
		{op: OP_ADD, modifier: 5, a: wordOf(-maxWord), v: wordOf(-2), expectA: wordOf(-1), overflow: true},
		{op: OP_ADD, modifier: 45, a: wordOf(1), v: word.MakeWord(word.MINUS, 9, 9, 9, 1, 2), expectA: wordOf(1 + 64 + 2)},
		{op: OP_SUB, modifier: 5, a: wordOf(5), v: wordOf(7), expectA: wordOf(-2)},
		{op: OP_SUB, modifier: 5, a: word.NewWord(0, word.MINUS), v: wordOf(0), expectA: word.NewWord(0, word.MINUS)},
		{op: OP_MUL, modifier: 5, a: wordOf(2), v: wordOf(-3), expectA: word.NewWord(0, word.MINUS), expectX: wordOf(-6)},
		{op: OP_MUL, modifier: 5, a: wordOf(1 << 29), v: wordOf(4), expectA: wordOf(2), expectX: wordOf(0)},
		{op: OP_MUL, modifier: 5, a: wordOf(-7), v: wordOf(0), expectA: word.NewWord(0, word.MINUS), expectX: word.NewWord(0, word.MINUS)},
		{op: OP_DIV, modifier: 5, a: wordOf(0), x: wordOf(17), v: wordOf(5), expectA: wordOf(3), expectX: wordOf(2)},
		{op: OP_DIV, modifier: 5, a: word.NewWord(0, word.MINUS), x: wordOf(17), v: wordOf(5), expectA: wordOf(-3), expectX: wordOf(-2)},
		{op: OP_DIV, modifier: 5, a: wordOf(1), x: wordOf(0), v: wordOf(-2), expectA: wordOf(-(1 << 29)), expectX: wordOf(0)},
		{op: OP_DIV, modifier: 5, a: wordOf(0), x: wordOf(17), v: wordOf(0), expectA: wordOf(0), expectX: wordOf(17), overflow: true},
		{op: OP_DIV, modifier: 5, a: wordOf(5), x: wordOf(17), v: wordOf(5), expectA: wordOf(5), expectX: wordOf(17), overflow: true},
	}

	for _, entry := range table {
		m, err := execute(t, func(m *Machine) {
			m.A = entry.a
			m.X = entry.x
			m.Memory[1000] = entry.v
		}, MakeInstruction(entry.op, 1000, 0, entry.modifier))
		assert.NoError(err, entry)
		assert.Equal(entry.expectA, m.A, entry)
		if entry.op == OP_MUL || entry.op == OP_DIV {
			assert.Equal(entry.expectX, m.X, entry)
		} else {
			assert.Equal(entry.x, m.X, entry)
		}
		assert.Equal(entry.overflow, m.Overflow, entry)
	}
}

func TestExec_Spec(t *testing.T) {
	assert := assert.New(t)

	m, err := execute(t, func(m *Machine) {
		m.A = word.MakeWord(word.MINUS, 0, 0, 31, 32, 39)
		m.X = word.MakeWord(word.PLUS, 37, 57, 47, 30, 30)
	}, MakeInstruction(OP_SPEC, 0, 0, SPEC_NUM))
	assert.NoError(err)
	assert.Equal(wordOf(-12977700), m.A)
	assert.Equal(word.MakeWord(word.PLUS, 37, 57, 47, 30, 30), m.X)

	m, err = execute(t, func(m *Machine) {
		m.A = wordOf(-12977699)
		m.X = wordOf(5)
	}, MakeInstruction(OP_SPEC, 0, 0, SPEC_CHAR))
	assert.NoError(err)
	assert.Equal(word.MakeWord(word.MINUS, 30, 30, 31, 32, 39), m.A)
	assert.Equal(word.MakeWord(word.PLUS, 37, 37, 36, 39, 39), m.X)

	// NUM of a ten digit number wraps.
	m, err = execute(t, func(m *Machine) {
		m.A = word.MakeWord(word.PLUS, 39, 39, 39, 39, 39)
		m.X = word.MakeWord(word.PLUS, 39, 39, 39, 39, 39)
	}, MakeInstruction(OP_SPEC, 0, 0, SPEC_NUM))
	assert.NoError(err)
	assert.Equal(wordOf(9999999999%(1<<30)), m.A)
}

func TestExec_Shift(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		modifier uint32
		count    int
		expectA  word.Word
		expectX  word.Word
	}{
		{SHIFT_SRAX, 1, word.MakeWord(word.PLUS, 0, 1, 2, 3, 4), word.MakeWord(word.MINUS, 5, 6, 7, 8, 9)},
		{SHIFT_SLA, 2, word.MakeWord(word.PLUS, 3, 4, 5, 0, 0), word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)},
		{SHIFT_SRA, 1, word.MakeWord(word.PLUS, 0, 1, 2, 3, 4), word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)},
		{SHIFT_SRA, 6, word.MakeWord(word.PLUS), word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)},
		{SHIFT_SLAX, 3, word.MakeWord(word.PLUS, 4, 5, 6, 7, 8), word.MakeWord(word.MINUS, 9, 10, 0, 0, 0)},
		{SHIFT_SLAX, 12, word.MakeWord(word.PLUS), word.MakeWord(word.MINUS)},
		{SHIFT_SRAX, 9, word.MakeWord(word.PLUS), word.MakeWord(word.MINUS, 0, 0, 0, 0, 1)},
		{SHIFT_SLC, 2, word.MakeWord(word.PLUS, 3, 4, 5, 6, 7), word.MakeWord(word.MINUS, 8, 9, 10, 1, 2)},
		{SHIFT_SRC, 1, word.MakeWord(word.PLUS, 10, 1, 2, 3, 4), word.MakeWord(word.MINUS, 5, 6, 7, 8, 9)},
		{SHIFT_SRC, 11, word.MakeWord(word.PLUS, 10, 1, 2, 3, 4), word.MakeWord(word.MINUS, 5, 6, 7, 8, 9)},
		{SHIFT_SLC, 10, word.MakeWord(word.PLUS, 1, 2, 3, 4, 5), word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)},
		{SHIFT_SRC, 0, word.MakeWord(word.PLUS, 1, 2, 3, 4, 5), word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)},
	}

	for _, entry := range table {
		m, err := execute(t, func(m *Machine) {
			m.A = word.MakeWord(word.PLUS, 1, 2, 3, 4, 5)
			m.X = word.MakeWord(word.MINUS, 6, 7, 8, 9, 10)
		}, MakeInstruction(OP_SHIFT, entry.count, 0, entry.modifier))
		assert.NoError(err, entry)
		assert.Equal(entry.expectA, m.A, entry)
		assert.Equal(entry.expectX, m.X, entry)
	}

	// Shift counts may come from an index register.
	m, err := execute(t, func(m *Machine) {
		m.A = word.MakeWord(word.PLUS, 1, 2, 3, 4, 5)
		m.I[1] = word.NewRegister(2, word.PLUS)
	}, MakeInstruction(OP_SHIFT, 1, 2, SHIFT_SRA))
	assert.NoError(err)
	assert.Equal(word.MakeWord(word.PLUS, 0, 0, 0, 1, 2), m.A)
}

func TestExec_Move(t *testing.T) {
	assert := assert.New(t)

	m, err := execute(t, func(m *Machine) {
		m.Memory[1000] = wordOf(1)
		m.Memory[1001] = wordOf(-2)
		m.Memory[1002] = wordOf(3)
		m.I[0] = word.NewRegister(2000, word.PLUS)
	}, MakeInstruction(OP_MOVE, 1000, 0, 3))
	assert.NoError(err)
	assert.Equal([]word.Word{wordOf(1), wordOf(-2), wordOf(3), wordOf(0)}, m.Memory[2000:2004])
	assert.Equal(int64(2003), m.I[0].Int())

	m, err = execute(t, func(m *Machine) {
		m.I[0] = word.NewRegister(2000, word.PLUS)
	}, MakeInstruction(OP_MOVE, 1000, 0, 0))
	assert.NoError(err)
	assert.Equal(int64(2000), m.I[0].Int())
}

func TestExec_Load(t *testing.T) {
	assert := assert.New(t)

	value := word.MakeWord(word.MINUS, 1, 2, 3, 4, 5)

	m, err := execute(t, func(m *Machine) {
		m.Memory[2000] = value
	},
		MakeInstruction(OP_LDX, 2000, 0, 5),
		MakeInstruction(OP_LDAN, 2000, 0, 5),
		MakeInstruction(OP_LD1, 2000, 0, 5),
		MakeInstruction(OP_LD2N, 2000, 0, 5),
		MakeInstruction(OP_LD3, 2000, 0, 2),
		MakeInstruction(OP_LDXN, 2000, 0, 0),
	)
	assert.NoError(err)
	assert.Equal(word.MakeWord(word.PLUS, 1, 2, 3, 4, 5), m.A)
	assert.Equal(word.NewWord(0, word.PLUS), m.X)
	assert.Equal(word.NewRegister(4*64+5, word.MINUS), m.I[0])
	assert.Equal(word.NewRegister(4*64+5, word.PLUS), m.I[1])
	assert.Equal(word.NewRegister(1*64+2, word.MINUS), m.I[2])
	assert.False(m.Overflow)

	// Indexed addressing.
	m, err = execute(t, func(m *Machine) {
		m.Memory[2000] = value
		m.I[3] = word.NewRegister(10, word.MINUS)
	}, MakeInstruction(OP_LDA, 2010, 4, 5))
	assert.NoError(err)
	assert.Equal(value, m.A)
}

func TestExec_Store(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		modifier uint32
		expect   word.Word
	}{
		{5, word.MakeWord(word.PLUS, 6, 7, 8, 9, 0)},
		{15, word.MakeWord(word.MINUS, 6, 7, 8, 9, 0)},
		{55, word.MakeWord(word.MINUS, 1, 2, 3, 4, 0)},
		{22, word.MakeWord(word.MINUS, 1, 0, 3, 4, 5)},
		{23, word.MakeWord(word.MINUS, 1, 9, 0, 4, 5)},
		{1, word.MakeWord(word.PLUS, 0, 2, 3, 4, 5)},
	}

	for _, entry := range table {
		m, err := execute(t, func(m *Machine) {
			m.Memory[2000] = word.MakeWord(word.MINUS, 1, 2, 3, 4, 5)
			m.A = word.MakeWord(word.PLUS, 6, 7, 8, 9, 0)
		}, MakeInstruction(OP_STA, 2000, 0, entry.modifier))
		assert.NoError(err, entry.modifier)
		assert.Equal(entry.expect, m.Memory[2000], entry.modifier)
	}

	m, err := execute(t, func(m *Machine) {
		for address := 2000; address < 2005; address++ {
			m.Memory[address] = word.MakeWord(word.MINUS, 1, 2, 3, 4, 5)
		}
		m.X = wordOf(-99)
		m.I[0] = word.NewRegister(4*64+5, word.MINUS)
		m.I[5] = word.NewRegister(7, word.PLUS)
		m.J = word.NewRegister(1000, word.PLUS)
	},
		MakeInstruction(OP_STX, 2000, 0, 5),
		MakeInstruction(OP_ST1, 2001, 0, 5),
		MakeInstruction(OP_ST6, 2002, 0, 44),
		MakeInstruction(OP_STJ, 2003, 0, 45),
		MakeInstruction(OP_STZ, 2004, 0, 5),
	)
	assert.NoError(err)
	assert.Equal(wordOf(-99), m.Memory[2000])
	assert.Equal(word.MakeWord(word.MINUS, 0, 0, 0, 4, 5), m.Memory[2001])
	assert.Equal(word.MakeWord(word.MINUS, 1, 2, 3, 7, 5), m.Memory[2002])
	assert.Equal(word.MakeWord(word.MINUS, 1, 2, 3, 15, 40), m.Memory[2003])
	assert.Equal(word.Word{}, m.Memory[2004])
}

func TestExec_Loop(t *testing.T) {
	assert := assert.New(t)

	// Sum 10 + 9 + ... + 1.
	m, err := execute(t, nil,
		MakeInstruction(OP_ENT1, 10, 0, ADDR_ENT),
		MakeInstruction(OP_ENTA, 0, 1, ADDR_INC),
		MakeInstruction(OP_ENT1, 1, 0, ADDR_DEC),
		MakeInstruction(OP_J1, 1, 0, RJUMP_P),
	)
	assert.NoError(err)
	assert.Equal(wordOf(55), m.A)
	assert.Equal(word.NewRegister(0, word.PLUS), m.I[0])
	assert.Equal(word.NewRegister(4, word.PLUS), m.J)
	assert.Equal(1+10*3+1, m.Ticks)
	assert.True(m.Halted)
}

func TestExec_Jump(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		modifier   uint32
		overflow   bool
		comparison Comparison
		taken      bool
	}{
		{JUMP_JMP, false, COMPARE_NONE, true},
		{JUMP_JOV, true, COMPARE_NONE, true},
		{JUMP_JOV, false, COMPARE_NONE, false},
		{JUMP_JNOV, false, COMPARE_NONE, true},
		{JUMP_JNOV, true, COMPARE_NONE, false},
		{JUMP_JL, false, COMPARE_LESS, true},
		{JUMP_JL, false, COMPARE_EQUAL, false},
		{JUMP_JL, false, COMPARE_NONE, false},
		{JUMP_JE, false, COMPARE_EQUAL, true},
		{JUMP_JE, false, COMPARE_GREATER, false},
		{JUMP_JG, false, COMPARE_GREATER, true},
		{JUMP_JG, false, COMPARE_NONE, false},
		{JUMP_JGE, false, COMPARE_GREATER, true},
		{JUMP_JGE, false, COMPARE_EQUAL, true},
		{JUMP_JGE, false, COMPARE_LESS, false},
		{JUMP_JGE, false, COMPARE_NONE, false},
		{JUMP_JNE, false, COMPARE_LESS, true},
		{JUMP_JNE, false, COMPARE_GREATER, true},
		{JUMP_JNE, false, COMPARE_EQUAL, false},
		{JUMP_JNE, false, COMPARE_NONE, false},
		{JUMP_JLE, false, COMPARE_LESS, true},
		{JUMP_JLE, false, COMPARE_EQUAL, true},
		{JUMP_JLE, false, COMPARE_GREATER, false},
	}

	for _, entry := range table {
		m := NewMachine()
		m.PC = 100
		m.Memory[100] = MakeInstruction(OP_JMP, 500, 0, entry.modifier).Word()
		m.Overflow = entry.overflow
		m.Comparison = entry.comparison

		assert.NoError(m.Tick(), entry)
		if entry.taken {
			assert.Equal(500, m.PC, entry)
			assert.Equal(int64(101), m.J.Int(), entry)
		} else {
			assert.Equal(101, m.PC, entry)
			assert.Equal(int64(0), m.J.Int(), entry)
		}

		switch entry.modifier {
		case JUMP_JOV, JUMP_JNOV:
			assert.False(m.Overflow, entry)
		case JUMP_JMP:
			assert.Equal(entry.overflow, m.Overflow, entry)
			assert.Equal(entry.comparison, m.Comparison, entry)
		default:
			assert.Equal(COMPARE_NONE, m.Comparison, entry)
		}
	}

	// JSJ leaves rJ alone.
	m := NewMachine()
	m.J = word.NewRegister(77, word.PLUS)
	m.Memory[0] = MakeInstruction(OP_JMP, 500, 0, JUMP_JSJ).Word()
	assert.NoError(m.Tick())
	assert.Equal(500, m.PC)
	assert.Equal(int64(77), m.J.Int())
}

func TestExec_RegisterJump(t *testing.T) {
	assert := assert.New(t)

	values := []word.Word{wordOf(-3), word.NewWord(0, word.MINUS), wordOf(0), wordOf(3)}

	table := [...]struct {
		modifier uint32
		taken    []bool
	}{
		{RJUMP_N, []bool{true, false, false, false}},
		{RJUMP_Z, []bool{false, true, true, false}},
		{RJUMP_P, []bool{false, false, false, true}},
		{RJUMP_NN, []bool{false, true, true, true}},
		{RJUMP_NZ, []bool{true, false, false, true}},
		{RJUMP_NP, []bool{true, true, true, false}},
	}

	for _, entry := range table {
		for n, value := range values {
			for reg := range 8 {
				m := NewMachine()
				m.SetRegister(reg, value)
				m.Memory[0] = MakeInstruction(OP_JA+OpCode(reg), 300, 0, entry.modifier).Word()

				assert.NoError(m.Tick())
				if entry.taken[n] {
					assert.Equal(300, m.PC, "%v %v %d", entry.modifier, value, reg)
					assert.Equal(int64(1), m.J.Int())
				} else {
					assert.Equal(1, m.PC, "%v %v %d", entry.modifier, value, reg)
				}
			}
		}
	}
}

func TestExec_Address(t *testing.T) {
	assert := assert.New(t)

	m, err := execute(t, func(m *Machine) {
		m.I[1] = word.NewRegister(3, word.MINUS)
		m.X = wordOf(maxWord)
	},
		MakeInstruction(OP_ENTA, 5, 0, ADDR_ENT),
		MakeInstruction(OP_ENT1, 0, 2, ADDR_ENT),
		MakeInstruction(OP_ENT3, 0, 0, ADDR_ENN),
		MakeInstruction(OP_ENT4, 20, 0, ADDR_ENN),
		MakeInstruction(OP_ENT5, -0, 0, ADDR_ENT),
		MakeInstruction(OP_ENTA, 2, 0, ADDR_DEC),
		MakeInstruction(OP_ENTX, 1, 0, ADDR_INC),
	)
	assert.NoError(err)
	assert.Equal(wordOf(3), m.A)
	assert.Equal(word.NewRegister(3, word.MINUS), m.I[0])
	assert.Equal(word.NewRegister(0, word.MINUS), m.I[2])
	assert.Equal(word.NewRegister(20, word.MINUS), m.I[3])
	assert.Equal(word.NewRegister(0, word.PLUS), m.I[4])
	assert.Equal(wordOf(0), m.X)
	assert.True(m.Overflow)

	// The sign of a zero M comes from the instruction.
	minusZero := Instruction{Sign: word.MINUS, Command: OP_ENTA, Modifier: ADDR_ENT}
	m, err = execute(t, nil, minusZero)
	assert.NoError(err)
	assert.Equal(word.NewWord(0, word.MINUS), m.A)

	minusZero.Modifier = ADDR_ENN
	m, err = execute(t, nil, minusZero)
	assert.NoError(err)
	assert.Equal(word.NewWord(0, word.PLUS), m.A)

	// Index registers wrap without overflow; zero results keep the sign.
	m, err = execute(t, func(m *Machine) {
		m.I[0] = word.NewRegister(4000, word.PLUS)
		m.I[1] = word.NewRegister(5, word.MINUS)
	},
		MakeInstruction(OP_ENT1, 100, 0, ADDR_INC),
		MakeInstruction(OP_ENT2, -5, 0, ADDR_DEC),
	)
	assert.NoError(err)
	assert.Equal(word.NewRegister(4, word.PLUS), m.I[0])
	assert.Equal(word.NewRegister(0, word.MINUS), m.I[1])
	assert.False(m.Overflow)
}

func TestExec_Compare(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		op       OpCode
		modifier uint32
		reg      word.Word
		value    word.Word
		expect   Comparison
	}{
		{OP_CMPA, 5, wordOf(5), wordOf(7), COMPARE_LESS},
		{OP_CMPA, 5, wordOf(7), wordOf(-7), COMPARE_GREATER},
		{OP_CMPA, 5, wordOf(0), word.NewWord(0, word.MINUS), COMPARE_EQUAL},
		{OP_CMPA, 0, wordOf(-5), wordOf(7), COMPARE_EQUAL},
		{OP_CMPA, 45, word.MakeWord(word.MINUS, 0, 0, 0, 1, 2), word.MakeWord(word.PLUS, 9, 9, 9, 1, 2), COMPARE_EQUAL},
		{OP_CMPA, 44, word.MakeWord(word.PLUS, 0, 0, 0, 1, 2), word.MakeWord(word.PLUS, 9, 9, 9, 2, 2), COMPARE_LESS},
		{OP_CMPX, 5, wordOf(-100), wordOf(-200), COMPARE_GREATER},
		{OP_CMP1, 5, wordOf(-100), wordOf(-100), COMPARE_EQUAL},
		{OP_CMP6, 5, wordOf(4095), wordOf(4096), COMPARE_LESS},
		{OP_CMP3, 45, wordOf(-1), wordOf(1), COMPARE_EQUAL},
	}

	for _, entry := range table {
		reg, _ := entry.op.Register()
		m, err := execute(t, func(m *Machine) {
			m.SetRegister(reg, entry.reg)
			m.Memory[1000] = entry.value
		}, MakeInstruction(entry.op, 1000, 0, entry.modifier))
		assert.NoError(err, entry)
		assert.Equal(entry.expect, m.Comparison, entry)
	}
}

func TestExec_Io(t *testing.T) {
	assert := assert.New(t)

	drum := &io.Drum{Blocks: 8}

	m, err := execute(t, func(m *Machine) {
		assert.NoError(m.SetDevice(8, drum))
		for n := range io.BLOCK_WORDS {
			m.Memory[1000+n] = wordOf(int64(n + 1))
		}
		m.X = wordOf(3)
	},
		MakeInstruction(OP_OUT, 1000, 0, 8),
		MakeInstruction(OP_JBUS, 0, 0, 8),
		MakeInstruction(OP_IN, 2000, 0, 8),
		MakeInstruction(OP_ENTX, 5, 0, ADDR_ENT),
		MakeInstruction(OP_IOC, 0, 0, 8),
		MakeInstruction(OP_JRED, 7, 0, 8),
		MakeInstruction(OP_ENTA, 1, 0, ADDR_ENT),
	)
	assert.NoError(err)
	assert.Equal(m.Memory[1000:1100], m.Memory[2000:2100])
	assert.Equal(wordOf(100), m.Memory[2099])
	assert.Equal(int64(5), drum.Current())

	// JRED jumped over ENTA to the HLT.
	assert.Equal(word.Word{}, m.A)
	assert.Equal(int64(6), m.J.Int())

	dev, err := m.GetDevice(8)
	assert.NoError(err)
	assert.Equal(Device(drum), dev)

	_, err = m.GetDevice(9)
	assert.ErrorIs(err, ErrDeviceMissing)
	_, err = m.GetDevice(UNIT_COUNT)
	assert.ErrorIs(err, ErrUnitInvalid)
	assert.NotErrorIs(err, ErrDeviceMissing)
	assert.ErrorIs(m.SetDevice(-1, drum), ErrUnitInvalid)
	assert.ErrorIs(m.SetDevice(UNIT_COUNT, drum), ErrUnitInvalid)

	// A block must fit in memory.
	m = NewMachine()
	assert.NoError(m.SetDevice(8, drum))
	m.Memory[0] = MakeInstruction(OP_IN, 3950, 0, 8).Word()
	err = m.Tick()
	assert.ErrorIs(err, ErrAddressRange)

	// Device errors stop the machine.
	m.Memory[0] = MakeInstruction(OP_OUT, 0, 0, 8).Word()
	m.X = wordOf(99)
	err = m.Tick()
	assert.ErrorIs(err, io.ErrDeviceRange)
	assert.Equal(0, m.PC)

	// Reset rewinds devices.
	assert.NoError(drum.Position(4))
	m.Reset()
	assert.Equal(int64(0), drum.Current())
}

func TestSupported(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		op       OpCode
		modifier uint32
		ok       bool
	}{
		{OP_NOP, 0, true},
		{OP_ADD, 5, true},
		{OP_ADD, FLOAT_FIELD, false},
		{OP_DIV, FLOAT_FIELD, false},
		{OP_SPEC, SPEC_HLT, true},
		{OP_SPEC, 3, false},
		{OP_SHIFT, SHIFT_SRC, true},
		{OP_SHIFT, 6, false},
		{OP_JMP, JUMP_JLE, true},
		{OP_JMP, 10, false},
		{OP_JX, RJUMP_NP, true},
		{OP_JX, 6, false},
		{OP_ENT4, ADDR_ENN, true},
		{OP_ENT4, 4, false},
		{OP_CMPX, 5, true},
		{OpCode(64), 0, false},
		{OpCode(-1), 0, false},
	}

	for _, entry := range table {
		assert.Equal(entry.ok, Supported(entry.op, entry.modifier), entry)
	}
}
