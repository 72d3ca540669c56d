package cpu

import (
	"fmt"
	"log"

	"github.com/ezrec/mix/io"
	"github.com/ezrec/mix/word"
)

// handler executes one instruction and returns the next program counter.
// A handler validates everything it needs before modifying any state.
type handler func(m *Machine, inst Instruction) (next int, err error)

// dispatch maps each operation code to its handler. A nil entry is an
// unimplemented operation code.
var dispatch [OPCODE_COUNT]handler

func init() {
	dispatch[OP_NOP] = (*Machine).execNop
	for _, op := range []OpCode{OP_ADD, OP_SUB, OP_MUL, OP_DIV} {
		dispatch[op] = (*Machine).execArith
	}
	dispatch[OP_SPEC] = (*Machine).execSpec
	dispatch[OP_SHIFT] = (*Machine).execShift
	dispatch[OP_MOVE] = (*Machine).execMove
	for op := OP_LDA; op <= OP_LDXN; op++ {
		dispatch[op] = (*Machine).execLoad
	}
	for op := OP_STA; op <= OP_STZ; op++ {
		dispatch[op] = (*Machine).execStore
	}
	for op := OP_JBUS; op <= OP_JRED; op++ {
		dispatch[op] = (*Machine).execIo
	}
	dispatch[OP_JMP] = (*Machine).execJump
	for op := OP_JA; op <= OP_JX; op++ {
		dispatch[op] = (*Machine).execRegisterJump
	}
	for op := OP_ENTA; op <= OP_ENTX; op++ {
		dispatch[op] = (*Machine).execAddress
	}
	for op := OP_CMPA; op <= OP_CMPX; op++ {
		dispatch[op] = (*Machine).execCompare
	}
}

// Supported returns true if the dispatch table implements an operation
// code and modifier combination.
func Supported(op OpCode, modifier uint32) bool {
	if op < 0 || op >= OPCODE_COUNT || dispatch[op] == nil {
		return false
	}

	switch {
	case op >= OP_ADD && op <= OP_DIV:
		return modifier != FLOAT_FIELD
	case op == OP_SPEC:
		return modifier < uint32(len(specNames))
	case op == OP_SHIFT:
		return modifier < uint32(len(shiftNames))
	case op == OP_JMP:
		return modifier < uint32(len(jumpNames))
	case op >= OP_JA && op <= OP_JX:
		return modifier < uint32(len(rjumpNames))
	case op >= OP_ENTA && op <= OP_ENTX:
		return modifier < uint32(len(addrNames))
	}

	return true
}

func unsupported(inst Instruction) error {
	return ErrUnsupported{Code: inst.Command, Field: inst.Modifier}
}

func (m *Machine) execNop(inst Instruction) (next int, err error) {
	next = m.PC + 1
	return
}

// execArith implements ADD, SUB, MUL and DIV.
func (m *Machine) execArith(inst Instruction) (next int, err error) {
	if !Supported(inst.Command, inst.Modifier) {
		err = unsupported(inst)
		return
	}

	value, err := m.operand(inst)
	if err != nil {
		return
	}

	switch inst.Command {
	case OP_ADD:
		m.add(value)
	case OP_SUB:
		m.add(value.Negate())
	case OP_MUL:
		m.mul(value)
	case OP_DIV:
		m.div(value)
	}

	next = m.PC + 1
	return
}

// add adds value to rA. A zero result keeps the sign of rA.
func (m *Machine) add(value word.Word) {
	sum := m.A.Int() + value.Int()
	result, overflow := word.WordFromInt(sum)
	if sum == 0 {
		result.WriteSign(m.A.Sign())
	}
	m.A = result
	if overflow {
		m.Overflow = true
	}
}

// mul multiplies rA by value into the ten byte rAX.
func (m *Machine) mul(value word.Word) {
	product := uint64(m.A.ReadData()) * uint64(value.ReadData())
	sign := m.A.Sign().Multiply(value.Sign())
	m.A = word.NewWord(uint32(product>>30), sign)
	m.X = word.NewWord(uint32(product&word.WORD_DATA_MASK), sign)
}

// div divides the ten byte rAX by value. The quotient goes to rA and the
// remainder, with the dividend's sign, to rX. A quotient that does not fit
// in five bytes sets overflow and leaves rA and rX unchanged.
func (m *Machine) div(value word.Word) {
	divisor := uint64(value.ReadData())
	high := uint64(m.A.ReadData())
	if divisor == 0 || high >= divisor {
		m.Overflow = true
		return
	}

	dividend := high<<30 | uint64(m.X.ReadData())
	sign := m.A.Sign()
	m.A = word.NewWord(uint32(dividend/divisor), sign.Multiply(value.Sign()))
	m.X = word.NewWord(uint32(dividend%divisor), sign)
}

// execSpec implements NUM, CHAR and HLT.
func (m *Machine) execSpec(inst Instruction) (next int, err error) {
	switch inst.Modifier {
	case SPEC_NUM:
		a, x := m.A.Bytes(), m.X.Bytes()
		var value uint64
		for _, b := range append(a[:], x[:]...) {
			value = value*10 + uint64(b%10)
		}
		m.A.WriteData(uint32(value & word.WORD_DATA_MASK))
	case SPEC_CHAR:
		value := uint64(m.A.ReadData())
		var digits [2 * word.WORD_BYTES]uint8
		for n := len(digits) - 1; n >= 0; n-- {
			digits[n] = 30 + uint8(value%10)
			value /= 10
		}
		m.A = word.MakeWord(m.A.Sign(), digits[:word.WORD_BYTES]...)
		m.X = word.MakeWord(m.X.Sign(), digits[word.WORD_BYTES:]...)
	case SPEC_HLT:
		if m.Verbose {
			log.Printf("cpu: halt at %04d", m.PC)
		}
		m.Halted = true
	default:
		err = unsupported(inst)
		return
	}

	next = m.PC + 1
	return
}

// shiftBytes shifts a value of width bytes by count bytes, left when
// count is positive.
func shiftBytes(value uint64, width int, count int) uint64 {
	if count >= width || -count >= width {
		return 0
	}
	mask := uint64(1)<<(6*width) - 1
	if count >= 0 {
		return (value << (6 * count)) & mask
	}
	return value >> (6 * -count)
}

// rotateBytes rotates a value of width bytes left by count bytes.
func rotateBytes(value uint64, width int, count int) uint64 {
	count %= width
	if count == 0 {
		return value
	}
	mask := uint64(1)<<(6*width) - 1
	return ((value << (6 * count)) | (value >> (6 * (width - count)))) & mask
}

// execShift implements SLA, SRA, SLAX, SRAX, SLC and SRC. M is the shift
// count in bytes. Signs are not affected.
func (m *Machine) execShift(inst Instruction) (next int, err error) {
	if !Supported(inst.Command, inst.Modifier) {
		err = unsupported(inst)
		return
	}

	count, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}
	if count < 0 {
		err = fmt.Errorf("%w: %d", ErrShiftNegative, count)
		return
	}

	const width = 2 * word.WORD_BYTES

	a := uint64(m.A.ReadData())
	ax := a<<30 | uint64(m.X.ReadData())

	switch inst.Modifier {
	case SHIFT_SLA:
		m.A.WriteData(uint32(shiftBytes(a, word.WORD_BYTES, count)))
	case SHIFT_SRA:
		m.A.WriteData(uint32(shiftBytes(a, word.WORD_BYTES, -count)))
	case SHIFT_SLAX:
		ax = shiftBytes(ax, width, count)
	case SHIFT_SRAX:
		ax = shiftBytes(ax, width, -count)
	case SHIFT_SLC:
		ax = rotateBytes(ax, width, count)
	case SHIFT_SRC:
		ax = rotateBytes(ax, width, width-count%width)
	}

	if inst.Modifier >= SHIFT_SLAX {
		m.A.WriteData(uint32(ax >> 30))
		m.X.WriteData(uint32(ax & word.WORD_DATA_MASK))
	}

	next = m.PC + 1
	return
}

// execMove copies F words from M to the address in rI1, and advances rI1
// by F.
func (m *Machine) execMove(inst Instruction) (next int, err error) {
	from, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}

	count := int(inst.Modifier)
	to := int(m.I[0].Int())

	if count > 0 {
		for _, address := range []int{from, from + count - 1, to, to + count - 1} {
			err = checkAddress(address)
			if err != nil {
				return
			}
		}
	}

	for n := range count {
		m.Memory[to+n] = m.Memory[from+n]
	}
	m.I[0].SetInt(int64(to+count), m.I[0].Sign())

	next = m.PC + 1
	return
}

// execLoad implements LDA-LDX and the negated LDAN-LDXN.
func (m *Machine) execLoad(inst Instruction) (next int, err error) {
	value, err := m.operand(inst)
	if err != nil {
		return
	}

	if inst.Command >= OP_LDAN {
		value = value.Negate()
	}

	reg, _ := inst.Command.Register()
	m.SetRegister(reg, value)

	next = m.PC + 1
	return
}

// execStore implements STA-STX, STJ and STZ. The field of the word at M
// is replaced by the rightmost bytes of the register, and by its sign if
// the field includes the sign.
func (m *Machine) execStore(inst Instruction) (next int, err error) {
	address, err := m.memoryAddress(inst)
	if err != nil {
		return
	}

	spec, err := m.fieldSpec(inst)
	if err != nil {
		return
	}

	var src word.Word
	switch inst.Command {
	case OP_STJ:
		src = m.J.Word()
	case OP_STZ:
		// +0
	default:
		reg, _ := inst.Command.Register()
		src = m.Register(reg)
	}

	m.Memory[address].WriteField(spec, src)

	next = m.PC + 1
	return
}

// execIo implements JBUS, IOC, IN, OUT and JRED on the unit F.
func (m *Machine) execIo(inst Instruction) (next int, err error) {
	address, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}

	dev, err := m.GetDevice(int(inst.Modifier))
	if err != nil {
		return
	}

	next = m.PC + 1

	switch inst.Command {
	case OP_JBUS:
		if dev.Busy() {
			next, err = m.jump(address, true)
		}
	case OP_JRED:
		if !dev.Busy() {
			next, err = m.jump(address, true)
		}
	case OP_IOC:
		err = dev.Control(int64(address), m.X)
	case OP_IN, OP_OUT:
		err = m.transfer(dev, inst.Command == OP_IN, address)
	}

	return
}

// transfer moves one block between memory at address and a device. Block
// addressed devices are first positioned to the block in rX.
func (m *Machine) transfer(dev Device, input bool, address int) (err error) {
	size := dev.BlockSize()
	for _, addr := range []int{address, address + size - 1} {
		err = checkAddress(addr)
		if err != nil {
			return
		}
	}

	if positioner, ok := dev.(io.Positioner); ok {
		err = positioner.Position(m.X.Int())
		if err != nil {
			return
		}
	}

	block := make([]word.Word, size)
	if input {
		err = dev.In(block)
		if err == nil {
			copy(m.Memory[address:], block)
		}
	} else {
		copy(block, m.Memory[address:address+size])
		err = dev.Out(block)
	}

	return
}

// jump validates a jump target, and records the address of the next
// instruction in rJ when save is set.
func (m *Machine) jump(address int, save bool) (next int, err error) {
	err = checkAddress(address)
	if err != nil {
		return
	}

	if save {
		m.J.SetInt(int64(m.PC+1), word.PLUS)
	}

	next = address
	return
}

// execJump implements JMP, JSJ, JOV, JNOV and the comparison jumps.
// JOV and JNOV turn overflow off; the comparison jumps reset the
// comparison indicator.
func (m *Machine) execJump(inst Instruction) (next int, err error) {
	address, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}

	less := m.Comparison == COMPARE_LESS
	equal := m.Comparison == COMPARE_EQUAL
	greater := m.Comparison == COMPARE_GREATER

	var taken bool
	save := true
	switch inst.Modifier {
	case JUMP_JMP:
		taken = true
	case JUMP_JSJ:
		taken = true
		save = false
	case JUMP_JOV:
		taken = m.Overflow
	case JUMP_JNOV:
		taken = !m.Overflow
	case JUMP_JL:
		taken = less
	case JUMP_JE:
		taken = equal
	case JUMP_JG:
		taken = greater
	case JUMP_JGE:
		taken = greater || equal
	case JUMP_JNE:
		taken = less || greater
	case JUMP_JLE:
		taken = less || equal
	default:
		err = unsupported(inst)
		return
	}

	if taken {
		err = checkAddress(address)
		if err != nil {
			return
		}
	}

	switch inst.Modifier {
	case JUMP_JOV, JUMP_JNOV:
		m.Overflow = false
	case JUMP_JL, JUMP_JE, JUMP_JG, JUMP_JGE, JUMP_JNE, JUMP_JLE:
		m.Comparison = COMPARE_NONE
	}

	next = m.PC + 1
	if taken {
		next, err = m.jump(address, save)
	}

	return
}

// execRegisterJump implements the N, Z, P, NN, NZ and NP jumps on rA,
// rI1-rI6 and rX. Both +0 and -0 are zero.
func (m *Machine) execRegisterJump(inst Instruction) (next int, err error) {
	address, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}

	reg, _ := inst.Command.Register()
	value := m.Register(reg).Int()

	var taken bool
	switch inst.Modifier {
	case RJUMP_N:
		taken = value < 0
	case RJUMP_Z:
		taken = value == 0
	case RJUMP_P:
		taken = value > 0
	case RJUMP_NN:
		taken = value >= 0
	case RJUMP_NZ:
		taken = value != 0
	case RJUMP_NP:
		taken = value <= 0
	default:
		err = unsupported(inst)
		return
	}

	next = m.PC + 1
	if taken {
		next, err = m.jump(address, true)
	}

	return
}

// execAddress implements INC, DEC, ENT and ENN on rA, rI1-rI6 and rX.
func (m *Machine) execAddress(inst Instruction) (next int, err error) {
	if !Supported(inst.Command, inst.Modifier) {
		err = unsupported(inst)
		return
	}

	address, err := m.effectiveAddress(inst)
	if err != nil {
		return
	}

	reg, _ := inst.Command.Register()

	switch inst.Modifier {
	case ADDR_INC:
		m.increment(reg, int64(address))
	case ADDR_DEC:
		m.increment(reg, -int64(address))
	case ADDR_ENT:
		m.enter(reg, int64(address), inst.Sign)
	case ADDR_ENN:
		m.enter(reg, -int64(address), inst.Sign.Negate())
	}

	next = m.PC + 1
	return
}

// increment adds delta to a register. A zero result keeps the register's
// sign. Only rA and rX report overflow.
func (m *Machine) increment(reg int, delta int64) {
	current := m.Register(reg)
	sum := current.Int() + delta
	result, overflow := word.WordFromInt(sum)
	if sum == 0 {
		result.WriteSign(current.Sign())
	}
	if overflow && (reg == REG_A || reg == REG_X) {
		m.Overflow = true
	}
	m.SetRegister(reg, result)
}

// enter loads a value into a register, with zeroSign when it is zero.
func (m *Machine) enter(reg int, value int64, zeroSign word.Sign) {
	result, _ := word.WordFromInt(value)
	if value == 0 {
		result.WriteSign(zeroSign)
	}
	m.SetRegister(reg, result)
}

// execCompare implements CMPA, CMP1-CMP6 and CMPX, comparing field F of
// the register with field F of the word at M.
func (m *Machine) execCompare(inst Instruction) (next int, err error) {
	address, err := m.memoryAddress(inst)
	if err != nil {
		return
	}

	spec, err := m.fieldSpec(inst)
	if err != nil {
		return
	}

	reg, _ := inst.Command.Register()
	left := m.Register(reg).Field(spec).Int()
	right := m.Memory[address].Field(spec).Int()

	switch {
	case left < right:
		m.Comparison = COMPARE_LESS
	case left > right:
		m.Comparison = COMPARE_GREATER
	default:
		m.Comparison = COMPARE_EQUAL
	}

	next = m.PC + 1
	return
}
