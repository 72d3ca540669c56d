package word

import (
	"fmt"

	"github.com/ezrec/mix/field"
)

const (
	REGISTER_BYTES      = 2      // Data bytes in a register.
	REGISTER_DATA_MASK  = 0x0fff // Magnitude bits of a register.
	REGISTER_SIGN_MASK  = 0x1000 // Sign bit of a register.
	REGISTER_VALUE_MASK = REGISTER_SIGN_MASK | REGISTER_DATA_MASK
)

// Register is a 13 bit sign-magnitude quantity: a sign and two 6-bit bytes.
// The zero value is +0.
type Register struct {
	data uint16
}

// NewRegister creates a register from a magnitude and sign. The magnitude
// is truncated to 12 bits.
func NewRegister(number uint16, sign Sign) (r Register) {
	r.Write(number, sign)
	return
}

// RegisterFromBits creates a register from a raw pattern, sign in bit 12.
func RegisterFromBits(bits uint16) Register {
	return Register{data: bits & REGISTER_VALUE_MASK}
}

// RegisterFromWord keeps the sign and the two least significant bytes of a
// word. overflow is set if any higher byte was non-zero.
func RegisterFromWord(w Word) (r Register, overflow bool) {
	overflow = w.ReadData() > REGISTER_DATA_MASK
	r.Write(uint16(w.ReadData()&REGISTER_DATA_MASK), w.Sign())
	return
}

// Read returns the magnitude and sign as a raw bit pattern.
func (r Register) Read() uint16 {
	return r.data & REGISTER_VALUE_MASK
}

// ReadData returns the magnitude.
func (r Register) ReadData() uint16 {
	return r.data & REGISTER_DATA_MASK
}

// Sign returns the sign of the register.
func (r Register) Sign() Sign {
	if r.data&REGISTER_SIGN_MASK != 0 {
		return MINUS
	}
	return PLUS
}

// ReadWithModifier returns positions L..R (R at most 2) concatenated,
// with the same sign convention as Word.ReadWithModifier.
func (r Register) ReadWithModifier(modifier uint32) uint16 {
	return field.Extract(r.data, REGISTER_BYTES, field.MustParse(modifier, REGISTER_BYTES))
}

// GetByte returns position index (0..2), position 0 being the sign bit.
func (r Register) GetByte(index int) uint8 {
	return field.Byte(r.data, REGISTER_BYTES, index)
}

// Write replaces magnitude and sign.
func (r *Register) Write(number uint16, sign Sign) {
	r.data = number & REGISTER_DATA_MASK
	if sign == MINUS {
		r.data |= REGISTER_SIGN_MASK
	}
}

// WriteData replaces the magnitude, preserving the sign.
func (r *Register) WriteData(number uint16) {
	r.data = (r.data & REGISTER_SIGN_MASK) | (number & REGISTER_DATA_MASK)
}

// WriteSign replaces the sign, preserving the magnitude.
func (r *Register) WriteSign(sign Sign) {
	r.Write(r.ReadData(), sign)
}

// Int returns the signed value.
func (r Register) Int() int64 {
	value := int64(r.ReadData())
	if r.Sign() == MINUS {
		value = -value
	}
	return value
}

// SetInt stores an integer, keeping sign on zero if zeroSign says so.
// overflow is set if the magnitude does not fit in 12 bits; the stored
// magnitude is then taken modulo 2^12.
func (r *Register) SetInt(value int64, zeroSign Sign) (overflow bool) {
	w, overflow := WordFromInt(value)
	sign := w.Sign()
	if value == 0 {
		sign = zeroSign
	}
	overflow = overflow || w.ReadData() > REGISTER_DATA_MASK
	r.Write(uint16(w.ReadData()&REGISTER_DATA_MASK), sign)
	return
}

// IsZero returns true for +0 and -0.
func (r Register) IsZero() bool {
	return r.ReadData() == 0
}

// Word returns the register as a five byte word: sign, three zero bytes,
// then the register's two bytes.
func (r Register) Word() Word {
	return NewWord(uint32(r.ReadData()), r.Sign())
}

// String renders the sign followed by the decimal magnitude.
func (r Register) String() string {
	return fmt.Sprintf("%v%d", r.Sign(), r.ReadData())
}
