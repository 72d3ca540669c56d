package word

import (
	"fmt"
	"strings"

	"github.com/ezrec/mix/field"
)

const (
	WORD_BYTES      = 5           // Data bytes in a word.
	WORD_DATA_MASK  = 0x3fff_ffff // Magnitude bits of a word.
	WORD_SIGN_MASK  = 0x4000_0000 // Sign bit of a word.
	WORD_VALUE_MASK = WORD_SIGN_MASK | WORD_DATA_MASK
)

// Word is a 31 bit sign-magnitude quantity: a sign and five 6-bit bytes.
// The zero value is +0.
type Word struct {
	data uint32
}

// NewWord creates a word from a magnitude and sign. The magnitude is
// truncated to 30 bits.
func NewWord(number uint32, sign Sign) (w Word) {
	w.Write(number, sign)
	return
}

// WordFromBits creates a word from a raw pattern, sign in bit 30.
func WordFromBits(bits uint32) Word {
	return Word{data: bits & WORD_VALUE_MASK}
}

// MakeWord creates a word from a sign and up to five bytes, the first
// byte being the most significant. Missing trailing bytes are zero.
func MakeWord(sign Sign, bytes ...uint8) (w Word) {
	if len(bytes) > WORD_BYTES {
		panic(fmt.Sprintf("word: %d bytes", len(bytes)))
	}
	var number uint32
	for n := range WORD_BYTES {
		number <<= field.BYTE_BITS
		if n < len(bytes) {
			number |= uint32(bytes[n] & field.BYTE_MASK)
		}
	}
	w.Write(number, sign)
	return
}

// WordFromInt converts an integer to a word. If the magnitude does not fit
// in 30 bits, overflow is set and the magnitude is taken modulo 2^30.
// Zero is +0.
func WordFromInt(value int64) (w Word, overflow bool) {
	sign := SignOf(value)
	magnitude := uint64(value)
	if sign == MINUS {
		magnitude = uint64(-value)
	}
	overflow = magnitude > WORD_DATA_MASK
	w.Write(uint32(magnitude&WORD_DATA_MASK), sign)
	return
}

// Read returns the magnitude and sign as a raw bit pattern.
func (w Word) Read() uint32 {
	return w.data & WORD_VALUE_MASK
}

// ReadData returns the magnitude.
func (w Word) ReadData() uint32 {
	return w.data & WORD_DATA_MASK
}

// Sign returns the sign of the word.
func (w Word) Sign() Sign {
	if w.data&WORD_SIGN_MASK != 0 {
		return MINUS
	}
	return PLUS
}

// ReadWithModifier returns positions L..R of the word concatenated, most
// significant first. Position 0 is the sign bit, so a field starting at 0
// carries the sign as its leading bit and (0:0) yields 0 or 1.
// It panics on an invalid field.
func (w Word) ReadWithModifier(modifier uint32) uint32 {
	return field.Extract(w.data, WORD_BYTES, field.MustParse(modifier, WORD_BYTES))
}

// GetByte returns position index (0..5), position 0 being the sign bit.
func (w Word) GetByte(index int) uint8 {
	return field.Byte(w.data, WORD_BYTES, index)
}

// Bytes returns the five data bytes, most significant first.
func (w Word) Bytes() (bytes [WORD_BYTES]uint8) {
	for n := range bytes {
		bytes[n] = w.GetByte(n + 1)
	}
	return
}

// Field returns the value of a field as a word: the field's bytes right
// aligned, with the word's sign if the field includes position 0 and +
// otherwise.
func (w Word) Field(spec field.Spec) Word {
	magnitude := field.Magnitude(w.data, WORD_BYTES, spec)
	sign := PLUS
	if spec.HasSign() {
		sign = w.Sign()
	}
	return NewWord(magnitude, sign)
}

// WriteField replaces a field with the rightmost bytes of src, and the sign
// with src's sign when the field includes position 0.
func (w *Word) WriteField(spec field.Spec, src Word) {
	w.data = field.Inject(w.data, WORD_BYTES, spec, src.data)
}

// Write replaces magnitude and sign.
func (w *Word) Write(number uint32, sign Sign) {
	w.data = number & WORD_DATA_MASK
	if sign == MINUS {
		w.data |= WORD_SIGN_MASK
	}
}

// WriteData replaces the magnitude, preserving the sign.
func (w *Word) WriteData(number uint32) {
	w.data = (w.data & WORD_SIGN_MASK) | (number & WORD_DATA_MASK)
}

// WriteSign replaces the sign, preserving the magnitude.
func (w *Word) WriteSign(sign Sign) {
	w.Write(w.ReadData(), sign)
}

// Int returns the signed value. Both +0 and -0 are 0.
func (w Word) Int() int64 {
	value := int64(w.ReadData())
	if w.Sign() == MINUS {
		value = -value
	}
	return value
}

// IsZero returns true for +0 and -0.
func (w Word) IsZero() bool {
	return w.ReadData() == 0
}

// Negate returns the word with the opposite sign.
func (w Word) Negate() Word {
	return NewWord(w.ReadData(), w.Sign().Negate())
}

// String renders the sign followed by the five bytes in decimal.
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteString(w.Sign().String())
	for n, b := range w.Bytes() {
		if n > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02d", b)
	}
	return sb.String()
}
