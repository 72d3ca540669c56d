// Package field implements MIX field specifications over sign-magnitude
// bit patterns of any byte width.
//
// A container of width n holds n 6-bit bytes and a sign. Its raw bit pattern
// keeps the magnitude in bits 0..6n-1 and the sign in bit 6n (set when
// negative). Positions are numbered 0..n: position 0 is the sign, positions
// 1..n are the bytes counted from the most significant.
//
// A field specification (L:R) selects positions L through R inclusive and is
// written as the two digit decimal modifier 10*L+R.
package field

import (
	"errors"
	"fmt"

	"github.com/ezrec/mix/translate"
)

const (
	BYTE_BITS = 6                    // Bits in a MIX byte.
	BYTE_MASK = (1 << BYTE_BITS) - 1 // Mask of a single MIX byte.
	MAX_RIGHT = 5                    // Largest right position of any field.
)

var (
	ErrFieldInvalid = errors.New(translate.From("field specification invalid"))
)

// Bits is any unsigned integer large enough to hold a container pattern.
type Bits interface {
	~uint16 | ~uint32 | ~uint64
}

// Spec is a decoded field specification.
type Spec struct {
	Left  int
	Right int
}

// Split decomposes a modifier into its left and right positions.
// It panics unless left <= right <= MAX_RIGHT.
func Split(modifier uint32) (left, right uint32) {
	left, right = modifier/10, modifier%10
	if left > right || right > MAX_RIGHT {
		panic(fmt.Sprintf("field: modifier %d out of bounds", modifier))
	}
	return
}

// Parse decodes a modifier for a container of the given width, reporting
// ErrFieldInvalid rather than panicking.
func Parse(modifier uint32, width int) (spec Spec, err error) {
	spec = Spec{Left: int(modifier / 10), Right: int(modifier % 10)}
	if !spec.Valid(width) {
		err = fmt.Errorf("%w: %v", ErrFieldInvalid, modifier)
	}
	return
}

// MustParse decodes a modifier for a container of the given width, and
// panics if the field does not fit.
func MustParse(modifier uint32, width int) Spec {
	left, right := Split(modifier)
	spec := Spec{Left: int(left), Right: int(right)}
	spec.Check(width)
	return spec
}

// Valid returns true if the field fits a container of the given width.
func (s Spec) Valid(width int) bool {
	return s.Left >= 0 && s.Left <= s.Right && s.Right <= width
}

// Check panics if the field does not fit a container of the given width.
func (s Spec) Check(width int) {
	if !s.Valid(width) {
		panic(fmt.Sprintf("field: %v exceeds width %d", s, width))
	}
}

// Modifier returns the two digit encoding of the field.
func (s Spec) Modifier() uint32 {
	return uint32(s.Left*10 + s.Right)
}

// HasSign returns true if the field includes the sign position.
func (s Spec) HasSign() bool {
	return s.Left == 0
}

// Bytes returns the number of data bytes the field covers.
func (s Spec) Bytes() int {
	return s.Right - max(s.Left, 1) + 1
}

func (s Spec) String() string {
	return fmt.Sprintf("(%d:%d)", s.Left, s.Right)
}

// SignBit returns the sign bit of a container of the given width.
func SignBit[T Bits](width int) T {
	return T(1) << (BYTE_BITS * width)
}

// DataMask returns the magnitude mask of a container of the given width.
func DataMask[T Bits](width int) T {
	return SignBit[T](width) - 1
}

// ValueMask returns the mask of magnitude and sign of a container.
func ValueMask[T Bits](width int) T {
	return SignBit[T](width) | DataMask[T](width)
}

// Byte returns position index of the pattern. Position 0 yields the sign
// bit as 0 or 1. It panics if index is outside 0..width.
func Byte[T Bits](bits T, width int, index int) uint8 {
	if index < 0 || index > width {
		panic(fmt.Sprintf("field: byte %d outside width %d", index, width))
	}
	bits &= ValueMask[T](width)
	return uint8((bits >> (BYTE_BITS * (width - index))) & BYTE_MASK)
}

// Extract concatenates positions Left..Right of the pattern, most
// significant first. When the field starts at position 0 the sign bit is
// the leading bit of the result.
func Extract[T Bits](bits T, width int, spec Spec) (result T) {
	spec.Check(width)
	for index := spec.Left; index <= spec.Right; index++ {
		result <<= BYTE_BITS
		result |= T(Byte(bits, width, index))
	}
	return
}

// Magnitude concatenates the data bytes of the field, ignoring the sign.
func Magnitude[T Bits](bits T, width int, spec Spec) (result T) {
	spec.Check(width)
	for index := max(spec.Left, 1); index <= spec.Right; index++ {
		result <<= BYTE_BITS
		result |= T(Byte(bits, width, index))
	}
	return
}

// Inject stores src into the field of dst. The field's data bytes are
// replaced by the rightmost bytes of src's magnitude, and the sign of dst
// is replaced by the sign of src when the field includes position 0.
// Both patterns have the same width.
func Inject[T Bits](dst T, width int, spec Spec, src T) T {
	spec.Check(width)

	dst &= ValueMask[T](width)
	src &= ValueMask[T](width)

	if spec.HasSign() {
		sign := SignBit[T](width)
		dst = (dst &^ sign) | (src & sign)
	}

	shift := 0
	for index := spec.Right; index >= max(spec.Left, 1); index-- {
		pos := BYTE_BITS * (width - index)
		value := (src >> shift) & BYTE_MASK
		dst = (dst &^ (T(BYTE_MASK) << pos)) | (value << pos)
		shift += BYTE_BITS
	}

	return dst
}
