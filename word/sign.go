// Package word implements the MIX storage units: the five byte Word used
// for memory, rA and rX, and the two byte Register used for the index and
// jump registers. Both are sign-magnitude; -0 and +0 are distinct patterns
// that compare equal.
package word

// Sign of a sign-magnitude value. The value is the raw sign bit.
type Sign int

const (
	PLUS  = Sign(0) // +
	MINUS = Sign(1) // -
)

// SignOf returns the sign of an integer, PLUS for zero.
func SignOf(value int64) Sign {
	if value < 0 {
		return MINUS
	}
	return PLUS
}

// Negate returns the opposite sign.
func (s Sign) Negate() Sign {
	return s ^ 1
}

// Multiply returns the sign of a product of values with signs s and o.
func (s Sign) Multiply(o Sign) Sign {
	return s ^ o
}

func (s Sign) String() string {
	if s == MINUS {
		return "-"
	}
	return "+"
}
