// Package cpu implements the execution core of a MIX machine.
//
// The machine has a 4000 word memory, the accumulator rA, the extension
// register rX, six index registers rI1-rI6, the jump register rJ, an
// overflow toggle and a comparison indicator. Instructions are stored in
// memory as words and fetched through an explicit program counter.
//
// An instruction word is laid out as
//
//	bit  30     sign of the address
//	bits 18-29  address magnitude (bytes 1-2)
//	bits 12-17  index register I (byte 3)
//	bits  6-11  modifier F, usually a field specification (byte 4)
//	bits  0-5   operation code C (byte 5)
package cpu
