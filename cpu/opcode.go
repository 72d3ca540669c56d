package cpu

import (
	"fmt"
)

// OpCode is the operation code C of an instruction.
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	OP_NOP   = OpCode(0)  // NOP
	OP_ADD   = OpCode(1)  // ADD
	OP_SUB   = OpCode(2)  // SUB
	OP_MUL   = OpCode(3)  // MUL
	OP_DIV   = OpCode(4)  // DIV
	OP_SPEC  = OpCode(5)  // SPEC
	OP_SHIFT = OpCode(6)  // SHIFT
	OP_MOVE  = OpCode(7)  // MOVE
	OP_LDA   = OpCode(8)  // LDA
	OP_LD1   = OpCode(9)  // LD1
	OP_LD2   = OpCode(10) // LD2
	OP_LD3   = OpCode(11) // LD3
	OP_LD4   = OpCode(12) // LD4
	OP_LD5   = OpCode(13) // LD5
	OP_LD6   = OpCode(14) // LD6
	OP_LDX   = OpCode(15) // LDX
	OP_LDAN  = OpCode(16) // LDAN
	OP_LD1N  = OpCode(17) // LD1N
	OP_LD2N  = OpCode(18) // LD2N
	OP_LD3N  = OpCode(19) // LD3N
	OP_LD4N  = OpCode(20) // LD4N
	OP_LD5N  = OpCode(21) // LD5N
	OP_LD6N  = OpCode(22) // LD6N
	OP_LDXN  = OpCode(23) // LDXN
	OP_STA   = OpCode(24) // STA
	OP_ST1   = OpCode(25) // ST1
	OP_ST2   = OpCode(26) // ST2
	OP_ST3   = OpCode(27) // ST3
	OP_ST4   = OpCode(28) // ST4
	OP_ST5   = OpCode(29) // ST5
	OP_ST6   = OpCode(30) // ST6
	OP_STX   = OpCode(31) // STX
	OP_STJ   = OpCode(32) // STJ
	OP_STZ   = OpCode(33) // STZ
	OP_JBUS  = OpCode(34) // JBUS
	OP_IOC   = OpCode(35) // IOC
	OP_IN    = OpCode(36) // IN
	OP_OUT   = OpCode(37) // OUT
	OP_JRED  = OpCode(38) // JRED
	OP_JMP   = OpCode(39) // JMP
	OP_JA    = OpCode(40) // JA
	OP_J1    = OpCode(41) // J1
	OP_J2    = OpCode(42) // J2
	OP_J3    = OpCode(43) // J3
	OP_J4    = OpCode(44) // J4
	OP_J5    = OpCode(45) // J5
	OP_J6    = OpCode(46) // J6
	OP_JX    = OpCode(47) // JX
	OP_ENTA  = OpCode(48) // ENTA
	OP_ENT1  = OpCode(49) // ENT1
	OP_ENT2  = OpCode(50) // ENT2
	OP_ENT3  = OpCode(51) // ENT3
	OP_ENT4  = OpCode(52) // ENT4
	OP_ENT5  = OpCode(53) // ENT5
	OP_ENT6  = OpCode(54) // ENT6
	OP_ENTX  = OpCode(55) // ENTX
	OP_CMPA  = OpCode(56) // CMPA
	OP_CMP1  = OpCode(57) // CMP1
	OP_CMP2  = OpCode(58) // CMP2
	OP_CMP3  = OpCode(59) // CMP3
	OP_CMP4  = OpCode(60) // CMP4
	OP_CMP5  = OpCode(61) // CMP5
	OP_CMP6  = OpCode(62) // CMP6
	OP_CMPX  = OpCode(63) // CMPX

	OPCODE_COUNT = 64 // Number of operation codes.
)

// Modifier variants of OP_SPEC.
const (
	SPEC_NUM  = 0
	SPEC_CHAR = 1
	SPEC_HLT  = 2
)

// Modifier variants of OP_SHIFT.
const (
	SHIFT_SLA  = 0
	SHIFT_SRA  = 1
	SHIFT_SLAX = 2
	SHIFT_SRAX = 3
	SHIFT_SLC  = 4
	SHIFT_SRC  = 5
)

// Modifier variants of OP_JMP.
const (
	JUMP_JMP  = 0
	JUMP_JSJ  = 1
	JUMP_JOV  = 2
	JUMP_JNOV = 3
	JUMP_JL   = 4
	JUMP_JE   = 5
	JUMP_JG   = 6
	JUMP_JGE  = 7
	JUMP_JNE  = 8
	JUMP_JLE  = 9
)

// Modifier variants of the register jumps OP_JA..OP_JX.
const (
	RJUMP_N  = 0 // Negative.
	RJUMP_Z  = 1 // Zero.
	RJUMP_P  = 2 // Positive.
	RJUMP_NN = 3 // Non-negative.
	RJUMP_NZ = 4 // Non-zero.
	RJUMP_NP = 5 // Non-positive.
)

// Modifier variants of the address transfers OP_ENTA..OP_ENTX.
const (
	ADDR_INC = 0
	ADDR_DEC = 1
	ADDR_ENT = 2
	ADDR_ENN = 3
)

// FLOAT_FIELD selects the floating point variant of ADD, SUB, MUL and DIV.
const FLOAT_FIELD = 6

var (
	specNames  = []string{"NUM", "CHAR", "HLT"}
	shiftNames = []string{"SLA", "SRA", "SLAX", "SRAX", "SLC", "SRC"}
	jumpNames  = []string{"JMP", "JSJ", "JOV", "JNOV", "JL", "JE", "JG", "JGE", "JNE", "JLE"}
	rjumpNames = []string{"N", "Z", "P", "NN", "NZ", "NP"}
	addrNames  = []string{"INC", "DEC", "ENT", "ENN"}
	floatNames = map[OpCode]string{OP_ADD: "FADD", OP_SUB: "FSUB", OP_MUL: "FMUL", OP_DIV: "FDIV"}

	// Register suffixes, in register family order.
	regNames = []string{"A", "1", "2", "3", "4", "5", "6", "X"}
)

// Register returns the register a family opcode acts on: 0 for rA, 1-6 for
// rI1-rI6, 7 for rX. ok is false for opcodes outside the register families.
func (op OpCode) Register() (reg int, ok bool) {
	for _, base := range []OpCode{OP_LDA, OP_LDAN, OP_STA, OP_JA, OP_ENTA, OP_CMPA} {
		if op >= base && op < base+8 {
			return int(op - base), true
		}
	}
	return
}

// Mnemonic returns the assembler mnemonic of an operation code and
// modifier pair, resolving the modifier variants of each family.
func Mnemonic(op OpCode, modifier uint32) string {
	variant := func(names []string) string {
		if int(modifier) < len(names) {
			return names[modifier]
		}
		return fmt.Sprintf("%v(%d)", op, modifier)
	}

	switch {
	case op >= OP_ADD && op <= OP_DIV && modifier == FLOAT_FIELD:
		return floatNames[op]
	case op == OP_SPEC:
		return variant(specNames)
	case op == OP_SHIFT:
		return variant(shiftNames)
	case op == OP_JMP:
		return variant(jumpNames)
	case op >= OP_JA && op <= OP_JX:
		if int(modifier) < len(rjumpNames) {
			return "J" + regNames[op-OP_JA] + rjumpNames[modifier]
		}
		return fmt.Sprintf("%v(%d)", op, modifier)
	case op >= OP_ENTA && op <= OP_ENTX:
		if int(modifier) < len(addrNames) {
			return addrNames[modifier] + regNames[op-OP_ENTA]
		}
		return fmt.Sprintf("%v(%d)", op, modifier)
	}

	return op.String()
}
