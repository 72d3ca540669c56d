package io

import (
	"encoding/binary"

	"github.com/ezrec/mix/word"
)

// WORD_SIZE is the external size of a word: its raw pattern as a big
// endian uint32.
const WORD_SIZE = 4

// encodeBlock appends the external form of block to buf.
func encodeBlock(buf []byte, block []word.Word) []byte {
	for _, w := range block {
		buf = binary.BigEndian.AppendUint32(buf, w.Read())
	}
	return buf
}

// decodeBlock fills block from its external form.
func decodeBlock(block []word.Word, buf []byte) {
	for n := range block {
		block[n] = word.WordFromBits(binary.BigEndian.Uint32(buf[n*WORD_SIZE:]))
	}
}
