package io

import (
	"fmt"
	"io"
	"slices"

	"github.com/ezrec/mix/word"
)

// DRUM_DEFAULT_BLOCKS is the capacity of a drum with no Blocks set.
const DRUM_DEFAULT_BLOCKS = 4096

// Drum is a random access store of 100 word blocks. The machine positions
// the drum to the block in rX before each transfer; IOC does the same
// without a transfer. Unwritten blocks read as +0.
type Drum struct {
	Blocks int                    // Capacity in blocks.
	Data   map[int64][]word.Word // Written blocks, by position.

	position int64
}

var _ Device = (*Drum)(nil)
var _ Positioner = (*Drum)(nil)

func (drum *Drum) capacity() int64 {
	if drum.Blocks <= 0 {
		return DRUM_DEFAULT_BLOCKS
	}
	return int64(drum.Blocks)
}

// BlockSize of a drum is 100 words.
func (drum *Drum) BlockSize() int {
	return BLOCK_WORDS
}

// Busy is always false; drum transfers complete immediately.
func (drum *Drum) Busy() bool {
	return false
}

// Position selects the block for the next transfer.
func (drum *Drum) Position(block int64) (err error) {
	if block < 0 || block >= drum.capacity() {
		err = fmt.Errorf("%w: block %d", ErrDeviceRange, block)
		return
	}
	drum.position = block
	return
}

// Current returns the selected block.
func (drum *Drum) Current() int64 {
	return drum.position
}

// In copies the selected block.
func (drum *Drum) In(block []word.Word) (err error) {
	data, ok := drum.Data[drum.position]
	if !ok {
		clear(block)
		return
	}
	copy(block, data)
	return
}

// Out replaces the selected block.
func (drum *Drum) Out(block []word.Word) (err error) {
	if drum.Data == nil {
		drum.Data = make(map[int64][]word.Word)
	}
	drum.Data[drum.position] = slices.Clone(block)
	return
}

// Control positions the drum to the block in rX. op must be 0.
func (drum *Drum) Control(op int64, x word.Word) (err error) {
	if op != 0 {
		err = ErrControl(op)
		return
	}
	return drum.Position(x.Int())
}

// Rewind selects block 0. The stored blocks are kept.
func (drum *Drum) Rewind() {
	drum.position = 0
}

// Unmarshal loads drum blocks from a reader, replacing any existing data.
// The image holds whole blocks, block 0 first.
func (drum *Drum) Unmarshal(file io.Reader) (err error) {
	buf, err := io.ReadAll(file)
	if err != nil {
		return
	}

	blockBytes := drum.BlockSize() * WORD_SIZE
	count := int64(len(buf) / blockBytes)
	if len(buf)%blockBytes != 0 || count > drum.capacity() {
		err = fmt.Errorf("%w: %d bytes", ErrImageSize, len(buf))
		return
	}

	drum.Data = make(map[int64][]word.Word)
	for index := range count {
		block := make([]word.Word, drum.BlockSize())
		decodeBlock(block, buf[index*int64(blockBytes):])
		drum.Data[index] = block
	}
	drum.position = 0

	return
}

// Marshal writes the drum's blocks to a writer, up to the last written
// block.
func (drum *Drum) Marshal(file io.Writer) (err error) {
	var count int64
	for index := range drum.Data {
		count = max(count, index+1)
	}

	empty := make([]word.Word, drum.BlockSize())
	var buf []byte
	for index := range count {
		block, ok := drum.Data[index]
		if !ok {
			block = empty
		}
		buf = encodeBlock(buf, block)
	}

	_, err = file.Write(buf)
	return
}
