package io

import (
	"errors"
	"io"

	"github.com/ezrec/mix/word"
)

// Tape provides sequential block I/O over byte streams. It wraps an
// io.Reader for IN and an io.Writer for OUT; each word is stored as its
// raw pattern, four bytes big endian.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

var _ Device = (*Tape)(nil)

// BlockSize of a tape is 100 words.
func (tape *Tape) BlockSize() int {
	return BLOCK_WORDS
}

// Busy is always false; tape transfers complete immediately.
func (tape *Tape) Busy() bool {
	return false
}

// In reads the next block. A partial block at the end of the input is
// ErrDeviceEnd, and block is left unmodified.
func (tape *Tape) In(block []word.Word) (err error) {
	if tape.Input == nil {
		err = ErrNoMedium
		return
	}

	buf := make([]byte, len(block)*WORD_SIZE)
	_, err = io.ReadFull(tape.Input, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = ErrDeviceEnd
	}
	if err != nil {
		return
	}

	decodeBlock(block, buf)
	return
}

// Out appends a block to the output.
func (tape *Tape) Out(block []word.Word) (err error) {
	if tape.Output == nil {
		err = ErrNoMedium
		return
	}

	_, err = tape.Output.Write(encodeBlock(nil, block))
	return
}

// Control rewinds the input when op is 0, and skips op blocks of input
// otherwise. Skipping backwards needs a seekable input.
func (tape *Tape) Control(op int64, x word.Word) (err error) {
	if tape.Input == nil {
		err = ErrNoMedium
		return
	}

	blockBytes := int64(tape.BlockSize() * WORD_SIZE)

	switch {
	case op == 0:
		err = tape.seek(op, 0, io.SeekStart)
	case op > 0:
		var n int64
		n, err = io.CopyN(io.Discard, tape.Input, op*blockBytes)
		if n < op*blockBytes {
			err = ErrDeviceEnd
		}
	default:
		err = tape.seek(op, op*blockBytes, io.SeekCurrent)
	}

	return
}

func (tape *Tape) seek(op int64, offset int64, whence int) (err error) {
	seeker, ok := tape.Input.(io.Seeker)
	if !ok {
		err = ErrControl(op)
		return
	}

	_, err = seeker.Seek(offset, whence)
	if err != nil {
		err = errors.Join(ErrDeviceRange, err)
	}
	return
}

// Rewind moves a seekable input back to its start.
func (tape *Tape) Rewind() {
	if tape.Input != nil {
		_ = tape.seek(0, 0, io.SeekStart)
	}
}
