package config

import (
	"errors"

	"github.com/ezrec/mix/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrUnknownKey    = errors.New(f("unknown configuration key"))
	ErrFormat        = errors.New(f("unknown output format"))
	ErrBudget        = errors.New(f("negative instruction budget"))
	ErrUnit          = errors.New(f("device unit out of range"))
	ErrUnitDuplicate = errors.New(f("device unit assigned twice"))
	ErrTapeEmpty     = errors.New(f("tape has neither input nor output"))
	ErrDrumBlocks    = errors.New(f("drum blocks out of range"))
)
