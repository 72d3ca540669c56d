package io

import (
	"errors"

	"github.com/ezrec/mix/translate"
)

var f = translate.From

var (
	// Device errors
	ErrDeviceEnd   = errors.New(f("end of device medium"))
	ErrDeviceRange = errors.New(f("device position out of range"))
	ErrNoMedium    = errors.New(f("device has no medium"))
	ErrImageSize   = errors.New(f("device image size invalid"))
)

// ErrControl is an IOC operation a device does not implement.
type ErrControl int64

func (ec ErrControl) Error() string {
	return f("unsupported device control %d", int64(ec))
}

func (ec ErrControl) Is(err error) (ok bool) {
	_, ok = err.(ErrControl)
	return
}
