//go:build !linux

package physpool

import "errors"

// The pagemap interface this package probes only exists on Linux.

var errUnsupported = errors.New("physpool requires linux")

type systemAllocator struct{}

func newSystemAllocator() regionAllocator {
	return systemAllocator{}
}

func (systemAllocator) Map(int, int) ([]byte, error) {
	return nil, errUnsupported
}

func (systemAllocator) Unmap([]byte) error {
	return errUnsupported
}

func (systemAllocator) Lock([]byte) error {
	return errUnsupported
}

func (systemAllocator) Unlock([]byte) error {
	return errUnsupported
}

func (systemAllocator) AvailablePages(int) (int, error) {
	return 0, errUnsupported
}

func openSystemFrames() (frameSource, error) {
	return nil, errUnsupported
}
