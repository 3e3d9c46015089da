//go:build linux

package physpool

import "github.com/physpool/physpool/internal"

type systemAllocator struct{}

func newSystemAllocator() regionAllocator {
	return systemAllocator{}
}

func (systemAllocator) Map(size, align int) ([]byte, error) {
	return internal.MapAligned(size, align)
}

func (systemAllocator) Unmap(b []byte) error {
	return internal.Unmap(b)
}

func (systemAllocator) Lock(b []byte) error {
	return internal.Lock(b)
}

func (systemAllocator) Unlock(b []byte) error {
	return internal.Unlock(b)
}

func (systemAllocator) AvailablePages(pageSize int) (int, error) {
	return internal.AvailablePages(pageSize)
}

func openSystemFrames() (frameSource, error) {
	pm, err := internal.OpenPagemap()
	if err != nil {
		return nil, err
	}
	return pm, nil
}
