//go:build linux

package internal

import (
	"testing"
	"unsafe"
)

func TestMapAligned(t *testing.T) {
	const (
		size  = 1 << 20
		align = 2 << 20
	)

	b, err := MapAligned(size, align)
	if err != nil {
		t.Fatal(err)
	}
	defer Unmap(b)

	if len(b) != size {
		t.Fatalf("mapped %d bytes, want %d", len(b), size)
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if addr%align != 0 {
		t.Fatalf("base address %#x not aligned to %#x", addr, align)
	}

	// the trimmed mapping must be fully usable
	b[0] = 0xab
	b[size-1] = 0xcd
	if b[0] != 0xab || b[size-1] != 0xcd {
		t.Fatal("mapping not writable end to end")
	}
}

func TestLockUnlock(t *testing.T) {
	b, err := MapAligned(4096, 4096)
	if err != nil {
		t.Fatal(err)
	}
	defer Unmap(b)

	if err := Lock(b); err != nil {
		t.Fatal(err)
	}
	if err := Unlock(b); err != nil {
		t.Fatal(err)
	}
}

func TestUnmap(t *testing.T) {
	b, err := MapAligned(4096, 4096)
	if err != nil {
		t.Fatal(err)
	}
	if err := Unmap(b); err != nil {
		t.Fatal(err)
	}
}
