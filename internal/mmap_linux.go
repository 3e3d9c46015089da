//go:build linux

package internal

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MapAligned returns an anonymous private mapping of size bytes whose base
// address is a multiple of align. The kernel only guarantees page
// alignment, so the map is padded by align and the excess is trimmed off
// both ends.
func MapAligned(size, align int) ([]byte, error) {
	mapSize := size + align

	addr, _, errno := syscall.Syscall6(
		syscall.SYS_MMAP,
		0,
		uintptr(mapSize),
		uintptr(syscall.PROT_READ|syscall.PROT_WRITE),
		uintptr(syscall.MAP_PRIVATE|syscall.MAP_ANONYMOUS|
			syscall.MAP_NORESERVE|syscall.MAP_POPULATE),
		^uintptr(0), // fd
		0,           // offset
	)
	if errno != 0 {
		return nil, os.NewSyscallError("mmap", errno)
	}

	base := (addr + uintptr(align) - 1) &^ (uintptr(align) - 1)
	if head := base - addr; head != 0 {
		if err := munmap(addr, head); err != nil {
			return nil, err
		}
	}
	if tail := addr + uintptr(mapSize) - (base + uintptr(size)); tail != 0 {
		if err := munmap(base+uintptr(size), tail); err != nil {
			return nil, err
		}
	}

	/* #nosec G103 -- the use of unsafe has been audited */
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), size), nil
}

// Unmap releases a mapping obtained from MapAligned. b must be the exact
// slice MapAligned returned.
func Unmap(b []byte) error {
	return munmap(uintptr(unsafe.Pointer(unsafe.SliceData(b))), uintptr(len(b)))
}

func munmap(addr, size uintptr) error {
	_, _, errno := syscall.Syscall(syscall.SYS_MUNMAP, addr, size, 0)
	if errno != 0 {
		return os.NewSyscallError("munmap", errno)
	}
	return nil
}

// Lock pins b's pages in physical memory, faulting them in if needed.
func Lock(b []byte) error {
	return os.NewSyscallError("mlock", unix.Mlock(b))
}

// Unlock undoes Lock.
func Unlock(b []byte) error {
	return os.NewSyscallError("munlock", unix.Munlock(b))
}
