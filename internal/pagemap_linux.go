//go:build linux

package internal

import (
	"encoding/binary"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	pagemapPath      = "/proc/self/pagemap"
	pagemapEntrySize = 8

	// bits 0-54 of a pagemap entry hold the frame number
	pfnMask = 1<<55 - 1
)

// Pagemap reads this process's page-to-physical-frame mapping table.
// Opening it succeeds for any user, but the kernel reports frame zero for
// every page unless the process holds CAP_SYS_ADMIN.
type Pagemap struct {
	fd       int
	pageSize int
	buf      []byte
}

func OpenPagemap() (*Pagemap, error) {
	fd, err := unix.Open(pagemapPath, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("could not open %s err=%v", pagemapPath, err)
	}
	return &Pagemap{
		fd:       fd,
		pageSize: os.Getpagesize(),
	}, nil
}

// Frames fills out with the frame number of len(out) consecutive pages,
// starting at the page containing addr.
func (p *Pagemap) Frames(addr uintptr, out []Frame) error {
	need := len(out) * pagemapEntrySize
	if cap(p.buf) < need {
		p.buf = make([]byte, need)
	}
	buf := p.buf[:need]

	offset := int64(addr/uintptr(p.pageSize)) * pagemapEntrySize
	n, err := unix.Pread(p.fd, buf, offset)
	if err != nil {
		return os.NewSyscallError("pread", err)
	}
	if n != need {
		return fmt.Errorf("short pagemap read: %d of %d bytes", n, need)
	}

	for i := range out {
		entry := binary.LittleEndian.Uint64(buf[i*pagemapEntrySize:])
		out[i] = Frame(entry & pfnMask)
	}
	return nil
}

func (p *Pagemap) Close() error {
	return unix.Close(p.fd)
}
