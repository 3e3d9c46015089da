//go:build linux

package internal

import (
	"os"

	"golang.org/x/sys/unix"
)

// AvailablePages reports how many physical pages are currently free,
// the same figure sysconf(_SC_AVPHYS_PAGES) returns.
func AvailablePages(pageSize int) (int, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, os.NewSyscallError("sysinfo", err)
	}
	free := uint64(info.Freeram) * uint64(info.Unit)
	return int(free / uint64(pageSize)), nil
}
