package internal

// Frame is a physical page frame number as reported by the kernel. The
// pagemap reports frame zero when the page is not resident or when the
// caller lacks CAP_SYS_ADMIN, so zero doubles as the sentinel value.
type Frame uint64

func (f Frame) Valid() bool {
	return f != 0
}
