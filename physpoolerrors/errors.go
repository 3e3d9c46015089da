package physpoolerrors

import "errors"

var (
	ErrPrivilegeUnavailable = errors.New("physical frame introspection unavailable") // reading the pagemap needs CAP_SYS_ADMIN
	ErrNoQualifyingRegion   = errors.New("no cache-friendly region found")
	ErrInvalidRegion        = errors.New("invalid region")
	ErrInvalidOption        = errors.New("invalid option")
)
