package physpool

import (
	"fmt"
	"os"
	"sync"
	"unsafe"

	"github.com/physpool/physpool/internal"
	"github.com/physpool/physpool/physpoolerrors"
	"github.com/physpool/physpool/physpoolopts"
)

const (
	DefaultCacheGranularity = 1 << 20 // covers L2 on most parts, e.g. the BCM2711's 1 MiB 16-way
	DefaultAlignmentHint    = 2 << 20 // default huge page size, so a hint only
	DefaultMaxAttempts      = 1024
	DefaultMemoryFraction   = 0.75
)

// regionAllocator provides the virtual-memory and pinning primitives the
// search probes with. The production implementation wraps mmap and mlock;
// tests substitute an accounting double.
type regionAllocator interface {
	Map(size, align int) ([]byte, error)
	Unmap(b []byte) error
	Lock(b []byte) error
	Unlock(b []byte) error
	AvailablePages(pageSize int) (int, error)
}

// frameSource reports the physical frame number of consecutive virtual
// pages, one search at a time.
type frameSource interface {
	Frames(addr uintptr, out []internal.Frame) error
	Close() error
}

// trial is one probe: an owned virtual region and whether it got pinned.
// A trial that loses the search is unpinned and unmapped during cleanup;
// the winner is handed to the caller.
type trial struct {
	region []byte
	pinned bool
}

// Pool hands out pinned memory regions whose backing physical frames are
// as contiguous as a bounded probe-and-select search can make them.
// Allocation is very slow and meant for a handful of long-lived blocks
// per process, e.g. a simulation buffer reused for the entire run.
//
// A Pool serializes its callers; the whole search runs under one mutex.
type Pool struct {
	mu sync.Mutex

	pageSize    int
	granularity int
	align       int
	maxAttempts int
	fraction    float64
	failover    bool

	mask internal.Frame

	alloc      regionAllocator
	openFrames func() (frameSource, error)

	lastReport Report
}

func NewPool(opts ...physpoolopts.Option) (*Pool, error) {
	p := &Pool{
		pageSize:    os.Getpagesize(),
		granularity: DefaultCacheGranularity,
		align:       DefaultAlignmentHint,
		maxAttempts: DefaultMaxAttempts,
		fraction:    DefaultMemoryFraction,
		alloc:       newSystemAllocator(),
		openFrames:  openSystemFrames,
	}

	for _, opt := range opts {
		switch opt.Type() {
		case physpoolopts.TypeCacheGranularity:
			p.granularity = opt.Value().(int)
		case physpoolopts.TypeAlignmentHint:
			p.align = opt.Value().(int)
		case physpoolopts.TypeMaxAttempts:
			p.maxAttempts = opt.Value().(int)
		case physpoolopts.TypeMemoryFraction:
			p.fraction = opt.Value().(float64)
		case physpoolopts.TypeFailover:
			p.failover = opt.Value().(bool)
		}
	}

	if !powerOfTwo(p.granularity) {
		return nil, fmt.Errorf(
			"cache granularity %d is not a power of two: %w",
			p.granularity, physpoolerrors.ErrInvalidOption)
	}
	if !powerOfTwo(p.align) || p.align < p.granularity {
		return nil, fmt.Errorf(
			"alignment hint %d must be a power of two of at least the cache granularity: %w",
			p.align, physpoolerrors.ErrInvalidOption)
	}
	if p.maxAttempts <= 0 {
		return nil, fmt.Errorf(
			"max attempts %d must be positive: %w",
			p.maxAttempts, physpoolerrors.ErrInvalidOption)
	}
	if p.fraction <= 0 || p.fraction > 1 {
		return nil, fmt.Errorf(
			"memory fraction %v must be in (0, 1]: %w",
			p.fraction, physpoolerrors.ErrInvalidOption)
	}

	p.mask = cacheFriendlyMask(p.pageSize, p.granularity)
	return p, nil
}

// Allocate returns a pinned region of at least size bytes. The returned
// slice covers the normalized size, which is what Release must later be
// handed; len of the result is that size, so keeping the slice intact is
// enough.
//
// It probes up to the attempt budget of candidate regions, reads each
// one's physical frame mapping from the pagemap, keeps the candidate with
// the fewest cache-compatible gaps and releases the rest. It fails with
// ErrPrivilegeUnavailable when the pagemap hides frame numbers from the
// process and with ErrNoQualifyingRegion when the search comes up empty.
func (p *Pool) Allocate(size int) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	normalized := normalizeSize(size, p.pageSize, p.granularity)
	pagesPerTrial := normalized / p.pageSize

	avail, err := p.alloc.AvailablePages(p.pageSize)
	if err != nil {
		return nil, err
	}
	budget := int(float64(avail/pagesPerTrial) * p.fraction)
	if budget > p.maxAttempts {
		budget = p.maxAttempts
	}
	if budget <= 0 {
		if p.failover {
			return p.failoverAllocate(normalized)
		}
		return nil, physpoolerrors.ErrNoQualifyingRegion
	}

	frames, err := p.openFrames()
	if err != nil {
		if p.failover {
			return p.failoverAllocate(normalized)
		}
		return nil, physpoolerrors.ErrPrivilegeUnavailable
	}
	defer frames.Close()

	var (
		trials   []trial
		seq      = make([]internal.Frame, pagesPerTrial)
		best     = -1
		bestGaps = 0
		privErr  error
	)

	for attempt := 0; attempt < budget; attempt++ {
		region, err := p.alloc.Map(normalized, p.align)
		if err != nil {
			break // allocator exhausted, settle for what we have
		}
		trials = append(trials, trial{region: region})
		tr := &trials[len(trials)-1]

		if err := p.alloc.Lock(region); err != nil {
			break // region stays tracked so cleanup unmaps it
		}
		tr.pinned = true

		if err := frames.Frames(regionAddr(region), seq); err != nil {
			break
		}
		if !seq[0].Valid() {
			// the kernel zeroes frame numbers for unprivileged readers
			privErr = physpoolerrors.ErrPrivilegeUnavailable
			break
		}

		gaps, qualified := scoreFrames(seq, p.mask)
		if !qualified {
			continue
		}
		if best < 0 || gaps < bestGaps {
			best = len(trials) - 1
			bestGaps = gaps
			if bestGaps == 0 {
				break // cannot improve on perfect contiguity
			}
		}
	}

	// Unpin and unmap every losing trial. Errors here are absorbed: no
	// usable resource escapes to the caller from a discarded trial, and
	// one bad trial must not abort the whole search. On a privilege
	// abort nothing survives, the winner included.
	for i := range trials {
		if privErr == nil && i == best {
			continue
		}
		tr := &trials[i]
		if tr.pinned {
			_ = p.alloc.Unlock(tr.region)
		}
		_ = p.alloc.Unmap(tr.region)
	}

	if privErr != nil || best < 0 {
		if p.failover {
			return p.failoverAllocate(normalized)
		}
		if privErr != nil {
			return nil, privErr
		}
		return nil, physpoolerrors.ErrNoQualifyingRegion
	}

	p.lastReport = Report{
		Trials: len(trials),
		Pages:  pagesPerTrial,
		Gaps:   bestGaps,
		Size:   normalized,
	}
	return trials[best].region, nil
}

// failoverAllocate hands out a plain aligned mapping with no physical
// placement guarantee and no pin.
func (p *Pool) failoverAllocate(normalized int) ([]byte, error) {
	region, err := p.alloc.Map(normalized, p.align)
	if err != nil {
		return nil, physpoolerrors.ErrNoQualifyingRegion
	}
	p.lastReport = Report{
		Pages:    normalized / p.pageSize,
		Size:     normalized,
		Failover: true,
	}
	return region, nil
}

// Release unpins and unmaps a region returned by Allocate. It must be
// called exactly once per successful Allocate, with the full slice that
// Allocate returned. An unpin or unmap failure here concerns memory the
// caller owns, so it is surfaced rather than swallowed.
func (p *Pool) Release(region []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(region) == 0 {
		return physpoolerrors.ErrInvalidRegion
	}

	unlockErr := p.alloc.Unlock(region)
	if err := p.alloc.Unmap(region); err != nil {
		return err
	}
	return unlockErr
}

// LastReport describes the most recent successful Allocate call.
func (p *Pool) LastReport() Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastReport
}

func regionAddr(b []byte) uintptr {
	/* #nosec G103 -- the use of unsafe has been audited */
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

func powerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
