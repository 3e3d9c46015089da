package physpool

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Report describes the outcome of a successful Allocate call.
type Report struct {
	Trials   int  // candidate regions probed before settling
	Pages    int  // virtual pages in the returned region
	Gaps     int  // cache-compatible discontinuities in the winner
	Size     int  // normalized size in bytes
	Failover bool // region came from the unscored fallback path
}

func (r Report) String() string {
	b := bytebufferpool.Get()
	defer bytebufferpool.Put(b)

	if r.Failover {
		fmt.Fprintf(b,
			"failover allocation of %d bytes, no physical placement guarantee",
			r.Size)
		return b.String()
	}
	fmt.Fprintf(b, "best allocation chosen from %d queries\n", r.Trials)
	fmt.Fprintf(b, "%d bytes pinned with %d 'gaps' out of %d virtual pages mapped\n",
		r.Size, r.Gaps, r.Pages)
	fmt.Fprintf(b, "gaps fall on cache boundaries, so caches behave as if the memory were contiguous")
	return b.String()
}
