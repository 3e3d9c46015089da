package physpool

import "github.com/physpool/physpool/internal"

// normalizeSize rounds size up to the next multiple of pageSize and then
// raises it to granularity if it is still below it. Both bounds are powers
// of two so the rounding is mask-based. The result is never smaller than
// the request.
func normalizeSize(size, pageSize, granularity int) int {
	if size&(pageSize-1) != 0 {
		size = size&^(pageSize-1) + pageSize
	}
	if size < granularity {
		size = granularity
	}
	if size < pageSize {
		size = pageSize
	}
	return size
}

// cacheFriendlyMask identifies the boundary page indices within one cache
// granularity block: a frame index f is on a block boundary exactly when
// f&mask == 0. Granularities below two pages degenerate to a mask of 1.
func cacheFriendlyMask(pageSize, granularity int) internal.Frame {
	if granularity < 2*pageSize {
		return 1
	}
	return internal.Frame(granularity/pageSize - 1)
}
