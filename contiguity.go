package physpool

import "github.com/physpool/physpool/internal"

// scoreFrames walks a trial's frame sequence pairwise and classifies each
// page-to-page transition. Adjacent frames cost nothing. A jump where both
// the expected next frame and the actual frame sit exactly on a cache
// granularity boundary keeps both physical blocks internally cache-aligned,
// so it counts as one gap and the walk continues. Any other jump lands
// inside a granularity block and disqualifies the trial on the spot.
func scoreFrames(frames []internal.Frame, mask internal.Frame) (gaps int, ok bool) {
	for i := 1; i < len(frames); i++ {
		prev, curr := frames[i-1], frames[i]
		if curr == prev+1 {
			continue
		}
		if ((prev+1)|curr)&mask != 0 {
			return gaps, false
		}
		gaps++
	}
	return gaps, true
}
