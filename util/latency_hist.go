package util

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// LatencyHist aggregates allocation latencies for terminal reporting.
// Probe-and-select searches take anywhere from microseconds (early perfect
// hit) to seconds (full budget on a loaded machine), hence the wide range.
type LatencyHist struct {
	hdr *hdrhistogram.Histogram
	n   int
}

func NewLatencyHist(min, max time.Duration) *LatencyHist {
	return &LatencyHist{
		hdr: hdrhistogram.New(min.Microseconds(), max.Microseconds(), 3),
	}
}

func (h *LatencyHist) Add(ds ...time.Duration) {
	for _, d := range ds {
		_ = h.hdr.RecordValue(d.Microseconds())
	}
	h.n += len(ds)
}

func (h *LatencyHist) Len() int {
	return h.n
}

func (h *LatencyHist) Report(w io.Writer) error {
	tabw := tabwriter.NewWriter(w, 2, 2, 2, byte(' '), 0)

	fmt.Fprintf(tabw, "n\tmin\tavg\tp50\tp95\tp99\tmax\t\n")
	fmt.Fprintf(
		tabw,
		"%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
		h.n,
		us(h.hdr.Min()),
		us(int64(h.hdr.Mean())),
		us(h.hdr.ValueAtQuantile(50)),
		us(h.hdr.ValueAtQuantile(95)),
		us(h.hdr.ValueAtQuantile(99)),
		us(h.hdr.Max()),
	)
	return tabw.Flush()
}

func (h *LatencyHist) Reset() {
	h.hdr.Reset()
	h.n = 0
}

func us(v int64) string {
	return (time.Duration(v) * time.Microsecond).String()
}
