package physpool

import "testing"

func TestNormalizeSize(t *testing.T) {
	const (
		page = 4096
		gran = 1 << 20
	)

	cases := []struct {
		size, want int
	}{
		{0, gran},
		{1, gran},
		{10, gran}, // granularity floor dominates tiny requests
		{page, gran},
		{gran - 1, gran},
		{gran, gran}, // exact requests need no rounding
		{gran + 1, gran + page},
		{gran + page, gran + page},
		{256 << 20, 256 << 20},
		{256<<20 + 1, 256<<20 + page},
	}
	for _, c := range cases {
		got := normalizeSize(c.size, page, gran)
		if got != c.want {
			t.Fatalf("normalizeSize(%d) = %d, want %d", c.size, got, c.want)
		}
	}
}

func TestNormalizeSizeProperties(t *testing.T) {
	const (
		page = 4096
		gran = 1 << 20
	)

	for size := 0; size < 4<<20; size += 37779 {
		got := normalizeSize(size, page, gran)
		if got%page != 0 {
			t.Fatalf("normalizeSize(%d) = %d is not page-aligned", size, got)
		}
		if got < gran {
			t.Fatalf("normalizeSize(%d) = %d is below the granularity", size, got)
		}
		if got < size {
			t.Fatalf("normalizeSize(%d) = %d shrank the request", size, got)
		}
	}
}

func TestCacheFriendlyMask(t *testing.T) {
	cases := []struct {
		page, gran int
		want       int
	}{
		{4096, 1 << 20, 255},
		{4096, 2 << 20, 511},
		{4096, 8192, 1},
		{4096, 4096, 1}, // degenerate, below two pages
		{16384, 1 << 20, 63},
	}
	for _, c := range cases {
		got := cacheFriendlyMask(c.page, c.gran)
		if int(got) != c.want {
			t.Fatalf("cacheFriendlyMask(%d, %d) = %d, want %d",
				c.page, c.gran, got, c.want)
		}
	}
}
