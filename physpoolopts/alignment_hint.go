package physpoolopts

type alignmentHint struct {
	v int
}

// AlignmentHint sets the virtual alignment of trial regions, in bytes.
// Must be a power of two at least as large as the cache granularity. The
// default of 2 MiB matches the transparent huge page size.
func AlignmentHint(v int) Option {
	return &alignmentHint{
		v: v,
	}
}

func (o *alignmentHint) Type() OptionType {
	return TypeAlignmentHint
}

func (o *alignmentHint) Value() interface{} {
	return o.v
}
