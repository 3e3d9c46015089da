package physpoolopts

type memoryFraction struct {
	v float64
}

// MemoryFraction sets the share of currently-available physical memory a
// single search may consume across all of its trials. Must be in (0, 1].
func MemoryFraction(v float64) Option {
	return &memoryFraction{
		v: v,
	}
}

func (o *memoryFraction) Type() OptionType {
	return TypeMemoryFraction
}

func (o *memoryFraction) Value() interface{} {
	return o.v
}
