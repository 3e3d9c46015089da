package physpoolopts

type maxAttempts struct {
	v int
}

// MaxAttempts caps the number of trial regions a single search may probe,
// whatever the memory budget allows.
func MaxAttempts(v int) Option {
	return &maxAttempts{
		v: v,
	}
}

func (o *maxAttempts) Type() OptionType {
	return TypeMaxAttempts
}

func (o *maxAttempts) Value() interface{} {
	return o.v
}
