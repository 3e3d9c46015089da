package physpoolopts

type failover struct {
	v bool
}

// Failover makes Allocate fall back to a plain aligned mapping, with no
// physical placement guarantee, when the scored search yields nothing.
func Failover(v bool) Option {
	return &failover{
		v: v,
	}
}

func (o *failover) Type() OptionType {
	return TypeFailover
}

func (o *failover) Value() interface{} {
	return o.v
}
