package physpoolopts

import "fmt"

type OptionType uint8

type Option interface {
	Type() OptionType
	Value() interface{}
}

const (
	TypeCacheGranularity OptionType = iota
	TypeAlignmentHint
	TypeMaxAttempts
	TypeMemoryFraction
	TypeFailover
	MaxOption
)

func (t OptionType) String() string {
	switch t {
	case TypeCacheGranularity:
		return "cache_granularity"
	case TypeAlignmentHint:
		return "alignment_hint"
	case TypeMaxAttempts:
		return "max_attempts"
	case TypeMemoryFraction:
		return "memory_fraction"
	case TypeFailover:
		return "failover"
	default:
		panic(fmt.Errorf("invalid option %d", t))
	}
}

func AddOption(add Option, opts []Option) []Option {
	for i, cur := range opts {
		if cur.Type() == add.Type() {
			opts[i] = add
			return opts
		}
	}
	opts = append(opts, add)
	return opts
}

func DelOption(del OptionType, opts []Option) []Option {
	for i := 0; i < len(opts); i++ {
		if opts[i].Type() == del {
			return append(opts[:i], opts[i+1:]...)
		}
	}
	return opts
}
