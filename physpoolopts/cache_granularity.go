package physpoolopts

type cacheGranularity struct {
	v int
}

// CacheGranularity sets the cache/alloc alignment unit the search honors,
// in bytes. Must be a power of two. Discontinuities that fall exactly on a
// multiple of this unit are tolerated; anything finer disqualifies a trial.
func CacheGranularity(v int) Option {
	return &cacheGranularity{
		v: v,
	}
}

func (o *cacheGranularity) Type() OptionType {
	return TypeCacheGranularity
}

func (o *cacheGranularity) Value() interface{} {
	return o.v
}
