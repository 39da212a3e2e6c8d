//go:build rendezvous_cachelinesize_64

package opt

// CacheLineSize_ is pinned by the rendezvous_cachelinesize_64 build tag.
const CacheLineSize_ = 64
