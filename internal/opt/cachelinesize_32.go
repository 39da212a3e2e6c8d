//go:build rendezvous_cachelinesize_32

package opt

// CacheLineSize_ is pinned by the rendezvous_cachelinesize_32 build tag.
const CacheLineSize_ = 32
