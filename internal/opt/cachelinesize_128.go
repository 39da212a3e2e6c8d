//go:build rendezvous_cachelinesize_128

package opt

// CacheLineSize_ is pinned by the rendezvous_cachelinesize_128 build tag.
const CacheLineSize_ = 128
