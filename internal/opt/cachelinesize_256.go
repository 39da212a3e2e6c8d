//go:build rendezvous_cachelinesize_256

package opt

// CacheLineSize_ is pinned by the rendezvous_cachelinesize_256 build tag.
const CacheLineSize_ = 256
