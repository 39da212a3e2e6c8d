//go:build rendezvous_enable_padding

package opt

// PadSize_ is the trailing pad appended to each channel's state.
// Padding is force-enabled via the rendezvous_enable_padding build tag.
// Use: go build -tags=rendezvous_enable_padding
const PadSize_ = CacheLineSize_
