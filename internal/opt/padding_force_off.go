//go:build rendezvous_disable_padding

package opt

// PadSize_ is the trailing pad appended to each channel's state.
// Padding is force-disabled via the rendezvous_disable_padding build tag.
// Use: go build -tags=rendezvous_disable_padding
const PadSize_ = 0
