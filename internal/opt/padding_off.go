//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !rendezvous_disable_padding && !rendezvous_enable_padding

package opt

// PadSize_ is the trailing pad appended to each channel's state.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PadSize_ = 0
