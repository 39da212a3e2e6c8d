//go:build race

package opt

// Race_ reports whether the race detector is compiled in.
// Stress tests scale their rounds down when it is set.
const Race_ = true
