// Package rng seeds the game from a hardware random source.
package rng

// Seed builds a 64-bit seed from two reads of a 32-bit hardware generator
// such as machine.GetRNG. If the generator fails, fallback is used.
func Seed(read func() (uint32, error), fallback int64) int64 {
	hi, err := read()
	if err != nil {
		return fallback
	}
	lo, err := read()
	if err != nil {
		return int64(hi)
	}
	return int64(hi)<<32 | int64(lo)
}
