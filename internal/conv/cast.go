package conv

import (
	"fmt"
	"math"
	"math/bits"
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// ByteSize returns n*elemSize, failing if n is negative or the product
// does not fit in an int.
func ByteSize(n int, elemSize uintptr) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("integer overflow: negative element count %d", n)
	}
	hi, lo := bits.Mul64(uint64(n), uint64(elemSize))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d elements of %d bytes exceed int", n, elemSize)
	}
	return int(lo), nil
}
