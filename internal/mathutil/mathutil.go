package mathutil

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// BitSize returns the number of bits in T.
func BitSize[T constraints.Integer]() int {
	var zero T
	return int(8 * unsafe.Sizeof(zero))
}

// IsSigned returns true, if T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	return ^T(0) < 0
}

// MaxOf returns the maximum value of T as a uint64.
func MaxOf[T constraints.Integer]() uint64 {
	size := BitSize[T]()
	if IsSigned[T]() {
		size--
	}
	return ^uint64(0) >> (64 - size)
}

// Uint64Cmp returns -1 if a < b, 0 if a == b, 1 if a > b
func Uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Int64Cmp returns -1 if a < b, 0 if a == b, 1 if a > b
func Int64Cmp(a, b int64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Int64Sign returns -1 if v < 0, 0 if v = 0, 1 if v > 0.
func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}
