// Package num implements various utility functions regarding numeric types.
package num

// Abs returns the absolute value of x.
func Abs[T ~int | ~int32 | ~int64](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
