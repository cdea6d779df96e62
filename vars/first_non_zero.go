package vars

import "cmp"

// FirstNonZero picks the first value set, in precedence order.
func FirstNonZero[T comparable](values ...T) T {
	return cmp.Or(values...)
}
