package util

// InsertSlice inserts item(s) T at position pos and returns a slice.
// pos is clamped to the bounds of arr.
func InsertSlice[T any](arr []T, pos int, element ...T) []T {
	if pos < 0 {
		pos = 0
	}
	if pos > len(arr) {
		pos = len(arr)
	}

	return append(arr[:pos], append(element, arr[pos:]...)...)
}
