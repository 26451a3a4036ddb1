package ds

// ShallowCopy copies the elements of ts into a new backing array.
func ShallowCopy[T any](ts []T) []T {
	tsCopy := make([]T, len(ts))
	copy(tsCopy, ts)
	return tsCopy
}
