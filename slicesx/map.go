package slicesx

// Map converts every element of ts with conv, keeping the order.
func Map[S ~[]T, T any, V any](ts S, conv func(T) V) []V {
	vs := make([]V, len(ts))
	for i, t := range ts {
		vs[i] = conv(t)
	}
	return vs
}
