package slicesx

// Shuffle permutes ts in place (Fisher-Yates) using intn as the random source.
func Shuffle[S ~[]E, E any](ts S, intn func(n int) int) {
	for i := len(ts) - 1; i > 0; i-- {
		j := intn(i + 1)
		ts[i], ts[j] = ts[j], ts[i]
	}
}
