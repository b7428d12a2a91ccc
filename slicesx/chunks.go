package slicesx

// Chunks splits ts into consecutive pieces of chunkSize elements; the last piece may be shorter.
// chunkSize must be positive.
func Chunks[S ~[]E, E any](ts S, chunkSize int) [][]E {
	cs := [][]E{}
	for len(ts) > 0 {
		n := min(chunkSize, len(ts))
		chunk := make([]E, n)
		copy(chunk, ts[:n])
		cs = append(cs, chunk)
		ts = ts[n:]
	}
	return cs
}
