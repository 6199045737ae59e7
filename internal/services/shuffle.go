package services

import "math/rand"

// shuffled returns a shuffled copy; the input slice is left untouched.
func shuffled[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
