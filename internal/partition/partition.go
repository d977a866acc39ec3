package partition

import "hashassin/internal/crt"

// Chunk is a contiguous index range [Start, End) assigned to one worker
type Chunk struct {
	Start int
	End   int
}

// Len returns the number of items in the chunk
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Split divides n items across threads workers.
// Every worker gets ceil(n/threads) items except the tail, which gets what is left. When threads > n
// the trailing chunks are empty. Exactly threads chunks are returned and together they cover [0, n)
// exactly once.
func Split(n, threads int) (chunks []Chunk, err error) {
	if n <= 0 {
		err = crt.NewInvalidParameters("item count must be greater than zero, got %d", n)
		return
	}
	if threads <= 0 {
		err = crt.NewInvalidParameters("thread count must be greater than zero, got %d", threads)
		return
	}

	size := (n + threads - 1) / threads
	chunks = make([]Chunk, threads)
	for i := 0; i < threads; i++ {
		start := min(i*size, n)
		end := min(start+size, n)
		chunks[i] = Chunk{Start: start, End: end}
	}

	return
}
