// Package engine runs one-shot fork-join batches over partitioned index ranges.
package engine

import (
	"log/slog"
	"sync"

	"hashassin/internal/crt"
	"hashassin/internal/digest"
	"hashassin/internal/partition"
)

// WorkFunc processes one chunk. worker is the chunk number, in index order.
type WorkFunc func(worker int, chunk partition.Chunk) error

// Run splits n items across exactly threads goroutines and waits for all of them.
// Each goroutine runs fn on its own chunk. After every goroutine has returned, the
// error of the lowest numbered failing worker is reported. A panic in fn is recovered
// and reported as *crt.WorkerFailure.
func Run(n, threads int, fn WorkFunc) error {
	chunks, err := partition.Split(n, threads)
	if err != nil {
		return err
	}

	errs := make([]error, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, chunk := range chunks {
		go func(i int, chunk partition.Chunk) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = &crt.WorkerFailure{Worker: i, Cause: r}
				}
			}()

			slog.Debug("worker started", "worker", i, "start", chunk.Start, "end", chunk.End)
			errs[i] = fn(i, chunk)
		}(i, chunk)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			slog.Debug("worker failed", "worker", i, "error", err)
			return err
		}
	}

	return nil
}

// HashAll digests every password with the named algorithm using threads workers.
// The result has one digest per password, in input order. All passwords must have
// the same length. On any failure no digests are returned.
func HashAll(passwords [][]byte, algorithm string, threads int) ([][]byte, error) {
	algo, err := digest.Parse(algorithm)
	if err != nil {
		return nil, err
	}
	if len(passwords) == 0 {
		return nil, crt.NewInvalidParameters("no passwords to hash")
	}
	if threads <= 0 {
		return nil, crt.NewInvalidParameters("thread count must be greater than zero, got %d", threads)
	}
	if err = CheckLengths(passwords); err != nil {
		return nil, err
	}

	// Workers write only their own slots so no lock is needed and order is preserved
	digests := make([][]byte, len(passwords))
	err = Run(len(passwords), threads, func(_ int, chunk partition.Chunk) error {
		for i := chunk.Start; i < chunk.End; i++ {
			sum, err := algo.Sum(passwords[i])
			if err != nil {
				return err
			}
			digests[i] = sum
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return digests, nil
}

// CheckLengths reports the first password whose length differs from the first one
func CheckLengths(passwords [][]byte) error {
	if len(passwords) == 0 {
		return nil
	}
	want := len(passwords[0])
	for i, p := range passwords {
		if len(p) != want {
			return crt.NewInvalidParameters("password %d has length %d, expected %d", i, len(p), want)
		}
	}
	return nil
}
