package engine

import (
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hashassin/internal/crt"
	"hashassin/internal/digest"
	"hashassin/internal/partition"
)

func passwords(n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		out[i] = []byte(fmt.Sprintf("pw%06d", i))
	}
	return out
}

func TestHashAll(t *testing.T) {
	t.Run("digests are in input order", func(t *testing.T) {
		// Prepare
		input := passwords(100)

		// Execute
		digests, err := HashAll(input, "md5", 7)

		// Check
		require.NoError(t, err)
		require.Len(t, digests, len(input))
		for i, p := range input {
			want := md5.Sum(p)
			assert.Equal(t, want[:], digests[i], "digest %d", i)
		}
	})

	t.Run("output does not depend on the number of threads", func(t *testing.T) {
		// Prepare
		input := passwords(250)

		for _, name := range []string{"md5", "sha256", "sha3-512"} {
			// Execute
			single, err := HashAll(input, name, 1)
			require.NoError(t, err)
			parallel, err := HashAll(input, name, 8)
			require.NoError(t, err)

			// Check
			assert.Equal(t, single, parallel, name)
		}
	})

	t.Run("scrypt batch with more threads than passwords", func(t *testing.T) {
		// Prepare
		input := [][]byte{[]byte("abcd"), []byte("efgh")}

		// Execute
		digests, err := HashAll(input, "scrypt", 4)

		// Check
		require.NoError(t, err)
		for i, p := range input {
			want, err := digest.Digest("scrypt", p)
			require.NoError(t, err)
			assert.Equal(t, want, digests[i])
		}
	})

	t.Run("unsupported algorithm returns nothing", func(t *testing.T) {
		// Execute
		digests, err := HashAll(passwords(3), "sha1", 2)

		// Check
		assert.Nil(t, digests)
		var invalid *crt.InvalidAlgorithm
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "sha1", invalid.Name)
	})

	t.Run("mixed password lengths are rejected", func(t *testing.T) {
		// Execute
		digests, err := HashAll([][]byte{[]byte("ab"), []byte("cde")}, "md5", 2)

		// Check
		assert.Nil(t, digests)
		var invalid *crt.InvalidParameters
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("empty batch and zero threads are rejected", func(t *testing.T) {
		var invalid *crt.InvalidParameters

		_, err := HashAll(nil, "md5", 2)
		assert.ErrorAs(t, err, &invalid)

		_, err = HashAll(passwords(2), "md5", 0)
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestRun(t *testing.T) {
	t.Run("spawns exactly threads workers", func(t *testing.T) {
		// Prepare
		var calls atomic.Int32

		// Execute
		err := Run(3, 6, func(_ int, _ partition.Chunk) error {
			calls.Add(1)
			return nil
		})

		// Check
		require.NoError(t, err)
		assert.Equal(t, int32(6), calls.Load())
	})

	t.Run("all workers finish before the lowest failing worker's error is returned", func(t *testing.T) {
		// Prepare
		var finished atomic.Int32
		errLow := errors.New("worker 1")
		errHigh := errors.New("worker 3")

		// Execute
		err := Run(40, 4, func(worker int, _ partition.Chunk) error {
			defer finished.Add(1)
			switch worker {
			case 1:
				return errLow
			case 3:
				return errHigh
			}
			return nil
		})

		// Check
		assert.ErrorIs(t, err, errLow)
		assert.Equal(t, int32(4), finished.Load())
	})

	t.Run("a worker error is returned, not logged at warn level", func(t *testing.T) {
		// Prepare
		var logs bytes.Buffer
		saved := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn})))
		defer slog.SetDefault(saved)
		failed := errors.New("digest failed")

		// Execute
		err := Run(4, 2, func(worker int, _ partition.Chunk) error {
			if worker == 1 {
				return failed
			}
			return nil
		})

		// Check
		assert.ErrorIs(t, err, failed)
		assert.Empty(t, logs.String())
	})

	t.Run("a panicking worker is reported as a worker failure", func(t *testing.T) {
		// Prepare
		var finished atomic.Int32

		// Execute
		err := Run(10, 2, func(worker int, _ partition.Chunk) error {
			defer finished.Add(1)
			if worker == 0 {
				panic("boom")
			}
			return nil
		})

		// Check
		var failure *crt.WorkerFailure
		require.ErrorAs(t, err, &failure)
		assert.Equal(t, 0, failure.Worker)
		assert.Equal(t, "boom", failure.Cause)
		assert.Equal(t, int32(2), finished.Load())
	})
}

func TestCheckLengths(t *testing.T) {
	t.Run("reports the first differing password", func(t *testing.T) {
		err := CheckLengths([][]byte{[]byte("abcd"), []byte("efgh"), []byte("ij"), []byte("k")})

		var invalid *crt.InvalidParameters
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, err.Error(), "password 2")
	})

	t.Run("uniform and empty batches pass", func(t *testing.T) {
		assert.NoError(t, CheckLengths(passwords(5)))
		assert.NoError(t, CheckLengths(nil))
	})
}
