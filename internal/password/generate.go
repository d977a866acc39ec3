// Package password reads, writes and generates newline-delimited password lists.
package password

import (
	"github.com/tink-crypto/tink-go/v2/subtle/random"

	"hashassin/internal/crt"
	"hashassin/internal/engine"
	"hashassin/internal/partition"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Random bytes at or above this are rejected so every character is equally likely
const acceptBelow = 256 - 256%len(alphabet)

// Generate returns num random alphanumeric passwords of chars characters each,
// produced by threads workers. The parameters are checked before any work starts.
func Generate(chars, num, threads int) ([]string, error) {
	if chars <= 0 || num <= 0 || threads <= 0 {
		return nil, crt.NewInvalidParameters("chars, num and threads must be greater than zero (got %d, %d, %d)", chars, num, threads)
	}

	passwords := make([]string, num)
	err := engine.Run(num, threads, func(_ int, chunk partition.Chunk) error {
		for i := chunk.Start; i < chunk.End; i++ {
			passwords[i] = randomString(chars)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return passwords, nil
}

func randomString(n int) string {
	out := make([]byte, 0, n)
	for len(out) < n {
		// a little extra to cover rejected bytes
		for _, b := range random.GetRandomBytes(uint32(n - len(out) + 8)) {
			if int(b) >= acceptBelow {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out)
}
