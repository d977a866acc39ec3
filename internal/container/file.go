package container

import (
	"os"

	"github.com/google/renameio/v2"

	"hashassin/internal/crt"
)

// WriteFile encodes digests and writes the container to path.
// Nothing is written to path unless encoding succeeds, and the file is replaced
// atomically so a failed write never leaves a partial container behind.
func WriteFile(path, algorithm string, passwordLen int, digests [][]byte) error {
	buf, err := Encode(algorithm, passwordLen, digests)
	if err != nil {
		return err
	}

	if err := renameio.WriteFile(path, buf, 0o644); err != nil {
		return &crt.IoError{Op: "write " + path, Err: err}
	}
	return nil
}

// ReadFile reads and decodes the container stored at path
func ReadFile(path string) (*Container, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, &crt.IoError{Op: "read " + path, Err: err}
	}

	return Decode(buf)
}
