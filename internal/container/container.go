// Package container encodes and decodes the binary hash container.
//
// Layout, no padding:
//
//	offset 0      1 byte   version
//	offset 1      1 byte   algorithm name length N
//	offset 2      N bytes  algorithm name
//	offset 2+N    1 byte   password length
//	offset 3+N    digests, one per password, in input order
//
// Digest boundaries are not stored, they follow from the algorithm's digest size.
package container

import (
	"encoding/hex"
	"fmt"
	"io"
	"unicode/utf8"

	"hashassin/internal/crt"
	"hashassin/internal/digest"
)

const (
	Version = 1

	VersionOffset = 0
	AlgoLenOffset = 1
	AlgoOffset    = 2

	// version + algorithm name length + password length
	FixedHeaderLength = 3

	MaxAlgorithmLength = 255
	MaxPasswordLength  = 255
)

// Container is a decoded hash container
type Container struct {
	Version        int
	Algorithm      string
	PasswordLength int
	Digests        [][]byte
}

// Encode serializes digests into the container layout.
// Every digest must have the algorithm's digest size.
func Encode(algorithm string, passwordLen int, digests [][]byte) (buf []byte, err error) {
	if len(algorithm) > MaxAlgorithmLength {
		err = crt.NewInvalidOutputFormat("algorithm name is %d bytes, at most %d allowed", len(algorithm), MaxAlgorithmLength)
		return
	}
	if passwordLen < 0 || passwordLen > MaxPasswordLength {
		err = crt.NewInvalidOutputFormat("password length %d does not fit in one byte", passwordLen)
		return
	}

	algo, err := digest.Parse(algorithm)
	if err != nil {
		return
	}
	size := algo.Size()

	buf = make([]byte, FixedHeaderLength+len(algorithm), FixedHeaderLength+len(algorithm)+size*len(digests))
	buf[VersionOffset] = Version
	buf[AlgoLenOffset] = byte(len(algorithm))
	copy(buf[AlgoOffset:], algorithm)
	buf[AlgoOffset+len(algorithm)] = byte(passwordLen)

	for i, d := range digests {
		if len(d) != size {
			buf = nil
			err = crt.NewInvalidOutputFormat("digest %d is %d bytes, %s digests are %d bytes", i, len(d), algorithm, size)
			return
		}
		buf = append(buf, d...)
	}

	return
}

// Decode parses a container.
// A digest area that is not a whole number of digests is rejected rather than truncated.
func Decode(buf []byte) (c *Container, err error) {
	if len(buf) < FixedHeaderLength {
		err = crt.NewInvalidOutputFormat("length of data (%d) less than fixed header (%d)", len(buf), FixedHeaderLength)
		return
	}

	version := int(buf[VersionOffset])
	if version != Version {
		err = crt.NewInvalidOutputFormat("unsupported version %d", version)
		return
	}

	algoLen := int(buf[AlgoLenOffset])
	headerLen := FixedHeaderLength + algoLen
	if len(buf) < headerLen {
		err = crt.NewInvalidOutputFormat("length of data (%d) less than header (%d)", len(buf), headerLen)
		return
	}

	name := buf[AlgoOffset : AlgoOffset+algoLen]
	if !utf8.Valid(name) {
		err = crt.NewInvalidOutputFormat("algorithm name is not valid UTF-8")
		return
	}

	algo, err := digest.Parse(string(name))
	if err != nil {
		return
	}

	data := buf[headerLen:]
	size := algo.Size()
	if len(data)%size != 0 {
		err = crt.NewInvalidOutputFormat("digest data (%d bytes) is not a multiple of the %s digest size (%d)", len(data), algo, size)
		return
	}

	digests := make([][]byte, 0, len(data)/size)
	for start := 0; start < len(data); start += size {
		d := make([]byte, size)
		_ = copy(d, data[start:start+size])
		digests = append(digests, d)
	}

	c = &Container{
		Version:        version,
		Algorithm:      algo.String(),
		PasswordLength: int(buf[AlgoOffset+algoLen]),
		Digests:        digests,
	}

	return
}

// Dump writes the container in human-readable form, one hex digest per line
func (c *Container) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "VERSION: %d\nALGORITHM: %s\nPASSWORD LENGTH: %d\n", c.Version, c.Algorithm, c.PasswordLength); err != nil {
		return &crt.IoError{Op: "dump header", Err: err}
	}
	for _, d := range c.Digests {
		if _, err := fmt.Fprintln(w, hex.EncodeToString(d)); err != nil {
			return &crt.IoError{Op: "dump digest", Err: err}
		}
	}
	return nil
}
