// Package digest maps algorithm names to the fixed-size digests written into hash containers.
package digest

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/scrypt"

	"hashassin/internal/crt"
)

// Algorithm identifies one of the supported digest algorithms.
type Algorithm int

const (
	MD5 Algorithm = iota + 1
	SHA256
	SHA3_512
	Scrypt
)

const (
	// Scrypt fixed parameters
	ScryptLogN   = 15
	ScryptR      = 8
	ScryptP      = 1
	ScryptKeyLen = 64
)

// ScryptSalt is the constant salt used for every scrypt digest. Identical passwords
// always produce identical digests, which permits precomputation attacks. It is kept
// because the container format has nowhere to store a per-record salt.
var ScryptSalt = []byte("salt")

var names = map[Algorithm]string{
	MD5:      "md5",
	SHA256:   "sha256",
	SHA3_512: "sha3-512",
	Scrypt:   "scrypt",
}

var sizes = map[Algorithm]int{
	MD5:      md5.Size,
	SHA256:   sha256.Size,
	SHA3_512: sha512.Size,
	Scrypt:   ScryptKeyLen,
}

// Parse resolves an algorithm name. Unknown names yield *crt.InvalidAlgorithm.
func Parse(name string) (Algorithm, error) {
	for a, n := range names {
		if n == name {
			return a, nil
		}
	}
	return 0, &crt.InvalidAlgorithm{Name: name}
}

// Names returns the supported algorithm names in a stable order
func Names() []string {
	return []string{names[MD5], names[SHA256], names[SHA3_512], names[Scrypt]}
}

func (a Algorithm) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return "unknown"
}

// Size returns the digest length in bytes, or 0 for an invalid Algorithm.
func (a Algorithm) Size() int {
	return sizes[a]
}

// Sum computes the digest of input.
//
// Note that "sha3-512" is computed with SHA-512, not SHA-3. Existing hash files
// depend on this mapping so it must not change.
func (a Algorithm) Sum(input []byte) ([]byte, error) {
	switch a {
	case MD5:
		sum := md5.Sum(input)
		return sum[:], nil
	case SHA256:
		sum := sha256.Sum256(input)
		return sum[:], nil
	case SHA3_512:
		sum := sha512.Sum512(input)
		return sum[:], nil
	case Scrypt:
		return scrypt.Key(input, ScryptSalt, 1<<ScryptLogN, ScryptR, ScryptP, ScryptKeyLen)
	default:
		return nil, &crt.InvalidAlgorithm{Name: a.String()}
	}
}

// Digest hashes input with the named algorithm
func Digest(algorithm string, input []byte) ([]byte, error) {
	a, err := Parse(algorithm)
	if err != nil {
		return nil, err
	}
	return a.Sum(input)
}
