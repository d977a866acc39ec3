package main

import (
	"fmt"
	"strings"

	"hashassin/internal/digest"
)

// args is the top-level command line, one field per subcommand
type args struct {
	GenPasswords *GenPasswordsCmd `arg:"subcommand:gen-passwords" help:"generate random alphanumeric passwords"`
	GenHashes    *GenHashesCmd    `arg:"subcommand:gen-hashes" help:"hash a password list into a hash file"`
	DumpHashes   *DumpHashesCmd   `arg:"subcommand:dump-hashes" help:"print the contents of a hash file"`
}

func (args) Version() string {
	return fmt.Sprintf("hashassin version %s", Version)
}

func (args) Description() string {
	return fmt.Sprintf(`hashassin - batch password generation and hashing

Supported algorithms: %s
Note: "sha3-512" is computed with SHA-512, and scrypt uses a fixed salt.
Set %s to a TOML file to change the defaults for threads, chars, algorithm and log_level.
`, strings.Join(digest.Names(), ", "), ConfigEnvVar)
}

// GenPasswordsCmd holds gen-passwords options. Unset pointers fall back to the config.
type GenPasswordsCmd struct {
	Chars   *uint8 `arg:"-c,--chars" help:"characters per password [default: 4]"`
	OutFile string `arg:"-o,--out-file" help:"write to this file instead of stdout"`
	Threads *int   `arg:"-t,--threads" help:"number of workers [default: 1]"`
	Num     int    `arg:"-n,--num,required" help:"number of passwords"`
}

// GenHashesCmd holds gen-hashes options
type GenHashesCmd struct {
	InFile    string `arg:"-i,--in-file,required" help:"newline-delimited password list, - for stdin"`
	OutFile   string `arg:"-o,--out-file,required" help:"hash file to write"`
	Threads   *int   `arg:"-t,--threads" help:"number of workers [default: 1]"`
	Algorithm string `arg:"-a,--algorithm" help:"md5, sha256, sha3-512 or scrypt"`
}

// DumpHashesCmd holds dump-hashes options
type DumpHashesCmd struct {
	InFile string `arg:"-i,--in-file,required" help:"hash file to read"`
}
