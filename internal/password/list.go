package password

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/google/renameio/v2"

	"hashassin/internal/crt"
)

// Longest line accepted in a password list
const maxLineLength = 1024 * 1024

// ReadList reads newline-delimited passwords from r. A trailing "\r" is stripped from
// each line. An input with no lines at all is rejected with *crt.InvalidParameters.
func ReadList(r io.Reader) ([][]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var passwords [][]byte
	for scanner.Scan() {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		passwords = append(passwords, bytes.Clone(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, &crt.IoError{Op: "read password list", Err: err}
	}
	if len(passwords) == 0 {
		return nil, crt.NewInvalidParameters("input file is empty")
	}

	return passwords, nil
}

// ReadFile reads a password list from path
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &crt.IoError{Op: "open " + path, Err: err}
	}
	defer f.Close()

	return ReadList(f)
}

// Write writes one password per line
func Write(w io.Writer, passwords []string) error {
	writer := bufio.NewWriterSize(w, 64*1024)
	for _, p := range passwords {
		if _, err := writer.WriteString(p); err != nil {
			return &crt.IoError{Op: "write passwords", Err: err}
		}
		if err := writer.WriteByte('\n'); err != nil {
			return &crt.IoError{Op: "write passwords", Err: err}
		}
	}

	if err := writer.Flush(); err != nil {
		return &crt.IoError{Op: "flush passwords", Err: err}
	}
	return nil
}

// WriteFile writes passwords to path, replacing it only once everything is written
func WriteFile(path string, passwords []string) error {
	var buf bytes.Buffer
	if err := Write(&buf, passwords); err != nil {
		return err
	}

	if err := renameio.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &crt.IoError{Op: "write " + path, Err: err}
	}
	return nil
}
