package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"hashassin/internal/container"
	"hashassin/internal/crt"
	"hashassin/internal/digest"
	"hashassin/internal/engine"
)

func genHashes(cmd GenHashesCmd, cfg Config, stdin io.Reader) error {
	algorithm := cmd.Algorithm
	if algorithm == "" {
		algorithm = cfg.Algorithm
	}
	if algorithm == "" {
		return fmt.Errorf("no algorithm specified, use --algorithm with one of: %s", strings.Join(digest.Names(), ", "))
	}
	if _, err := digest.Parse(algorithm); err != nil {
		return err
	}

	threads := cfg.Threads
	if cmd.Threads != nil {
		threads = *cmd.Threads
	}
	if threads <= 0 {
		return crt.NewInvalidParameters("threads must be greater than zero, got %d", threads)
	}

	passwords, err := readPasswordList(cmd.InFile, stdin)
	if err != nil {
		return fmt.Errorf("failed to read passwords: %w", err)
	}

	// Checked before hashing so a long scrypt run isn't wasted on an unwritable batch.
	// Mixed lengths are reported first, the one-byte limit only applies to a uniform batch.
	if err := engine.CheckLengths(passwords); err != nil {
		return fmt.Errorf("failed to hash passwords: %w", err)
	}
	passwordLen := len(passwords[0])
	if passwordLen > container.MaxPasswordLength {
		return crt.NewInvalidOutputFormat("password length %d does not fit in one byte", passwordLen)
	}

	digests, err := engine.HashAll(passwords, algorithm, threads)
	if err != nil {
		return fmt.Errorf("failed to hash passwords: %w", err)
	}

	if err := container.WriteFile(cmd.OutFile, algorithm, passwordLen, digests); err != nil {
		return fmt.Errorf("failed to write hashes: %w", err)
	}

	slog.Info("hashes written", "file", cmd.OutFile, "algorithm", algorithm, "count", len(digests), "threads", threads)
	return nil
}
