package main

import (
	"fmt"
	"io"
	"log/slog"

	"hashassin/internal/crt"
	"hashassin/internal/password"
)

func genPasswords(cmd GenPasswordsCmd, cfg Config, stdout io.Writer) error {
	chars := cfg.Chars
	if cmd.Chars != nil {
		chars = int(*cmd.Chars)
	}
	threads := cfg.Threads
	if cmd.Threads != nil {
		threads = *cmd.Threads
	}

	// All values are validated before any password is generated
	if chars <= 0 || chars > 255 || threads <= 0 || cmd.Num <= 0 {
		return crt.NewInvalidParameters("all values must be greater than zero (chars=%d, threads=%d, num=%d, chars at most 255)", chars, threads, cmd.Num)
	}

	passwords, err := password.Generate(chars, cmd.Num, threads)
	if err != nil {
		return fmt.Errorf("failed to generate passwords: %w", err)
	}

	if cmd.OutFile == "" {
		if err := password.Write(stdout, passwords); err != nil {
			return fmt.Errorf("failed to print passwords: %w", err)
		}
		slog.Info("passwords printed", "count", len(passwords))
		return nil
	}

	if err := password.WriteFile(cmd.OutFile, passwords); err != nil {
		return fmt.Errorf("failed to write passwords: %w", err)
	}
	slog.Info("passwords written", "file", cmd.OutFile, "count", len(passwords))
	return nil
}
