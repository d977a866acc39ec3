package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"hashassin/internal/container"
)

func dumpHashes(cmd DumpHashesCmd, stdout io.Writer) error {
	c, err := container.ReadFile(cmd.InFile)
	if err != nil {
		return fmt.Errorf("failed to read hashes: %w", err)
	}

	writer := bufio.NewWriterSize(stdout, 1024*1024)
	if err := c.Dump(writer); err != nil {
		return err
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	slog.Info("hashes dumped", "file", cmd.InFile, "count", len(c.Digests))
	return nil
}
