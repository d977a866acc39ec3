package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
)

const Version = "1.0.0"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(os.Getenv(ConfigEnvVar))
	if err != nil {
		return err
	}
	setupLogging(stderr, cfg)

	var a args
	p, err := arg.NewParser(arg.Config{Program: "hashassin"}, &a)
	if err != nil {
		return err
	}

	err = p.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stderr)
		return nil
	case errors.Is(err, arg.ErrVersion):
		fmt.Fprintln(stderr, a.Version())
		return nil
	case err != nil:
		p.WriteUsage(stderr)
		return err
	}

	switch {
	case a.GenPasswords != nil:
		return genPasswords(*a.GenPasswords, cfg, stdout)
	case a.GenHashes != nil:
		return genHashes(*a.GenHashes, cfg, stdin)
	case a.DumpHashes != nil:
		return dumpHashes(*a.DumpHashes, stdout)
	default:
		p.WriteUsage(stderr)
		return fmt.Errorf("no command specified")
	}
}
