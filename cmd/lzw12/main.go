// Command lzw12 compresses or decompresses a stream in the 12-bit LZW format.
//
//	lzw12 [-d] [-strict] [-v] [input [output]]
//
// Input and output default to stdin and stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/woozymasta/lzw12"
)

// Application configuration
type Config struct {
	Decode  bool
	Strict  bool
	Verbose bool
	Input   string
	Output  string
}

func parseConfig(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("lzw12", flag.ContinueOnError)
	fs.BoolVar(&cfg.Decode, "d", false, "decompress instead of compress")
	fs.BoolVar(&cfg.Strict, "strict", false, "fail on a stream truncated inside a code")
	fs.BoolVar(&cfg.Verbose, "v", false, "log byte and code counts to stderr")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lzw12 [-d] [-strict] [-v] [input [output]]\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 2 {
		return nil, fmt.Errorf("too many arguments: %d", fs.NArg())
	}

	cfg.Input = fs.Arg(0)
	cfg.Output = fs.Arg(1)

	return cfg, nil
}

func run(cfg *Config, logger *log.Logger) error {
	var in io.Reader = os.Stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("can't open %s: %w", cfg.Input, err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("can't open %s: %w", cfg.Output, err)
		}
		defer f.Close()
		out = f
	}

	var (
		stats lzw12.Stats
		err   error
	)
	if cfg.Decode {
		opts := lzw12.DefaultOptions()
		opts.Strict = cfg.Strict
		stats, err = lzw12.Decode(out, in, opts)
	} else {
		stats, err = lzw12.Encode(out, in)
	}

	if cfg.Verbose {
		logger.Printf("in=%d out=%d codes=%d resets=%d", stats.BytesIn, stats.BytesOut, stats.Codes, stats.Resets)
	}

	return err
}

func main() {
	logger := log.New(os.Stderr, "lzw12: ", 0)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		logger.Fatalf("Error: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}
