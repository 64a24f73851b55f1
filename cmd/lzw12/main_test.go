package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/lzw12"
)

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]string{"-d", "-strict", "in.lzw", "out.bin"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Decode || !cfg.Strict || cfg.Verbose || cfg.Input != "in.lzw" || cfg.Output != "out.bin" {
		t.Fatalf("got %+v", cfg)
	}

	if _, err := parseConfig([]string{"a", "b", "c"}); err == nil {
		t.Fatal("expected error for extra arguments")
	}
}

func TestRunRoundTripFiles(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain")
	packed := filepath.Join(dir, "packed")
	unpacked := filepath.Join(dir, "unpacked")

	input := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog\n"), 500)
	if err := os.WriteFile(plain, input, 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	if err := run(&Config{Input: plain, Output: packed, Verbose: true}, logger); err != nil {
		t.Fatal(err)
	}
	if logs.Len() == 0 {
		t.Fatal("verbose run logged nothing")
	}
	if err := run(&Config{Decode: true, Strict: true, Input: packed, Output: unpacked}, logger); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(unpacked)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(input, got) {
		t.Fatalf("lengths: in=%d out=%d", len(input), len(got))
	}
}

func TestRunCorruptStream(t *testing.T) {
	dir := t.TempDir()
	packed := filepath.Join(dir, "packed")
	if err := os.WriteFile(packed, []byte{0x04, 0x1F, 0xA0}, 0o600); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out")
	err := run(&Config{Decode: true, Input: packed, Output: out}, log.New(io.Discard, "", 0))
	if !errors.Is(err, lzw12.ErrBadCode) {
		t.Fatalf("want ErrBadCode, got %v", err)
	}
	got, _ := os.ReadFile(out)
	if string(got) != "A" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunMissingInput(t *testing.T) {
	err := run(&Config{Input: filepath.Join(t.TempDir(), "missing")}, log.New(io.Discard, "", 0))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}
