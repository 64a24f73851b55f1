// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzw12

package lzw12

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrBadCode        = errors.New("bad code")
	ErrTruncatedCode  = errors.New("stream ends inside a code")
	ErrArenaExhausted = errors.New("decoder arena exhausted")
	ErrNilReader      = errors.New("reader is nil")
	ErrNilWriter      = errors.New("writer is nil")
)
