package lzw12

// Options configures Decode and Decompress behavior.
type Options struct {
	// Strict: if true, a stream that ends after the first byte of a code, or
	// whose final padding nibble is not zero, fails with ErrTruncatedCode.
	// If false, such a stream ends silently after the last complete code.
	Strict bool
}

// DefaultOptions returns options for the legacy behavior: truncation is plain end of stream.
func DefaultOptions() *Options {
	return &Options{
		Strict: false,
	}
}

// StrictOptions returns options that report truncated streams as ErrTruncatedCode.
func StrictOptions() *Options {
	return &Options{
		Strict: true,
	}
}
