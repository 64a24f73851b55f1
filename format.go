package lzw12

// LZW 12-bit format constants.
const (
	CodeBits     = 12                            // Fixed code width in bits.
	DictMax      = 1 << CodeBits                 // Dictionary capacity; reaching it resets to LiteralCodes entries.
	MaxCode      = DictMax - 1                   // Largest code that fits the wire format.
	LiteralCodes = 256                           // Codes 0..255 are single-byte literals and never change.
	ArenaSize    = DictMax*DictMax/2 + DictMax*2 // Decoder arena bound: sequences of length 1..DictMax plus rounding slack.

	arenaAlign = 4 // Arena allocations are rounded up to this many bytes.
)
