package lzw12

// Stats reports the work done by one Encode or Decode call.
// An encoder and a decoder run over the same stream report equal Codes and Resets.
type Stats struct {
	BytesIn  int64 // Bytes consumed from the source.
	BytesOut int64 // Bytes written to the sink.
	Codes    int64 // 12-bit codes written (Encode) or read (Decode).
	Resets   int64 // Times the dictionary filled and went back to LiteralCodes entries.
}
