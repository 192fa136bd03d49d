// Package wiremap converts string records to and from the KDE wallet map format.
//
// The wallet daemon stores "map" entries as a serialized string-to-string map.
// This package produces and parses that byte layout so callers can work with a
// plain Go map.
//
// # Wire Layout
//
// All integers are unsigned 32-bit, big-endian:
//
//	WireMap := Count Pair*
//	Pair    := Text Text          (key, then value)
//	Text    := Len Bytes          (Len bytes of UTF-16BE, no BOM)
//
// Len is the length of the encoded text in bytes, not in characters. A Len of
// 0xFFFFFFFF marks a null string and is followed by no bytes; it decodes to "".
// An empty record encodes as four zero bytes.
//
// # Ordering
//
// Encode writes pairs in ascending key order, so the same record always
// produces the same bytes. Decode accepts any order; when a key repeats, the
// last occurrence wins.
//
// # Errors
//
// Encode fails with ErrEncoding when a key or value is not valid UTF-8.
// Decode fails with ErrMalformedWireMap on truncated input, odd text lengths or
// trailing bytes, and never returns a partial record.
package wiremap
