package wiremap

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	kerrors "github.com/kdewallet/kwallet-go/internal/errors"
	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrMalformedWireMap is returned by Decode for bytes that break the framing.
	ErrMalformedWireMap = kerrors.ErrMalformedWireMap

	// ErrEncoding is returned by Encode for keys or values that are not valid UTF-8.
	ErrEncoding = kerrors.ErrEncoding
)

const (
	lengthSize = 4

	// nullLength is the length marker the daemon writes for a null string.
	nullLength = math.MaxUint32
)

// utf16be is the text encoding of every key and value on the wire.
var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// Record is the key/value mapping stored for one wallet entry.
type Record map[string]string

// Keys returns the record's keys in ascending order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy of the record. A nil record clones to an empty one.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Encode serializes r into the wallet map format.
func Encode(r Record) ([]byte, error) {
	if uint64(len(r)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d pairs exceed the count field", ErrEncoding, len(r))
	}

	buf := binary.BigEndian.AppendUint32(make([]byte, 0, lengthSize), uint32(len(r)))

	var err error
	for _, key := range r.Keys() {
		if buf, err = appendText(buf, key); err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		if buf, err = appendText(buf, r[key]); err != nil {
			return nil, fmt.Errorf("value of key %q: %w", key, err)
		}
	}

	return buf, nil
}

// Decode parses a wire map into a record.
func Decode(data []byte) (Record, error) {
	d := decoder{data: data}

	count, err := d.uint32()
	if err != nil {
		return nil, fmt.Errorf("reading pair count: %w", err)
	}

	// Every pair needs at least two length fields, which bounds a sane count.
	if uint64(count)*2*lengthSize > uint64(d.remaining()) {
		return nil, fmt.Errorf("%w: %d pairs declared but only %d bytes follow",
			ErrMalformedWireMap, count, d.remaining())
	}

	record := make(Record, count)
	for i := uint32(0); i < count; i++ {
		key, err := d.text()
		if err != nil {
			return nil, fmt.Errorf("pair %d key: %w", i, err)
		}
		value, err := d.text()
		if err != nil {
			return nil, fmt.Errorf("pair %d value: %w", i, err)
		}
		record[key] = value
	}

	if d.remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d pairs",
			ErrMalformedWireMap, d.remaining(), count)
	}

	return record, nil
}

// appendText writes s as a length-prefixed UTF-16BE string.
func appendText(buf []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrEncoding, invalidOffset(s))
	}

	encoded, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	if uint64(len(encoded)) >= nullLength {
		return nil, fmt.Errorf("%w: %d bytes exceed the length field", ErrEncoding, len(encoded))
	}

	buf = binary.BigEndian.AppendUint32(buf, uint32(len(encoded)))
	return append(buf, encoded...), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in s, or -1 if s is valid. Errors carry the offset instead of the text,
// which may be a secret.
func invalidOffset(s string) int {
	for i, r := range s {
		if r != utf8.RuneError {
			continue
		}
		if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
			return i
		}
	}
	return -1
}

type decoder struct {
	data []byte
	off  int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.off
}

func (d *decoder) uint32() (uint32, error) {
	if d.remaining() < lengthSize {
		return 0, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrMalformedWireMap, lengthSize, d.off, d.remaining())
	}
	v := binary.BigEndian.Uint32(d.data[d.off:])
	d.off += lengthSize
	return v, nil
}

func (d *decoder) text() (string, error) {
	n, err := d.uint32()
	if err != nil {
		return "", err
	}
	if n == nullLength {
		return "", nil
	}
	if uint64(n) > uint64(d.remaining()) {
		return "", fmt.Errorf("%w: text of %d bytes at offset %d runs past end (%d left)",
			ErrMalformedWireMap, n, d.off, d.remaining())
	}
	if n%2 != 0 {
		return "", fmt.Errorf("%w: odd UTF-16 length %d at offset %d",
			ErrMalformedWireMap, n, d.off)
	}

	raw := d.data[d.off : d.off+int(n)]
	d.off += int(n)

	decoded, err := utf16be.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedWireMap, err)
	}
	return string(decoded), nil
}
