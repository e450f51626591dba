// Package keyset encodes an ascending set of int64 keys into a compact, snappy-compressed block.
//
// Block layout before compression:
//
//	count (uvarint) | first key (varint) | delta (uvarint) ... | delta (uvarint)
//
// Each delta is the distance to the previous key, so dense key sets shrink to about a byte per key
// before snappy gets to them. The compressed block is prefixed with a 4 byte magic and the
// little-endian xxhash64 of the uncompressed block.
package keyset

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/golang/snappy"
)

var magic = []byte("BTKS")

const headerSize = 4 + 8 // magic + checksum

// Encode returns the compressed block for keys, which must be strictly ascending.
func Encode(keys []int64) ([]byte, error) {
	// determine the maximum possible payload length
	scratch := make([]byte, (len(keys)+1)*binary.MaxVarintLen64)

	n := binary.PutUvarint(scratch, uint64(len(keys)))
	for i, key := range keys {
		if i == 0 {
			n += binary.PutVarint(scratch[n:], key)
			continue
		}
		prev := keys[i-1]
		if key <= prev {
			return nil, fmt.Errorf("%w: %d follows %d at index %d", ErrUnsorted, key, prev, i)
		}
		n += binary.PutUvarint(scratch[n:], uint64(key)-uint64(prev))
	}

	out := make([]byte, headerSize, headerSize+snappy.MaxEncodedLen(n))
	copy(out, magic)
	binary.LittleEndian.PutUint64(out[len(magic):], xxhash.Sum64(scratch[:n]))
	return append(out, snappy.Encode(nil, scratch[:n])...), nil
}

// Decode parses a block produced by Encode.
func Decode(data []byte) ([]int64, error) {
	if len(data) < headerSize || !bytes.HasPrefix(data, magic) {
		return nil, fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	raw, err := snappy.Decode(nil, data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if sum := binary.LittleEndian.Uint64(data[len(magic):headerSize]); sum != xxhash.Sum64(raw) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorrupt)
	}

	count, n := binary.Uvarint(raw)
	if n <= 0 {
		return nil, fmt.Errorf("%w: bad count", ErrCorrupt)
	}
	raw = raw[n:]
	// every key takes at least one byte
	if count > uint64(len(raw)) {
		return nil, fmt.Errorf("%w: %d keys announced, %d bytes left", ErrCorrupt, count, len(raw))
	}

	keys := make([]int64, 0, count)
	for i := uint64(0); i < count; i++ {
		if i == 0 {
			first, n := binary.Varint(raw)
			if n <= 0 {
				return nil, fmt.Errorf("%w: bad first key", ErrCorrupt)
			}
			keys = append(keys, first)
			raw = raw[n:]
			continue
		}
		delta, n := binary.Uvarint(raw)
		if n <= 0 || delta == 0 {
			return nil, fmt.Errorf("%w: bad delta at index %d", ErrCorrupt, i)
		}
		prev := keys[len(keys)-1]
		key := int64(uint64(prev) + delta)
		if key <= prev {
			return nil, fmt.Errorf("%w: key overflow at index %d", ErrCorrupt, i)
		}
		keys = append(keys, key)
		raw = raw[n:]
	}
	if len(raw) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(raw))
	}
	return keys, nil
}
