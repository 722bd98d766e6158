package gostl

import (
	"encoding/binary"
	"fmt"
	"math"
)

// FNV-1a parameters.
const (
	fnvOffset32 uint32 = 0x811C9DC5
	fnvPrime32  uint32 = 0x01000193
)

// FNV1aBytes is 32-bit FNV-1a over raw bytes.
func FNV1aBytes(data []byte) uint32 {
	h := fnvOffset32
	for _, b := range data {
		h ^= uint32(b)
		h *= fnvPrime32
	}
	return h
}

// FNV1a is the library's standard hash: FNV-1a over the byte
// representation of trivially copyable key kinds — integers, floats (by
// IEEE-754 bits), bools, strings and uintptr values hashed by numeric value — and,
// for any other comparable type, over that type's default %v formatting,
// standing in for a user-defined hash on non-trivially-copyable types.
func FNV1a[K comparable](key K) uint32 {
	switch v := any(key).(type) {
	case string:
		return FNV1aBytes([]byte(v))
	case int:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case int8:
		return FNV1aBytes([]byte{byte(v)})
	case int16:
		return FNV1aBytes(u64Bytes(uint64(uint16(v))))
	case int32:
		return FNV1aBytes(u64Bytes(uint64(uint32(v))))
	case int64:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case uint:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case uint8:
		return FNV1aBytes([]byte{v})
	case uint16:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case uint32:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case uint64:
		return FNV1aBytes(u64Bytes(v))
	case uintptr:
		return FNV1aBytes(u64Bytes(uint64(v)))
	case float32:
		return FNV1aBytes(u64Bytes(uint64(math.Float32bits(v))))
	case float64:
		return FNV1aBytes(u64Bytes(math.Float64bits(v)))
	case bool:
		if v {
			return FNV1aBytes([]byte{1})
		}
		return FNV1aBytes([]byte{0})
	default:
		return FNV1aBytes([]byte(fmt.Sprintf("%v", v)))
	}
}

func u64Bytes(n uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], n)
	return b[:]
}
