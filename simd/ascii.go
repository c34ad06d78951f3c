// Package simd provides fast byte-slice scans used to decide whether a
// search can take the ASCII fast path (skip UTF-8 decoding entirely) before
// handing a haystack to the matcher.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// HasAVX2 reports whether the running CPU advertises AVX2. No AVX2 kernel
// ships in this package — only a pure Go SWAR scan — so this is exposed
// for callers building their own strategy decisions, not consulted by
// IsASCII itself.
var HasAVX2 = cpu.X86.HasAVX2

// IsASCII reports whether every byte in data has its high bit clear
// (values 0x00-0x7F). The matcher uses this to skip the per-rune UTF-8
// decode loop and index the haystack as bytes directly when a haystack is
// pure ASCII.
//
// Implementation is SWAR (SIMD Within A Register): eight bytes are checked
// per uint64 load by ANDing against 0x8080..., rather than byte-by-byte.
func IsASCII(data []byte) bool {
	n := len(data)
	if n == 0 {
		return true
	}
	if n < 8 {
		for i := 0; i < n; i++ {
			if data[i] >= 0x80 {
				return false
			}
		}
		return true
	}

	const hiBits = uint64(0x8080808080808080)
	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if chunk&hiBits != 0 {
			return false
		}
		i += 8
	}
	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return false
		}
	}
	return true
}
