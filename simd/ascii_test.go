package simd

import "testing"

func TestIsASCIIEmpty(t *testing.T) {
	if !IsASCII(nil) {
		t.Fatal("empty input should be ASCII")
	}
}

func TestIsASCIIShortPureASCII(t *testing.T) {
	if !IsASCII([]byte("abc")) {
		t.Fatal("short ASCII input should report true")
	}
}

func TestIsASCIIShortNonASCII(t *testing.T) {
	if IsASCII([]byte("ab\xff")) {
		t.Fatal("short input with a high-bit byte should report false")
	}
}

func TestIsASCIILongPureASCII(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 'a'
	}
	if !IsASCII(data) {
		t.Fatal("100-byte ASCII input should report true")
	}
}

func TestIsASCIILongWithTrailingNonASCII(t *testing.T) {
	data := make([]byte, 17)
	for i := range data {
		data[i] = 'a'
	}
	data[16] = 0xC3 // first byte of a 2-byte UTF-8 sequence, e.g. 'é'
	if IsASCII(data) {
		t.Fatal("expected false: last byte has the high bit set")
	}
}

func TestIsASCIILongWithNonASCIIInFirstChunk(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = 'a'
	}
	data[3] = 0x80
	if IsASCII(data) {
		t.Fatal("expected false: a byte within the first 8-byte chunk has the high bit set")
	}
}
