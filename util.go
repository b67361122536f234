package encoding

import (
	"unicode/utf8"
	"unsafe"
)

// runeByteLen returns the number of UTF-8 bytes r occupies in a Go string,
// used to convert a rune-range loop index into a byte-offset upto value.
func runeByteLen(r rune) int {
	return utf8.RuneLen(r)
}

// stringToBytesUnsafe views s as a []byte without copying. Safe only
// because every caller treats the result as read-only for the duration of
// one Write call and never retains or mutates it.
func stringToBytesUnsafe(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
