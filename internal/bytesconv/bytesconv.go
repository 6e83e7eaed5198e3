// Package bytesconv converts between []byte and string without copying.
package bytesconv

import "unsafe"

// String converts buf to a string without copying. Since Go strings are
// immutable, the bytes passed to String must NOT be modified afterwards.
func String(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}
