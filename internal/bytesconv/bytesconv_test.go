package bytesconv

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	b := []byte("hello")
	s := String(b)
	assert.Equal(t, "hello", s)

	assert.Equal(t, "", String(nil))
	assert.Equal(t, "", String([]byte{}))
}

func TestStringAliasesStorage(t *testing.T) {
	b := []byte("alias")
	s := String(b)
	// The string must share the slice's backing array, not copy it.
	assert.Same(t, &b[0], unsafe.StringData(s))
}
