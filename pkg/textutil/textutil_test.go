package textutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinary_EmptyData(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary(nil))
	assert.False(t, IsBinary([]byte{}))
}

func TestIsBinary_PlainText(t *testing.T) {
	t.Parallel()

	assert.False(t, IsBinary([]byte("public class LoginPage {}\n")))
}

func TestIsBinary_NullByte(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBinary([]byte("PK\x03\x04\x00payload")))
}

func TestIsBinary_NullBeyondSniffWindow(t *testing.T) {
	t.Parallel()

	data := append(bytes.Repeat([]byte{'a'}, BinarySniffLength), 0)

	assert.False(t, IsBinary(data))
}
