package reader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUTF8(t *testing.T) {
	out, err := Decode([]byte("héllo\tworld"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "héllo\tworld", out)
}

func TestDecodeDefaultsToUTF8(t *testing.T) {
	out, err := Decode([]byte("plain"), "")
	require.NoError(t, err)
	assert.Equal(t, "plain", out)
}

func TestDecodeUTF8BOM(t *testing.T) {
	out, err := Decode([]byte("\xef\xbb\xbfa\tb"), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "a\tb", out)
}

func TestDecodeUTF8Invalid(t *testing.T) {
	_, err := Decode([]byte("ok\xff\xfe"), "utf-8")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBytes)
}

func TestDecodeShiftJIS(t *testing.T) {
	// "テスト" in Shift_JIS.
	raw := []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67}

	out, err := Decode(raw, "shift_jis")
	require.NoError(t, err)
	assert.Equal(t, "テスト", out)
}

func TestDecodeShiftJISInvalid(t *testing.T) {
	// A lead byte with nothing after it.
	_, err := Decode([]byte{0x41, 0x83}, "shift_jis")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBytes)
}

func TestDecodeUTF16LE(t *testing.T) {
	// "A\tB" little-endian, with BOM.
	raw := []byte{0xff, 0xfe, 0x41, 0x00, 0x09, 0x00, 0x42, 0x00}

	out, err := Decode(raw, "utf-16le")
	require.NoError(t, err)
	assert.Equal(t, "A\tB", out)
}

func TestDecodeLatin1(t *testing.T) {
	out, err := Decode([]byte{0x63, 0x61, 0x66, 0xe9}, "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "café", out)
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "no-such-charset")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEncoding)
}
