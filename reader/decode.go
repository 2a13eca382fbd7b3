package reader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	// ErrUnknownEncoding is returned when the encoding name does not
	// resolve to a known character set.
	ErrUnknownEncoding = errors.New("unknown encoding")

	// ErrInvalidBytes is returned when the input contains byte
	// sequences that are not valid under the requested encoding.
	ErrInvalidBytes = errors.New("invalid byte sequence")
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Decode converts raw bytes to a string under the named encoding.
// Decoding is strict: invalid byte sequences fail rather than being
// replaced or dropped. Leading byte-order marks are stripped.
//
// The character set decoders substitute U+FFFD for undecodable input
// instead of reporting an error, so any U+FFFD in the output is treated
// as a decode failure. Source text that legitimately contains U+FFFD is
// indistinguishable from that and is rejected as well.
func Decode(data []byte, name string) (string, error) {
	canon := strings.ToLower(strings.TrimSpace(name))

	switch canon {
	case "", "utf-8", "utf8":
		data = bytes.TrimPrefix(data, utf8BOM)

		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w for utf-8", ErrInvalidBytes)
		}

		return string(data), nil
	}

	enc, err := htmlindex.Get(canon)
	if err != nil {
		// The WHATWG index covers the common aliases; fall back to the
		// IANA registry for the rest.
		enc, err = ianaindex.IANA.Encoding(canon)
		if err != nil || enc == nil {
			return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
		}
	}

	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w under %s: %v", ErrInvalidBytes, name, err)
	}

	if bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("%w under %s", ErrInvalidBytes, name)
	}

	return strings.TrimPrefix(string(out), "\ufeff"), nil
}
