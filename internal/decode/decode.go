// Package decode loads raw message files into normalized UTF-8 text.
package decode

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrDecode reports message bytes that could not be decoded with the
// requested or detected character encoding. It aborts processing of that
// single message only.
var ErrDecode = errors.New("cannot decode message text")

// ReadFile reads a message file and returns its contents as UTF-8 text with
// "\r\n" line endings normalized to "\n". charsetName selects the source
// encoding by IANA name; when empty, the encoding is sniffed from the content
// itself.
func ReadFile(path, charsetName string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read message file: %w", err)
	}
	text, err := Decode(raw, charsetName)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}

// Decode converts raw message bytes to normalized UTF-8 text.
func Decode(raw []byte, charsetName string) (string, error) {
	var enc encoding.Encoding
	if charsetName == "" {
		enc, _, _ = htmlcharset.DetermineEncoding(raw, "")
	} else {
		e, err := ianaindex.IANA.Encoding(charsetName)
		if err != nil || e == nil {
			return "", fmt.Errorf("%w: unknown charset %q", ErrDecode, charsetName)
		}
		enc = e
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !utf8.Valid(decoded) {
		return "", fmt.Errorf("%w: invalid byte sequence for charset %q", ErrDecode, charsetName)
	}
	return strings.ReplaceAll(string(decoded), "\r\n", "\n"), nil
}
