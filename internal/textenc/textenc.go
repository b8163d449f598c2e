// Package textenc turns raw ZIP comment bytes into text.
package textenc

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/ossyrian/zipcomment/internal/types"
)

// Decode decodes b using enc.
func Decode(enc types.Encoding, b []byte) (string, error) {
	var dec *encoding.Decoder

	switch enc {
	case types.EncodingUTF7:
		return DecodeUTF7(b), nil
	case types.EncodingLatin1:
		dec = charmap.ISO8859_1.NewDecoder()
	case types.EncodingCP437:
		dec = charmap.CodePage437.NewDecoder()
	case types.EncodingUTF8:
		dec = unicode.UTF8.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding: %s", enc)
	}

	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s comment: %w", enc, err)
	}
	return string(out), nil
}
