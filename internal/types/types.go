package types

import (
	"fmt"
	"strings"
)

// Encoding is the character encoding used to decode a ZIP archive comment.
// The ZIP format does not mandate one, so the caller picks.
type Encoding int

const (
	// EncodingUTF7 decodes comments the way the reference tool does: UTF-7
	// with bytes >= 0x80 zero-extended to U+0080..U+00FF.
	EncodingUTF7 Encoding = iota
	// EncodingLatin1 maps every byte to the code point of the same value.
	EncodingLatin1
	// EncodingCP437 is IBM code page 437, what most ZIP tools historically wrote.
	EncodingCP437
	// EncodingUTF8 decodes UTF-8, replacing invalid sequences with U+FFFD.
	EncodingUTF8
)

// DefaultEncoding is used when nothing is configured.
const DefaultEncoding = EncodingUTF7

func (e Encoding) String() string {
	switch e {
	case EncodingUTF7:
		return "utf-7"
	case EncodingLatin1:
		return "latin1"
	case EncodingCP437:
		return "cp437"
	case EncodingUTF8:
		return "utf-8"
	default:
		return "unknown"
	}
}

// ParseEncoding converts a user supplied encoding name to an Encoding.
// Matching is case-insensitive. An empty name yields DefaultEncoding.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultEncoding, nil
	case "utf-7", "utf7":
		return EncodingUTF7, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	case "cp437", "ibm437":
		return EncodingCP437, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	default:
		return DefaultEncoding, fmt.Errorf("unknown encoding: %s", name)
	}
}
