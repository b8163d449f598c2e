package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		name    string
		want    Encoding
		wantErr bool
	}{
		{name: "", want: EncodingUTF7},
		{name: "utf-7", want: EncodingUTF7},
		{name: "UTF7", want: EncodingUTF7},
		{name: "latin1", want: EncodingLatin1},
		{name: "ISO-8859-1", want: EncodingLatin1},
		{name: "cp437", want: EncodingCP437},
		{name: "ibm437", want: EncodingCP437},
		{name: " utf-8 ", want: EncodingUTF8},
		{name: "utf8", want: EncodingUTF8},
		{name: "ebcdic", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEncoding(tt.name)
			if tt.wantErr {
				assert.Errorf(t, err, "ParseEncoding(%q) should fail", tt.name)
				return
			}

			assert.NoErrorf(t, err, "ParseEncoding(%q) error = %v", tt.name, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncoding_String(t *testing.T) {
	for _, e := range []Encoding{EncodingUTF7, EncodingLatin1, EncodingCP437, EncodingUTF8} {
		got, err := ParseEncoding(e.String())
		assert.NoErrorf(t, err, "ParseEncoding(%q) error = %v", e.String(), err)
		assert.Equal(t, e, got)
	}

	assert.Equal(t, "unknown", Encoding(42).String())
}
