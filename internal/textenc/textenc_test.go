package textenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/zipcomment/internal/types"
)

func TestDecodeUTF7(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{name: "empty", input: nil, want: ""},
		{name: "plain ascii", input: []byte("hello"), want: "hello"},
		{name: "literal plus", input: []byte("1 +- 1 = 2"), want: "1 + 1 = 2"},
		{name: "rfc 2152 example A≢Α.", input: []byte("A+ImIDkQ."), want: "A≢Α."},
		{name: "rfc 2152 example Hi Mom", input: []byte("Hi Mom -+Jjo--!"), want: "Hi Mom -☺-!"},
		{name: "rfc 2152 example 日本語", input: []byte("+ZeVnLIqe-"), want: "日本語"},
		{name: "shift closed by non-base64 ascii", input: []byte("+AGE."), want: "a."},
		{name: "shift closed by high byte", input: []byte("+AGE\xe9"), want: "aé"},
		{name: "high bytes are zero extended", input: []byte{'c', 'a', 'f', 0xe9, 0xff}, want: "caféÿ"},
		{name: "unterminated shift at end", input: []byte("x+AGE"), want: "xa"},
		{name: "leftover bits are dropped", input: []byte("+AGEA-z"), want: "az"},
		{name: "surrogate pair", input: []byte("+2D3eAA-"), want: "\U0001f600"},
		{name: "unpaired surrogate", input: []byte("+2D0-x"), want: "�x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeUTF7(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		enc   types.Encoding
		input []byte
		want  string
	}{
		{name: "utf-7", enc: types.EncodingUTF7, input: []byte("a+-b"), want: "a+b"},
		{name: "latin1", enc: types.EncodingLatin1, input: []byte{'a', '+', 0xe9}, want: "a+é"},
		{name: "cp437", enc: types.EncodingCP437, input: []byte{0x82, 0xb0}, want: "é░"},
		{name: "utf-8", enc: types.EncodingUTF8, input: []byte("h\xc3\xa9llo"), want: "héllo"},
		{name: "utf-8 invalid", enc: types.EncodingUTF8, input: []byte{'a', 0xff, 'b'}, want: "a�b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.enc, tt.input)
			require.NoErrorf(t, err, "Decode(%s) error = %v", tt.enc, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Decode(types.Encoding(99), []byte("x"))
	assert.Error(t, err)
}
