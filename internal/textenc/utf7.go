package textenc

import "unicode/utf16"

// base64Values maps an ASCII byte to its modified-base64 value, or -1.
var base64Values = func() (t [128]int8) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = int8(i)
	}
	return t
}()

// DecodeUTF7 decodes b as UTF-7 (RFC 2152) without ever failing.
//
// Decoding rules:
//   - Outside a shift sequence every byte is emitted as the code point of
//     the same value, so bytes >= 0x80 become U+0080..U+00FF.
//   - '+' opens a shift sequence of modified base64 carrying UTF-16 units.
//     "+-" is a literal '+'.
//   - A '-' closing a shift sequence is absorbed. Any other byte that is
//     not base64 closes the sequence and is emitted as above.
//   - Bits left over when a sequence closes are dropped.
//   - Surrogate pairs are combined; unpaired surrogates become U+FFFD.
func DecodeUTF7(b []byte) string {
	var (
		units = make([]uint16, 0, len(b))

		shifted   bool
		firstByte bool
		bits      uint32
		bitCount  int
	)

	for _, c := range b {
		if shifted {
			if c < 0x80 && base64Values[c] >= 0 {
				firstByte = false
				bits = bits<<6 | uint32(base64Values[c])
				bitCount += 6
				if bitCount >= 16 {
					units = append(units, uint16(bits>>(bitCount-16)))
					bitCount -= 16
					bits &= 1<<bitCount - 1
				}
				continue
			}

			shifted = false
			if c == '-' {
				if firstByte {
					units = append(units, '+')
				}
				continue
			}
		} else if c == '+' {
			shifted, firstByte = true, true
			bits, bitCount = 0, 0
			continue
		}

		units = append(units, uint16(c))
	}

	return string(utf16.Decode(units))
}
