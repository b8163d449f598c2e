package zipfmt

// Record signatures, as little-endian uint32 values.
const (
	// LocalFileHeaderSignature ("PK\x03\x04") starts every local file header.
	LocalFileHeaderSignature uint32 = 0x04034b50
	// EOCDSignature ("PK\x05\x06") starts the end of central directory record.
	EOCDSignature uint32 = 0x06054b50
)

const (
	// SignatureLen is the size in bytes of a record signature.
	SignatureLen = 4

	// EOCDMinLen is the size of an EOCD record with an empty comment:
	// signature(4) + fixed fields(16) + comment length(2).
	EOCDMinLen = 22

	// EOCDFixedFieldsLen is the size of the fields between the signature
	// and the comment length.
	EOCDFixedFieldsLen = 16

	// CommentLengthOffset is where the comment length sits, relative to
	// the start of the EOCD record.
	CommentLengthOffset = SignatureLen + EOCDFixedFieldsLen

	// MaxCommentLen is the largest comment a uint16 length can declare.
	MaxCommentLen = 0xffff

	// MinScanOffset is the lowest offset the backward scan will test
	// for an EOCD signature, after the first candidate.
	MinScanOffset = 5
)
