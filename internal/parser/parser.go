package parser

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/ossyrian/zipcomment/internal/textenc"
	"github.com/ossyrian/zipcomment/internal/types"
	"github.com/ossyrian/zipcomment/internal/zipfmt"
)

// ErrSourceTooShort is returned if the source cannot hold even an EOCD
// record with an empty comment.
var ErrSourceTooShort = errors.New("source too short to contain an end of central directory record")

// scanBlockSize is how many bytes FindEOCD reads per block while scanning
// backwards.
const scanBlockSize = 16 * 1024

// Options customises how a comment is located and decoded.
type Options struct {
	// Encoding is used to decode the comment bytes. Defaults to types.DefaultEncoding.
	Encoding types.Encoding

	// MaxScanBytes limits how far back from the end of the source the EOCD
	// signature is searched for. 0 scans all the way to the start.
	MaxScanBytes int64

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// CommentReader locates and reads the comment of a ZIP archive.
//
// All reads use absolute offsets so the position of the underlying source
// between calls does not matter.
type CommentReader struct {
	file   io.ReadSeeker
	opts   Options
	logger *slog.Logger
	size   int64

	// block holds the source bytes [blockOff, blockOff+len(block)) being scanned.
	block    []byte
	blockOff int64

	onCandidate func(pos int64)
}

// NewCommentReader returns a CommentReader for src. src is not closed by
// the reader.
func NewCommentReader(src io.ReadSeeker, optFns ...func(*Options)) *CommentReader {
	opts := Options{
		Encoding: types.DefaultEncoding,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CommentReader{
		file:   src,
		opts:   opts,
		logger: logger,
		size:   -1,
	}
}

// Size returns the total length of the source, determined by seeking to its end.
func (r *CommentReader) Size() (int64, error) {
	if r.size >= 0 {
		return r.size, nil
	}

	size, err := r.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to determine source size: %w", err)
	}
	r.size = size
	return size, nil
}

// ReadLeadingSignature reports whether the source starts with a local file
// header signature.
//
// A source shorter than 4 bytes is an error, not a mismatch.
func (r *CommentReader) ReadLeadingSignature() (bool, error) {
	sig, err := zipfmt.ReadUint32At(r.file, 0)
	if err != nil {
		return false, fmt.Errorf("failed to read leading signature: %w", err)
	}

	if sig != zipfmt.LocalFileHeaderSignature {
		r.logger.Debug("leading signature mismatch",
			"got", fmt.Sprintf("0x%08x", sig),
			"expected", fmt.Sprintf("0x%08x", zipfmt.LocalFileHeaderSignature),
		)
		return false, nil
	}
	return true, nil
}

// FindEOCD scans backwards from the end of the source for the EOCD signature.
//
// The first candidate is the offset 22 bytes before EOF. Each miss moves the
// candidate back by one byte; the scan always tests the first candidate and
// stops once the next one would fall below zipfmt.MinScanOffset. The source
// is read in blocks of scanBlockSize bytes going backwards, and candidates
// are matched in memory. Returns a nil record and nil error if no signature
// is found.
func (r *CommentReader) FindEOCD() (*zipfmt.EOCDRecord, error) {
	size, err := r.Size()
	if err != nil {
		return nil, err
	}
	if size < zipfmt.EOCDMinLen {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrSourceTooShort, size, zipfmt.EOCDMinLen)
	}

	start := size - zipfmt.EOCDMinLen
	lowest := int64(zipfmt.MinScanOffset)
	if r.opts.MaxScanBytes > 0 {
		lowest = max(lowest, size-r.opts.MaxScanBytes)
	}

	r.logger.Debug("scanning for EOCD",
		"size", humanize.IBytes(uint64(size)),
		"start", start,
		"lowest", lowest,
	)

	r.block, r.blockOff = nil, 0
	defer func() { r.block = nil }()

	var candidates int64
	for pos := start; ; {
		candidates++
		found, err := r.matchAt(pos, lowest)
		if err != nil {
			return nil, err
		}
		if found {
			rec := &zipfmt.EOCDRecord{}
			if err := zipfmt.ReadEOCDFields(r.file, pos, rec); err != nil {
				return nil, err
			}

			r.logger.Debug("found EOCD",
				"offset", rec.Offset,
				"disk_number", rec.DiskNumber,
				"cd_disk_number", rec.CDDiskNumber,
				"cd_count_on_disk", rec.CDCountOnDisk,
				"cd_count", rec.CDCount,
				"cd_size", rec.CDSize,
				"cd_offset", rec.CDOffset,
				"comment_length", rec.CommentLength,
			)
			return rec, nil
		}

		// a 4-byte read followed by a -5 relative seek nets one byte back.
		if pos--; pos < lowest {
			break
		}
	}

	r.logger.Debug("no EOCD found",
		"candidates", candidates,
	)
	return nil, nil
}

// matchAt reports whether the EOCD signature starts at pos, refilling the
// scan block if pos is not covered by it. lowest is the lowest candidate the
// scan will test so blocks never reach below it.
func (r *CommentReader) matchAt(pos, lowest int64) (bool, error) {
	if r.onCandidate != nil {
		r.onCandidate(pos)
	}

	if pos < r.blockOff || pos+zipfmt.SignatureLen > r.blockOff+int64(len(r.block)) {
		end := pos + zipfmt.SignatureLen
		off := max(min(lowest, pos), end-scanBlockSize, 0)

		block, err := zipfmt.ReadBytesAt(r.file, off, int(end-off))
		if err != nil {
			return false, fmt.Errorf("failed to read EOCD candidates: %w", err)
		}
		if int64(len(block)) < end-off {
			return false, fmt.Errorf("failed to read EOCD candidates at offset %d: %w", off, io.ErrUnexpectedEOF)
		}
		r.block, r.blockOff = block, off
	}

	i := pos - r.blockOff
	return binary.LittleEndian.Uint32(r.block[i:i+zipfmt.SignatureLen]) == zipfmt.EOCDSignature, nil
}

// ReadComment reads the comment bytes that follow rec.
//
// If the source ends before the declared length, whatever is available is
// returned.
func (r *CommentReader) ReadComment(rec *zipfmt.EOCDRecord) error {
	if rec.CommentLength == 0 {
		rec.Comment = nil
		return nil
	}

	comment, err := zipfmt.ReadBytesAt(r.file, rec.Offset+zipfmt.EOCDMinLen, int(rec.CommentLength))
	if err != nil {
		return fmt.Errorf("failed to read comment: %w", err)
	}
	rec.Comment = comment

	if rec.Truncated() {
		r.logger.Warn("comment is truncated",
			"declared", rec.CommentLength,
			"available", len(comment),
		)
	}
	return nil
}

// Extract runs the full algorithm and returns the decoded comment.
//
// A source that does not start with a local file header, has no EOCD
// record, or has an empty comment yields "" and a nil error. Only I/O
// failures, a source shorter than the minimum EOCD record, and decoding
// failures are reported.
func (r *CommentReader) Extract() (string, error) {
	ok, err := r.ReadLeadingSignature()
	if err != nil {
		return "", err
	}
	if !ok {
		r.logger.Info("not recognized as a ZIP archive")
		return "", nil
	}

	rec, err := r.FindEOCD()
	if err != nil {
		return "", err
	}
	if rec == nil {
		r.logger.Info("no end of central directory record found")
		return "", nil
	}
	if rec.CommentLength == 0 {
		r.logger.Info("archive has no comment")
		return "", nil
	}

	if err := r.ReadComment(rec); err != nil {
		return "", err
	}

	comment, err := textenc.Decode(r.opts.Encoding, rec.Comment)
	if err != nil {
		return "", err
	}

	r.logger.Info("read comment",
		"encoding", r.opts.Encoding,
		"length", humanize.IBytes(uint64(len(rec.Comment))),
	)
	return comment, nil
}

// ExtractComment returns the decoded comment of the ZIP archive in src.
// See CommentReader.Extract for which conditions are errors.
func ExtractComment(src io.ReadSeeker, optFns ...func(*Options)) (string, error) {
	return NewCommentReader(src, optFns...).Extract()
}

// ExtractCommentFromFile opens name, extracts its comment and closes it.
func ExtractCommentFromFile(name string, optFns ...func(*Options)) (string, error) {
	file, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("failed to open ZIP file: %w", err)
	}
	defer file.Close()

	optFns = append([]func(*Options){func(opts *Options) {
		opts.Logger = slog.With("file", name)
	}}, optFns...)

	return ExtractComment(file, optFns...)
}
