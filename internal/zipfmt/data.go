package zipfmt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ReadUint32At seeks rs to the absolute offset off and reads a
// little-endian uint32.
func ReadUint32At(rs io.ReadSeeker, off int64) (uint32, error) {
	if _, err := rs.Seek(off, io.SeekStart); err != nil {
		return 0, fmt.Errorf("failed to seek to offset %d: %w", off, err)
	}

	var v uint32
	if err := binary.Read(rs, binary.LittleEndian, &v); err != nil {
		return 0, fmt.Errorf("failed to read uint32 at offset %d: %w", off, err)
	}
	return v, nil
}

// ReadEOCDFields decodes the fixed part of the EOCD record whose signature
// starts at off into r. The signature itself is not checked.
func ReadEOCDFields(rs io.ReadSeeker, off int64, r *EOCDRecord) error {
	if _, err := rs.Seek(off+SignatureLen, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to EOCD fields at offset %d: %w", off+SignatureLen, err)
	}

	data := &struct {
		DiskNumber    uint16
		CDDiskNumber  uint16
		CDCountOnDisk uint16
		CDCount       uint16
		CDSize        uint32
		CDOffset      uint32
		CommentLength uint16
	}{}
	if err := binary.Read(rs, binary.LittleEndian, data); err != nil {
		return fmt.Errorf("failed to read EOCD fields at offset %d: %w", off+SignatureLen, err)
	}

	r.Offset = off
	r.DiskNumber = data.DiskNumber
	r.CDDiskNumber = data.CDDiskNumber
	r.CDCountOnDisk = data.CDCountOnDisk
	r.CDCount = data.CDCount
	r.CDSize = data.CDSize
	r.CDOffset = data.CDOffset
	r.CommentLength = data.CommentLength
	return nil
}

// ReadBytesAt reads up to n bytes starting at the absolute offset off.
// Reaching EOF early is not an error: the returned slice is simply shorter.
func ReadBytesAt(rs io.ReadSeeker, off int64, n int) ([]byte, error) {
	if _, err := rs.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to offset %d: %w", off, err)
	}

	buf := make([]byte, n)
	readN, err := io.ReadFull(rs, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return buf[:readN], nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %d bytes at offset %d: %w", n, off, err)
	}
	return buf, nil
}
