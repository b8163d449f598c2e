package zipfmt

// EOCDRecord is the end of central directory record of a ZIP file.
//
// Only the comment matters to this tool; the fixed fields are decoded for
// logging and are never validated.
//
// See https://en.wikipedia.org/wiki/ZIP_(file_format)#End_of_central_directory_record_(EOCD).
type EOCDRecord struct {
	Offset int64 // absolute offset of the signature in the source

	DiskNumber    uint16 // number of this disk
	CDDiskNumber  uint16 // disk where the central directory starts
	CDCountOnDisk uint16 // central directory records on this disk
	CDCount       uint16 // total central directory records
	CDSize        uint32 // size of the central directory in bytes
	CDOffset      uint32 // offset of the central directory from start of archive

	CommentLength uint16 // declared comment length
	Comment       []byte // raw comment bytes; may be shorter than CommentLength if truncated
}

// Truncated reports whether fewer comment bytes were available than declared.
func (r *EOCDRecord) Truncated() bool {
	return len(r.Comment) < int(r.CommentLength)
}
