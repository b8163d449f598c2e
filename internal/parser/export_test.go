package parser

// SetCandidateHook makes r call fn with every offset tested for the EOCD signature.
func (r *CommentReader) SetCandidateHook(fn func(pos int64)) {
	r.onCandidate = fn
}

// ScanBlockSize exposes scanBlockSize to tests.
const ScanBlockSize = scanBlockSize
