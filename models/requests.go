package models

// UploadRequest carries one encrypted file to the server. The fields are
// exactly the three opaque values plus the client-side identifier; the
// server persists them verbatim.
type UploadRequest struct {
	// FileID is the client-generated identifier for the new file.
	FileID string `json:"file_id"`

	// Body is the encoded encrypted file body.
	Body string `json:"body"`

	// Filename is the encoded encrypted filename.
	Filename string `json:"filename"`

	// Metadata is the encoded encrypted metadata record.
	Metadata string `json:"metadata"`

	// Hash is the transport integrity HMAC over the opaque payload
	// fields. Set by the adapter; verified by the server before the blob
	// is persisted.
	Hash string `json:"hash,omitempty"`
}

// PayloadFields returns the subset of the request covered by the
// transport integrity hash. Client and server must marshal the same
// value or the HMAC comparison is meaningless.
func (r UploadRequest) PayloadFields() UploadRequest {
	return UploadRequest{
		FileID:   r.FileID,
		Body:     r.Body,
		Filename: r.Filename,
		Metadata: r.Metadata,
	}
}

// ListResponse is the payload of the file-listing endpoint.
type ListResponse struct {
	// Files holds one lightweight descriptor per non-deleted file owned
	// by the authenticated user.
	Files []FileListing `json:"files"`
}
