package evidence

// UploadEvidenceInput carries the metadata of an uploaded file. File bytes are
// never passed in.
type UploadEvidenceInput struct {
	ObligationID int64
	Filename     string
	SizeBytes    int64
	Note         *string
}
