package domain

import "time"

// Evidence describes a file submitted in support of an obligation.
// Only metadata is kept; file bytes are never stored.
type Evidence struct {
	ID           int64     `json:"id"`
	ObligationID int64     `json:"obligation_id"`
	Filename     string    `json:"filename"`
	FilePath     string    `json:"file_path"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Note         *string   `json:"note"`
}
