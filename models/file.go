package models

import (
	"time"

	"github.com/google/uuid"
)

// File represents a file metadata record. StoredName is the name the blob
// lives under in storage; OriginalName is whatever the client uploaded.
type File struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"-"`
	StoredName   string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	MimeType     string    `json:"mime"`
	Size         int64     `json:"size"`
	CreatedAt    time.Time `json:"created_at"`
}
