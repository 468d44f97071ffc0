package filestorage

import (
	"mime/multipart"
)

// UploadKind identifies a category of uploaded file. Each kind maps to its own
// subdirectory, size cap, and MIME allowlist.
type UploadKind string

const (
	KindAvatar   UploadKind = "avatars"
	KindCarousel UploadKind = "carousel"
	KindEvent    UploadKind = "events"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveUpload validates an uploaded file against the kind's limits and
	// stores it, returning the accessible path
	SaveUpload(fileHeader *multipart.FileHeader, kind UploadKind) (string, error)

	// DeleteFile removes a stored file; missing files are not an error
	DeleteFile(filePath string) error
}
