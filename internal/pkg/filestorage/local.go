package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kemumsa/backend/internal/pkg/logger"
)

// uploadLimits describes what a given upload kind accepts
type uploadLimits struct {
	maxSize      int64
	mimePrefixes []string
}

var limitsByKind = map[UploadKind]uploadLimits{
	KindAvatar: {
		maxSize:      5 << 20,
		mimePrefixes: []string{"image/"},
	},
	KindCarousel: {
		maxSize:      10 << 20,
		mimePrefixes: []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp"},
	},
	KindEvent: {
		maxSize:      50 << 20,
		mimePrefixes: []string{"image/", "video/", "audio/"},
	},
}

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prefix for accessing stored files
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// baseURL is prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// validateUpload checks the file against the kind's size cap and MIME allowlist
func validateUpload(fileHeader *multipart.FileHeader, kind UploadKind) error {
	limits, ok := limitsByKind[kind]
	if !ok {
		return fmt.Errorf("unknown upload kind %q", kind)
	}

	if fileHeader.Size > limits.maxSize {
		return fmt.Errorf("file exceeds %dMB limit for %s uploads", limits.maxSize>>20, kind)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	for _, prefix := range limits.mimePrefixes {
		if strings.HasPrefix(contentType, prefix) {
			return nil
		}
	}
	return fmt.Errorf("file type %q is not allowed for %s uploads", contentType, kind)
}

// SaveUpload validates and stores an uploaded file under the kind's subdirectory
func (ls *LocalStorage) SaveUpload(fileHeader *multipart.FileHeader, kind UploadKind) (string, error) {
	if fileHeader == nil {
		return "", nil // no file uploaded
	}

	if err := validateUpload(fileHeader, kind); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	subDir := filepath.Join(ls.basePath, string(kind))
	if err := os.MkdirAll(subDir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", subDir).Msg("Failed to create upload subdirectory")
		return "", fmt.Errorf("failed to create upload subdirectory: %w", err)
	}

	// Randomized filename to prevent collisions
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext

	dstPath := filepath.Join(subDir, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := strings.TrimRight(ls.baseURL, "/") + "/" + string(kind) + "/" + uniqueFilename

	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Str("accessible_path", accessiblePath).Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a file from the storage filesystem. It accepts the
// accessible path as stored in the database and returns nil when the file
// does not exist, so deletion stays idempotent.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	if filePath == "" {
		return nil
	}

	// Strip the URL prefix if present; keep the kind subdirectory
	relative := filePath
	if ls.baseURL != "" && strings.HasPrefix(filePath, ls.baseURL) {
		relative = strings.TrimPrefix(filePath, ls.baseURL)
	}
	relative = strings.TrimLeft(relative, "/")

	parts := strings.Split(relative, "/")
	if len(parts) < 1 || parts[len(parts)-1] == "" {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	// Only the trailing kind/filename portion maps onto the storage root
	if len(parts) > 2 {
		parts = parts[len(parts)-2:]
	}
	physicalPath := filepath.Join(append([]string{ls.basePath}, parts...)...)

	if _, err := os.Stat(physicalPath); os.IsNotExist(err) {
		logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
		return nil
	}

	if err := os.Remove(physicalPath); err != nil {
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}
