package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader assembles a real multipart.FileHeader the way gin would
// hand it to a handler, with the given content type and payload.
func buildFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{contentType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveUpload_StoresFileAndReturnsAccessiblePath(t *testing.T) {
	baseDir := t.TempDir()
	storage, err := NewLocalStorage(baseDir, "http://localhost:3000/uploads")
	require.NoError(t, err)

	fileHeader := buildFileHeader(t, "photo.png", "image/png", []byte("png-bytes"))

	path, err := storage.SaveUpload(fileHeader, KindAvatar)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "http://localhost:3000/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// The file must exist on disk under the kind subdirectory
	entries, err := os.ReadDir(filepath.Join(baseDir, string(KindAvatar)))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	content, err := os.ReadFile(filepath.Join(baseDir, string(KindAvatar), entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestSaveUpload_NilFileHeaderIsNoop(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads")
	require.NoError(t, err)

	path, err := storage.SaveUpload(nil, KindAvatar)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSaveUpload_RejectsDisallowedContentType(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads")
	require.NoError(t, err)

	fileHeader := buildFileHeader(t, "notes.pdf", "application/pdf", []byte("%PDF"))

	_, err = storage.SaveUpload(fileHeader, KindAvatar)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
}

func TestSaveUpload_RejectsOversizedFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads")
	require.NoError(t, err)

	fileHeader := buildFileHeader(t, "big.png", "image/png", []byte("x"))
	fileHeader.Size = limitsByKind[KindAvatar].maxSize + 1

	_, err = storage.SaveUpload(fileHeader, KindAvatar)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestDeleteFile_RemovesStoredFile(t *testing.T) {
	baseDir := t.TempDir()
	storage, err := NewLocalStorage(baseDir, "http://localhost:3000/uploads")
	require.NoError(t, err)

	fileHeader := buildFileHeader(t, "photo.jpg", "image/jpeg", []byte("jpg-bytes"))
	path, err := storage.SaveUpload(fileHeader, KindCarousel)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(path))

	entries, err := os.ReadDir(filepath.Join(baseDir, string(KindCarousel)))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteFile_MissingFileIsIdempotent(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "http://localhost:3000/uploads")
	require.NoError(t, err)

	assert.NoError(t, storage.DeleteFile("http://localhost:3000/uploads/avatars/gone.png"))
	assert.NoError(t, storage.DeleteFile(""))
}
