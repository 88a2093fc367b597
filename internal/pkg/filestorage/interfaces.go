package filestorage

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// PathPrefix is the leading segment of every stored path, e.g. uploads/<name>.pdf.
	// It names the download route, not the storage directory or bucket.
	PathPrefix = "uploads"
	// PlaceholderName is used when the client sent a file part without a name
	PlaceholderName = "document.pdf"
	// defaultExt is applied when the display name carries no usable extension
	defaultExt = ".pdf"
)

// FileInfo represents information about a stored file
type FileInfo struct {
	Path        string // Path recorded on the row, always PathPrefix/StorageName
	StorageName string // Generated name the bytes live under
	Filename    string // Sanitized client-supplied display name
	FileSize    int64  // Size in bytes
	MimeType    string // MIME type declared by the client
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores an uploaded file under a generated name
	SaveFile(ctx context.Context, fileHeader *multipart.FileHeader) (*FileInfo, error)

	// DeleteFile removes a stored file by the path returned from SaveFile.
	// Deleting a missing file is not an error.
	DeleteFile(ctx context.Context, filePath string) error
}

// DisplayName reduces a client-supplied file name to its final element.
// Directory parts and traversal segments are dropped.
func DisplayName(clientName string) string {
	name := strings.ReplaceAll(clientName, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == "/" || name == ".." {
		return PlaceholderName
	}
	return name
}

// PlaceholderUpload wraps the bytes of a file part that arrived without a
// filename, so they can be saved like any upload under PlaceholderName.
func PlaceholderUpload(content []byte) (*multipart.FileHeader, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", PlaceholderName)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	// Held in memory, so there are no temporary files to remove
	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(content)) + 1<<20)
	if err != nil {
		return nil, err
	}
	files := form.File["file"]
	if len(files) == 0 {
		return nil, errors.New("placeholder upload has no file part")
	}
	return files[0], nil
}

// StorageName generates a collision-free name that keeps the display name's extension.
func StorageName(displayName string) string {
	return uuid.NewString() + storageExt(displayName)
}

func storageExt(displayName string) string {
	ext := strings.ToLower(filepath.Ext(displayName))
	if len(ext) < 2 || len(ext) > 16 {
		return defaultExt
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return defaultExt
		}
	}
	return ext
}

// storedPath builds the path recorded on the row for a storage name
func storedPath(storageName string) string {
	return PathPrefix + "/" + storageName
}

// storageNameFromPath extracts and checks the storage name from a recorded path
func storageNameFromPath(filePath string) (string, bool) {
	name := path.Base(filepath.ToSlash(filePath))
	if name == "" || name == "." || name == "/" || name == ".." || name == PathPrefix {
		return "", false
	}
	return name, true
}
