package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The directory where files are written
	nameFunc func(displayName string) string
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		return nil, errors.New("storage path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		nameFunc: StorageName,
	}, nil
}

// BasePath returns the directory files are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// SaveFile copies the upload into basePath under a generated name.
func (ls *LocalStorage) SaveFile(ctx context.Context, fileHeader *multipart.FileHeader) (*FileInfo, error) {
	if fileHeader == nil {
		return nil, errors.New("no file provided")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// The directory may have been removed since startup
	if err := os.MkdirAll(ls.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	displayName := DisplayName(fileHeader.Filename)
	storageName := ls.nameFunc(displayName)
	dstPath := filepath.Join(ls.basePath, storageName)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write uploaded file content")
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	info := &FileInfo{
		Path:        storedPath(storageName),
		StorageName: storageName,
		Filename:    displayName,
		FileSize:    written,
		MimeType:    fileHeader.Header.Get("Content-Type"),
	}
	logger.Info().Str("filename", displayName).Str("saved_as", storageName).Int64("size", written).Msg("File saved successfully")
	return info, nil
}

// DeleteFile removes a file from the storage filesystem.
func (ls *LocalStorage) DeleteFile(ctx context.Context, filePath string) error {
	if filePath == "" {
		return nil
	}

	name, ok := storageNameFromPath(filePath)
	if !ok {
		return fmt.Errorf("invalid file path: %s", filePath)
	}

	physicalPath := filepath.Join(ls.basePath, name)
	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// GetFullPath returns the filesystem path for a recorded file path.
func (ls *LocalStorage) GetFullPath(filePath string) string {
	name, ok := storageNameFromPath(filePath)
	if !ok {
		return ""
	}
	return filepath.Join(ls.basePath, name)
}
