package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/swapnilk/acadesk/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
	baseURL  string // The base URL to access the stored files (optional, for generating full URLs)
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the required directory path on the server.
// baseURL is optional; if provided, it will be prepended to returned file paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	// Ensure the base path exists
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

// SaveBytes writes data to basePath/subPath/filename, creating the
// subdirectory as needed. An existing file with the same name is
// overwritten, which keeps letter regeneration idempotent.
func (ls *LocalStorage) SaveBytes(data []byte, subPath, filename string) (string, error) {
	fullDirPath := ls.basePath
	if subPath != "" {
		fullDirPath = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(fullDirPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", fullDirPath).Msg("Failed to create subdirectory")
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	dstPath := filepath.Join(fullDirPath, filename)
	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write file")
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relativePath := filename
	if subPath != "" {
		relativePath = filepath.ToSlash(filepath.Join(subPath, filename))
	}

	publicPath := "/" + relativePath
	if ls.baseURL != "" {
		publicPath = strings.TrimSuffix(ls.baseURL, "/") + publicPath
	}

	logger.Debug().Str("path", dstPath).Int("bytes", len(data)).Msg("File stored")
	return publicPath, nil
}

// DeleteFile removes a previously stored file. A missing file is not
// treated as an error.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	fullPath := ls.GetFullPath(filePath)
	if fullPath == "" {
		return nil
	}
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		logger.Error().Err(err).Str("path", fullPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFullPath maps a stored public path back to its location on disk.
func (ls *LocalStorage) GetFullPath(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	relative := fileURL
	if ls.baseURL != "" {
		relative = strings.TrimPrefix(relative, strings.TrimSuffix(ls.baseURL, "/"))
	}
	relative = strings.TrimPrefix(relative, "/")
	return filepath.Join(ls.basePath, filepath.FromSlash(relative))
}
