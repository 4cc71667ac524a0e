package filestorage

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveBytes stores raw content under the given subdirectory and
	// filename, overwriting any existing file, and returns the public
	// path of the stored file.
	SaveBytes(data []byte, subPath, filename string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error

	// GetFullPath returns the full filesystem path for a given file URL
	GetFullPath(fileURL string) string
}
