package filesystem

import "os"

// Writer writes files using the os package
type Writer struct{}

// NewWriter creates a new filesystem writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile writes data to path, creating or truncating the file
func (w *Writer) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
