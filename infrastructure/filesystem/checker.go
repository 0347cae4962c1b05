package filesystem

import (
	"os"

	"music-extractor/domain/extract"
)

// Checker implements extract.FileChecker using the os package
type Checker struct{}

// NewChecker creates a new filesystem checker
func NewChecker() *Checker {
	return &Checker{}
}

// Exists returns true if the file exists
func (c *Checker) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Ensure Checker implements extract.FileChecker
var _ extract.FileChecker = (*Checker)(nil)
