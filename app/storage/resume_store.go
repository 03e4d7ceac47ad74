package storage

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
)

var (
	ErrNotPDF   = errors.New("resume must be a PDF file")
	ErrTooLarge = errors.New("resume exceeds the maximum allowed size")
)

// ResumeStore persists uploaded resume blobs and hands back the opaque path
// stored on the application record.
type ResumeStore interface {
	Save(filename string, data []byte) (string, error)
}

// DiskStore keeps resumes on the local filesystem under a generated name.
// The stored path is what clients later use to fetch the file.
type DiskStore struct {
	dir     string
	maxSize int64
}

func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create resume dir: %w", err)
	}
	return &DiskStore{dir: dir, maxSize: maxSize}, nil
}

func (s *DiskStore) Save(filename string, data []byte) (string, error) {
	if int64(len(data)) > s.maxSize {
		return "", ErrTooLarge
	}
	if err := ValidatePDF(filename, data); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".pdf"
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write resume: %w", err)
	}
	return "/" + filepath.ToSlash(filepath.Join(s.dir, name)), nil
}

// ValidatePDF rejects anything that is not a parseable PDF. The extension
// and magic-header checks fail fast; the full parse catches files that only
// pretend to be PDFs.
func ValidatePDF(filename string, data []byte) error {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return ErrNotPDF
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return ErrNotPDF
	}
	if _, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		return ErrNotPDF
	}
	return nil
}
