package storage

import (
	"bytes"
	"errors"
	"testing"
)

func TestDiskStoreRejections(t *testing.T) {
	store, err := NewDiskStore(t.TempDir(), 64)
	if err != nil {
		t.Fatalf("store init failed: %v", err)
	}

	t.Run("wrong extension", func(t *testing.T) {
		_, err := store.Save("resume.docx", []byte("%PDF-1.4 data"))
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("expected ErrNotPDF, got %v", err)
		}
	})

	t.Run("missing magic header", func(t *testing.T) {
		_, err := store.Save("resume.pdf", []byte("plain text pretending"))
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("expected ErrNotPDF, got %v", err)
		}
	})

	t.Run("oversize upload", func(t *testing.T) {
		_, err := store.Save("resume.pdf", bytes.Repeat([]byte("a"), 65))
		if !errors.Is(err, ErrTooLarge) {
			t.Errorf("expected ErrTooLarge, got %v", err)
		}
	})

	t.Run("truncated pdf body", func(t *testing.T) {
		// Correct header but nothing behind it: the parser must reject it.
		_, err := store.Save("resume.pdf", []byte("%PDF-1.4"))
		if !errors.Is(err, ErrNotPDF) {
			t.Errorf("expected ErrNotPDF, got %v", err)
		}
	})
}
