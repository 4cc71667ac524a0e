package filestorage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveBytesAndGetFullPath(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir, "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	publicPath, err := storage.SaveBytes([]byte("pdf-bytes"), "letters", "notice.pdf")
	if err != nil {
		t.Fatalf("SaveBytes failed: %v", err)
	}
	if publicPath != "/letters/notice.pdf" {
		t.Errorf("expected /letters/notice.pdf, got %s", publicPath)
	}

	onDisk := storage.GetFullPath(publicPath)
	if onDisk != filepath.Join(dir, "letters", "notice.pdf") {
		t.Errorf("unexpected disk path %s", onDisk)
	}

	content, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("reading stored file failed: %v", err)
	}
	if string(content) != "pdf-bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestSaveBytesOverwrites(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if _, err := storage.SaveBytes([]byte("first"), "letters", "same.pdf"); err != nil {
		t.Fatalf("first SaveBytes failed: %v", err)
	}
	publicPath, err := storage.SaveBytes([]byte("second"), "letters", "same.pdf")
	if err != nil {
		t.Fatalf("second SaveBytes failed: %v", err)
	}

	content, err := os.ReadFile(storage.GetFullPath(publicPath))
	if err != nil {
		t.Fatalf("reading stored file failed: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("expected regeneration to overwrite, got %q", content)
	}
}

func TestDeleteFileMissingIsNotAnError(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "")
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	if err := storage.DeleteFile("/letters/never-existed.pdf"); err != nil {
		t.Errorf("deleting a missing file must not fail: %v", err)
	}
}
