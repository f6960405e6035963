package diskstore

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_SaveThenDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir, "/static/images/pets")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	content := []byte("fake image bytes")
	url, err := s.Save(context.Background(), bytes.NewReader(content), "Sunny Photo.JPEG")
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if !strings.HasPrefix(url, "/static/images/pets/") {
		t.Fatalf("expected URL under public prefix, got %q", url)
	}
	if !strings.HasSuffix(url, ".jpeg") {
		t.Fatalf("expected lowercased extension preserved, got %q", url)
	}

	onDisk := filepath.Join(dir, path.Base(url))
	got, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("stored content mismatch")
	}

	if err := s.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, err=%v", err)
	}

	// segunda vez: idempotente
	if err := s.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete #2 error: %v", err)
	}
}

func TestStore_Delete_RejectsForeignURL(t *testing.T) {
	s, err := New(t.TempDir(), "/static/images/pets")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if err := s.Delete(context.Background(), "/otra/cosa/archivo.jpeg"); err != ErrNotManaged {
		t.Fatalf("expected ErrNotManaged, got %v", err)
	}

	// URL vacía no es error
	if err := s.Delete(context.Background(), "  "); err != nil {
		t.Fatalf("expected nil for empty url, got %v", err)
	}
}

func TestStore_UniqueNamesPerSave(t *testing.T) {
	s, err := New(t.TempDir(), "/static/images/pets")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	u1, err := s.Save(context.Background(), strings.NewReader("a"), "same.jpeg")
	if err != nil {
		t.Fatalf("Save #1 error: %v", err)
	}
	u2, err := s.Save(context.Background(), strings.NewReader("b"), "same.jpeg")
	if err != nil {
		t.Fatalf("Save #2 error: %v", err)
	}
	if u1 == u2 {
		t.Fatalf("expected distinct URLs for repeated filename, got %q", u1)
	}
}
