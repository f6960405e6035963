package diskstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotManaged = errors.New("url not managed by this store")

// Store guarda imágenes en un directorio local servido estáticamente.
// Cada archivo recibe un nombre aleatorio (se conserva la extensión), así
// que dos uploads concurrentes nunca chocan en la práctica.
type Store struct {
	dir          string
	publicPrefix string
}

// New crea el directorio si hace falta. publicPrefix es el path bajo el
// que el router sirve dir (p.ej. "/static/images/pets").
func New(dir, publicPrefix string) (*Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("diskstore: dir required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	publicPrefix = "/" + strings.Trim(strings.TrimSpace(publicPrefix), "/")

	return &Store{
		dir:          dir,
		publicPrefix: publicPrefix,
	}, nil
}

func (s *Store) Dir() string          { return s.dir }
func (s *Store) PublicPrefix() string { return s.publicPrefix }

func (s *Store) Save(ctx context.Context, r io.Reader, originalFilename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	name := uuid.NewString() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return path.Join(s.publicPrefix, name), nil
}

// Delete borra el archivo detrás de una URL propia. Idempotente.
func (s *Store) Delete(ctx context.Context, publicURL string) error {
	publicURL = strings.TrimSpace(publicURL)
	if publicURL == "" {
		return nil
	}
	if !strings.HasPrefix(publicURL, s.publicPrefix+"/") {
		return ErrNotManaged
	}

	// path.Base corta cualquier intento de traversal
	name := path.Base(publicURL)
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
