package media

import (
	"context"
	"io"
)

// Store guarda binarios subidos y devuelve la URL pública con la que
// se referencian desde los registros de mascotas.
type Store interface {
	// Save escribe el contenido y devuelve la URL pública.
	// originalFilename solo se usa para conservar la extensión.
	Save(ctx context.Context, r io.Reader, originalFilename string) (string, error)

	// Delete borra el archivo detrás de una URL pública.
	// Idempotente: si no existe, no es error.
	Delete(ctx context.Context, publicURL string) error
}
