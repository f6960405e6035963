package auth

import "context"

// Verifier valida una credencial contra el proveedor de identidad
// y devuelve claims o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
