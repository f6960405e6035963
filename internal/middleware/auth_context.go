package middleware

import (
	"context"
	"net/http"
	"strings"

	"petpals-backend/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext extrae la credencial bearer y deja claims en el contexto.
// - verifier != nil: la credencial se valida contra el proveedor de identidad.
// - verifier == nil (modo trust): el token crudo se toma como identidad
//   externa tal cual. Es el placeholder conocido: la verificación real de la
//   firma es responsabilidad del proveedor externo.
// Si no hay claims, el request sigue; cada handler decide si exige auth.
func AuthContext(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			var claims auth.Claims
			if verifier == nil {
				claims = auth.Claims{UserID: token}
			} else {
				verified, err := verifier.Verify(r.Context(), token)
				if err != nil {
					// no cortamos acá; el handler responde 401 si necesitaba actor
					next.ServeHTTP(w, r)
					return
				}
				claims = verified
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(header string) string {
	if strings.TrimSpace(header) == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
