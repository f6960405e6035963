package auth

// Claims representa la identidad extraída de la credencial bearer.
// UserID es el identificador externo (UID del proveedor); el perfil
// asociado se resuelve después contra el store.
type Claims struct {
	UserID string
	Email  string
}
