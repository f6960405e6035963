package policy

import "errors"

var ErrForbidden = errors.New("forbidden")

// Role de un perfil. Los dos únicos ejes de autorización del sistema
// son rol y ownership; no hay jerarquías ni delegación.
type Role string

const (
	RoleAdopter Role = "adopter"
	RoleShelter Role = "shelter"
)

func ValidRole(r Role) bool {
	return r == RoleAdopter || r == RoleShelter
}

// Action identifica cada operación protegida.
// Las lecturas de mascotas son públicas y no pasan por aquí.
type Action string

const (
	ActionPetCreate Action = "pet:create"
	ActionPetUpdate Action = "pet:update"
	ActionPetDelete Action = "pet:delete"

	ActionApplicationCreate    Action = "application:create"
	ActionApplicationsReadUser Action = "applications:read_user"

	ActionMessageCreate    Action = "message:create"
	ActionMessageRead      Action = "message:read"
	ActionMessagesReadUser Action = "messages:read_user"
	ActionMessageMarkRead  Action = "message:mark_read"
)

// Actor es la vista mínima del perfil autenticado que necesita la política.
type Actor struct {
	UserID string
	Role   Role
}

// Target lleva los hechos de ownership sobre los que puede decidir una regla.
// Cada acción usa solo los campos que le aplican; el resto queda vacío.
type Target struct {
	// OwnerUserID: shelter dueño de la mascota (pet:update, pet:delete).
	OwnerUserID string

	// SubjectUserID: el "usuario X" de los listados por usuario.
	SubjectUserID string

	// SenderID / ReceiverID: extremos de un mensaje.
	SenderID   string
	ReceiverID string
}

type rule struct {
	role Role                      // "" = cualquier rol
	owns func(Actor, Target) bool // nil = sin condición de ownership
}

// Tabla plana (acción → rol requerido + predicado de ownership).
// Agregar una acción o rol es editar esta tabla, no N handlers.
var rules = map[Action]rule{
	ActionPetCreate: {role: RoleShelter},
	ActionPetUpdate: {role: RoleShelter, owns: func(a Actor, t Target) bool {
		return a.UserID == t.OwnerUserID
	}},
	ActionPetDelete: {role: RoleShelter, owns: func(a Actor, t Target) bool {
		return a.UserID == t.OwnerUserID
	}},

	ActionApplicationCreate: {role: RoleAdopter},
	ActionApplicationsReadUser: {owns: func(a Actor, t Target) bool {
		return a.UserID == t.SubjectUserID || a.Role == RoleShelter
	}},

	ActionMessageCreate: {owns: func(a Actor, t Target) bool {
		return a.UserID == t.SenderID
	}},
	ActionMessageRead: {owns: func(a Actor, t Target) bool {
		return a.UserID == t.SenderID || a.UserID == t.ReceiverID
	}},
	ActionMessagesReadUser: {owns: func(a Actor, t Target) bool {
		return a.UserID == t.SubjectUserID
	}},
	ActionMessageMarkRead: {owns: func(a Actor, t Target) bool {
		return a.UserID == t.ReceiverID
	}},
}

// Decide evalúa (actor, acción, target) → nil o ErrForbidden.
// Función pura: la existencia de las entidades referidas se valida antes,
// en el handler/servicio (eso es NotFound, no Forbidden).
func Decide(actor Actor, action Action, t Target) error {
	r, ok := rules[action]
	if !ok {
		// deny por default: una acción no registrada nunca pasa
		return ErrForbidden
	}
	if r.role != "" && actor.Role != r.role {
		return ErrForbidden
	}
	if r.owns != nil && !r.owns(actor, t) {
		return ErrForbidden
	}
	return nil
}
