package applications

import "time"

// Status de una solicitud. Por ahora solo "pending" al crear; la revisión
// del shelter ocurre fuera de este backend.
const StatusPending = "pending"

// Application es una solicitud de adopción enviada por un adopter.
// UserID y ShelterID son identidades externas sueltas (sin FK);
// ShelterID se deriva del dueño de la mascota, nunca del cliente.
type Application struct {
	ID        string
	PetID     string
	UserID    string
	ShelterID string

	FullName string
	Email    string
	Phone    string
	Address  string

	LivingSituation       string
	PreviousPetExperience string
	WhyAdopt              string
	HomeDescription       string

	Status    string
	CreatedAt time.Time
}
