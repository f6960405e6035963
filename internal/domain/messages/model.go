package messages

import "time"

// Message es un mensaje directo entre dos identidades externas,
// opcionalmente asociado a una mascota. IsRead solo pasa de false a true
// y únicamente a mano del receiver.
type Message struct {
	ID         string
	SenderID   string
	ReceiverID string
	PetID      string // "" = sin mascota asociada

	Content   string
	Timestamp time.Time
	IsRead    bool
}
