package pets

import "time"

// Species define las especies soportadas.
// Los valores capitalizados vienen del cliente web existente.
type Species string

const (
	SpeciesDog   Species = "Dog"
	SpeciesCat   Species = "Cat"
	SpeciesOther Species = "Other"
)

func ValidSpecies(s Species) bool {
	return s == SpeciesDog || s == SpeciesCat || s == SpeciesOther
}

// Status del ciclo de adopción.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusAdopted   Status = "adopted"
)

func ValidStatus(s Status) bool {
	return s == StatusAvailable || s == StatusPending || s == StatusAdopted
}

type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnknown
}

// Pet es una mascota listada para adopción.
// OwnerUserID es la identidad externa del shelter que la creó y es lo
// que gatea update/delete.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Age     string // texto libre: "2 years", "6 months"
	Species Species
	Breed   string
	Gender  Gender

	Description  string
	Temperament  string
	MedicalNeeds string

	Status   Status
	ImageURL string // "" = sin imagen

	CreatedAt time.Time
	UpdatedAt time.Time
}
