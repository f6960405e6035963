package main

import (
	"context"
	"errors"
	"os"
	"time"

	"petpals-backend/internal/adapters/storage/postgres"
	"petpals-backend/internal/config"
	"petpals-backend/internal/domain/owners"
	"petpals-backend/internal/domain/pets"
	"petpals-backend/internal/domain/profiles"
	"petpals-backend/internal/platform/logger"
)

// ID fijo para la identidad del refugio semilla; los pets cargados
// quedan a su nombre para que update/delete funcionen desde el arranque.
const seedShelterUserID = "seed-shelter"

func main() {
	cfg := config.Load()

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName + "-seed",
	})

	if err := cfg.RequireDatabaseURL(); err != nil {
		lg.Error("config inválida", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		lg.Error("no se pudo conectar a postgres", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		lg.Error("no se pudo crear el esquema", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	profilesSvc := profiles.NewService(postgres.NewProfilesRepo(db))
	ownersSvc := owners.NewService(postgres.NewOwnersRepo(db))
	petsSvc := pets.NewService(postgres.NewPetsRepo(db))

	// Perfil del refugio semilla (idempotente)
	_, err = profilesSvc.Register(ctx, profiles.RegisterInput{
		UserID:   seedShelterUserID,
		Email:    "shelter@petpals.local",
		FullName: "PetPals Shelter",
		Role:     "shelter",
	})
	switch {
	case err == nil:
		lg.Info("perfil del refugio creado", map[string]any{"user_id": seedShelterUserID})
	case errors.Is(err, profiles.ErrAlreadyRegistered):
		lg.Info("perfil del refugio ya existe", map[string]any{"user_id": seedShelterUserID})
	default:
		lg.Error("no se pudo crear el perfil del refugio", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Registro legacy de owner, conservado por compatibilidad
	_, err = ownersSvc.Create(ctx, owners.CreateInput{
		Name:  "PetPals Shelter",
		Email: "shelter@petpals.local",
		Phone: "+1-555-0100",
	})
	if err != nil && !errors.Is(err, owners.ErrEmailTaken) {
		lg.Error("no se pudo crear el owner legacy", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// Si ya hay pets cargados, no duplicar
	existing, err := petsSvc.List(ctx, pets.ListFilter{})
	if err != nil {
		lg.Error("no se pudo listar pets", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if len(existing) > 0 {
		lg.Info("ya hay pets cargados, seed omitido", map[string]any{"count": len(existing)})
		return
	}

	seedPets := []pets.CreateInput{
		{
			Name: "Sunny", Age: "2 years", Species: "Dog", Breed: "Golden Retriever",
			Gender:      "Male",
			Description: "A very friendly and energetic golden retriever puppy who loves to play fetch.",
			Temperament: "Playful, Loyal, Affectionate", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/sunny.jpeg",
		},
		{
			Name: "Whiskers", Age: "3 years", Species: "Cat", Breed: "Siamese",
			Gender:      "Female",
			Description: "A beautiful Siamese cat with piercing blue eyes, calm and loves cuddles.",
			Temperament: "Calm, Affectionate, Vocal", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/whiskers.jpeg",
		},
		{
			Name: "Buster", Age: "1 year", Species: "Dog", Breed: "Beagle",
			Gender:      "Male",
			Description: "A curious and scent-driven Beagle pup, great with kids and other dogs.",
			Temperament: "Curious, Friendly, Energetic", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/buster.jpeg",
		},
		{
			Name: "Patches", Age: "4 years", Species: "Cat", Breed: "Ragdoll",
			Gender:      "Female",
			Description: "A stunning Ragdoll cat with beautiful blue eyes and a very docile nature.",
			Temperament: "Gentle, Docile, Affectionate", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/patches.jpeg",
		},
		{
			Name: "Snowflake", Age: "1.5 years", Species: "Cat", Breed: "Turkish Angora",
			Gender:      "Female",
			Description: "A pure white Turkish Angora with mesmerizing blue eyes, very elegant.",
			Temperament: "Graceful, Playful, Intelligent", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/snowflake.jpeg",
		},
		{
			Name: "Rosie", Age: "6 months", Species: "Other", Breed: "Domestic Rabbit",
			Gender:      "Female",
			Description: "A fluffy brown rabbit, very curious and loves to hop around.",
			Temperament: "Curious, Gentle, Active", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/rosie.jpeg",
		},
		{
			Name: "Ozzy", Age: "5 years", Species: "Other", Breed: "Blue-fronted Amazon",
			Gender:      "Male",
			Description: "A vibrant Blue-fronted Amazon parrot, very talkative and enjoys interaction.",
			Temperament: "Intelligent, Social, Playful", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/ozzy.jpeg",
		},
		{
			Name: "Ginger", Age: "2 years", Species: "Cat", Breed: "Tabby",
			Gender:      "Female",
			Description: "A charming ginger tabby cat, loves exploring outdoors and sunbathing.",
			Temperament: "Independent, Affectionate, Outdoorsy", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/ginger.jpeg",
		},
		{
			Name: "Leo", Age: "3 years", Species: "Cat", Breed: "Tabby",
			Gender:      "Male",
			Description: "A striped tabby cat with striking green eyes, a calm and observant companion.",
			Temperament: "Calm, Observant, Gentle", MedicalNeeds: "None",
			ImageURL: "/static/images/pets/leo.jpeg",
		},
	}

	for _, in := range seedPets {
		p, err := petsSvc.Create(ctx, seedShelterUserID, in)
		if err != nil {
			lg.Error("no se pudo crear el pet", map[string]any{"name": in.Name, "error": err.Error()})
			os.Exit(1)
		}
		lg.Info("pet creado", map[string]any{"id": p.ID, "name": p.Name})
	}

	lg.Info("seed completo", map[string]any{"pets": len(seedPets)})
}
