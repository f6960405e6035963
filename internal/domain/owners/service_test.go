package owners_test

import (
	"context"
	"testing"

	mem "petpals-backend/internal/adapters/storage/memory"
	"petpals-backend/internal/domain/owners"
)

func TestService_Create_NormalizesAndStores(t *testing.T) {
	svc := owners.NewService(mem.NewOwnersRepo())

	o, err := svc.Create(context.Background(), owners.CreateInput{
		Name:  "  PetPals Shelter  ",
		Email: "Shelter@PetPals.local",
		Phone: "+1-555-0100",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if o.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if o.Name != "PetPals Shelter" {
		t.Fatalf("expected trimmed name, got %q", o.Name)
	}
	if o.Email != "shelter@petpals.local" {
		t.Fatalf("expected lowercased email, got %q", o.Email)
	}

	got, err := svc.GetByEmail(context.Background(), "SHELTER@petpals.local")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != o.ID {
		t.Fatalf("expected stored owner back, got %#v", got)
	}
}

func TestService_Create_RejectsDuplicateEmail(t *testing.T) {
	svc := owners.NewService(mem.NewOwnersRepo())

	in := owners.CreateInput{Name: "Uno", Email: "uno@example.com"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	in.Name = "Otro"
	if _, err := svc.Create(context.Background(), in); err != owners.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := owners.NewService(mem.NewOwnersRepo())

	if _, err := svc.Create(context.Background(), owners.CreateInput{Name: "", Email: "a@b.com"}); err != owners.ErrInvalidInput {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), owners.CreateInput{Name: "X", Email: "sin-arroba"}); err != owners.ErrInvalidInput {
		t.Fatalf("bad email: expected ErrInvalidInput, got %v", err)
	}
}

func TestService_List_SortedByEmail(t *testing.T) {
	svc := owners.NewService(mem.NewOwnersRepo())

	for _, email := range []string{"zeta@example.com", "alfa@example.com"} {
		if _, err := svc.Create(context.Background(), owners.CreateInput{Name: "X", Email: email}); err != nil {
			t.Fatalf("Create %s error: %v", email, err)
		}
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 2 || all[0].Email != "alfa@example.com" {
		t.Fatalf("expected sorted owners, got %#v", all)
	}
}
