package pets

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	if p.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if f.Species != "" && string(p.Species) != f.Species {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if f.Gender != "" && string(p.Gender) != f.Gender {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// -------------------------
// Tests
// -------------------------

func validCreate() CreateInput {
	return CreateInput{
		Name:    "Sunny",
		Age:     "2 years",
		Species: "Dog",
		Breed:   "Golden Retriever",
		Gender:  "Male",
	}
}

func TestService_Create_DefaultsToAvailable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), "shelter-1", validCreate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.Status != StatusAvailable {
		t.Fatalf("expected status available, got %s", p.Status)
	}
	if p.OwnerUserID != "shelter-1" {
		t.Fatalf("expected owner shelter-1, got %s", p.OwnerUserID)
	}
	if p.CreatedAt != now || p.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
}

func TestService_Create_RejectsUnknownEnums(t *testing.T) {
	svc := NewService(newTestRepo())

	bad := validCreate()
	bad.Species = "Dinosaur"
	if _, err := svc.Create(context.Background(), "shelter-1", bad); err != ErrInvalidInput {
		t.Fatalf("species: expected ErrInvalidInput, got %v", err)
	}

	bad = validCreate()
	bad.Gender = "Yes"
	if _, err := svc.Create(context.Background(), "shelter-1", bad); err != ErrInvalidInput {
		t.Fatalf("gender: expected ErrInvalidInput, got %v", err)
	}

	// el casing importa: los enums vienen capitalizados del cliente
	bad = validCreate()
	bad.Species = "dog"
	if _, err := svc.Create(context.Background(), "shelter-1", bad); err != ErrInvalidInput {
		t.Fatalf("lowercase species: expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RequiresOwner(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "  ", validCreate()); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_MergesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	now2 := now1.Add(time.Hour)

	svc.now = func() time.Time { return now1 }
	p, err := svc.Create(context.Background(), "shelter-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	svc.now = func() time.Time { return now2 }
	status := "adopted"
	desc := "Ya tiene familia"
	updated, err := svc.Update(context.Background(), p.ID, UpdateInput{
		Status:      &status,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	if updated.Status != StatusAdopted {
		t.Fatalf("expected adopted, got %s", updated.Status)
	}
	if updated.Description != desc {
		t.Fatalf("expected description updated")
	}
	// lo no tocado queda igual
	if updated.Name != p.Name || updated.Breed != p.Breed || updated.OwnerUserID != p.OwnerUserID {
		t.Fatalf("untouched fields changed: %#v", updated)
	}
	if updated.CreatedAt != now1 {
		t.Fatalf("CreatedAt must not change on update")
	}
	if updated.UpdatedAt != now2 {
		t.Fatalf("expected UpdatedAt to advance")
	}
}

func TestService_Update_RejectsBadStatus(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "shelter-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	status := "lost"
	if _, err := svc.Update(context.Background(), p.ID, UpdateInput{Status: &status}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	name := "Otro"
	_, err := svc.Update(context.Background(), "no-existe", UpdateInput{Name: &name})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_List_Filters(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	i := 0
	svc.now = func() time.Time {
		i++
		return base.Add(time.Duration(i) * time.Minute)
	}

	mk := func(name, species, gender string) {
		in := validCreate()
		in.Name = name
		in.Species = species
		in.Gender = gender
		if _, err := svc.Create(context.Background(), "shelter-1", in); err != nil {
			t.Fatalf("Create %s error: %v", name, err)
		}
	}
	mk("Sunny", "Dog", "Male")
	mk("Whiskers", "Cat", "Female")
	mk("Leo", "Cat", "Male")

	cats, err := svc.List(context.Background(), ListFilter{Species: "Cat"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("expected 2 cats, got %d", len(cats))
	}

	males, err := svc.List(context.Background(), ListFilter{Species: "Cat", Gender: "Male"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(males) != 1 || males[0].Name != "Leo" {
		t.Fatalf("expected only Leo, got %#v", males)
	}
}

func TestService_Delete_ThenGone(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "shelter-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), p.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestService_OwnerOf(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), "shelter-1", validCreate())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	owner, err := svc.OwnerOf(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("OwnerOf error: %v", err)
	}
	if owner != "shelter-1" {
		t.Fatalf("expected shelter-1, got %s", owner)
	}

	if _, err := svc.OwnerOf(context.Background(), "no-existe"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
