package messages

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]Message
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Message{}}
}

func (r *testRepo) Create(ctx context.Context, m Message) error {
	if m.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Message, error) {
	m, ok := r.byID[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]Message, error) {
	out := make([]Message, 0)
	for _, m := range r.byID {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *testRepo) MarkRead(ctx context.Context, id string) error {
	m, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	m.IsRead = true
	r.byID[id] = m
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_DefaultsUnread(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	m, err := svc.Create(context.Background(), "user-a", CreateInput{
		ReceiverID: "user-b",
		PetID:      "pet-1",
		Content:    "Hola! Sigue disponible Sunny?",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if m.IsRead {
		t.Fatalf("expected new message unread")
	}
	if m.Timestamp != now {
		t.Fatalf("expected Timestamp to be now")
	}
	if m.PetID != "pet-1" {
		t.Fatalf("expected pet context preserved")
	}
}

func TestService_Create_RejectsSelfMessage(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "user-a", CreateInput{
		ReceiverID: "user-a",
		Content:    "hola yo",
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Create_RequiresContent(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), "user-a", CreateInput{
		ReceiverID: "user-b",
		Content:    "   ",
	})
	if err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_MarkRead_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	m, err := svc.Create(context.Background(), "user-a", CreateInput{
		ReceiverID: "user-b",
		Content:    "hola",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	first, err := svc.MarkRead(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("MarkRead #1 error: %v", err)
	}
	if !first.IsRead {
		t.Fatalf("expected read after MarkRead")
	}

	// segunda vez: sin error, mismo estado
	second, err := svc.MarkRead(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("MarkRead #2 error: %v", err)
	}
	if !second.IsRead {
		t.Fatalf("expected read to stay read")
	}
}

func TestService_MarkRead_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.MarkRead(context.Background(), "no-existe")
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListByUser_BothDirections(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "user-a", CreateInput{ReceiverID: "user-b", Content: "hola"}); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-b", CreateInput{ReceiverID: "user-a", Content: "hola!"}); err != nil {
		t.Fatalf("Create #2 error: %v", err)
	}
	if _, err := svc.Create(context.Background(), "user-c", CreateInput{ReceiverID: "user-d", Content: "ajeno"}); err != nil {
		t.Fatalf("Create #3 error: %v", err)
	}

	inbox, err := svc.ListByUser(context.Background(), "user-a")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 messages for user-a, got %d", len(inbox))
	}
}
