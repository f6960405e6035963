package firebase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewVerifier(NewClient(Config{
		BaseURL: ts.URL,
		APIKey:  "test-key",
	}))
}

func TestVerifier_Verify_ResolvesClaims(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Fatalf("expected api key in query, got %q", r.URL.RawQuery)
		}

		var req struct {
			IDToken string `json:"idToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken != "tok-1" {
			t.Fatalf("unexpected request body, err=%v token=%q", err, req.IDToken)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"localId": "uid-1", "email": "ada@example.com"},
			},
		})
	})

	claims, err := v.Verify(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != "uid-1" || claims.Email != "ada@example.com" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestVerifier_Verify_InvalidToken(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		// accounts:lookup responde 400 con INVALID_ID_TOKEN
		http.Error(w, `{"error":{"message":"INVALID_ID_TOKEN"}}`, http.StatusBadRequest)
	})

	_, err := v.Verify(context.Background(), "malo")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifier_Verify_NoUsersIsUnauthorized(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"users": []any{}})
	})

	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestVerifier_Verify_UpstreamError(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := v.Verify(context.Background(), "tok")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestVerifier_Verify_EmptyToken(t *testing.T) {
	v := NewVerifier(NewClient(Config{BaseURL: "http://localhost:0", APIKey: "k"}))

	_, err := v.Verify(context.Background(), "   ")
	if !errors.Is(err, ErrTokenEmpty) {
		t.Fatalf("expected ErrTokenEmpty, got %v", err)
	}
}
