package messages

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petpals-backend/internal/domain/policy"
	"petpals-backend/internal/domain/profiles"
	"petpals-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, profilesSvc *profiles.Service) {
	r.Route("/messages", func(mr chi.Router) {
		mr.Post("/", createMessageHandler(svc, profilesSvc))
		mr.Get("/{messageID}", getMessageHandler(svc, profilesSvc))
		mr.Get("/user/{userID}", listUserMessagesHandler(svc, profilesSvc))
		mr.Put("/{messageID}/read", markReadHandler(svc, profilesSvc))
	})
}

type createMessageRequest struct {
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	PetID      string `json:"pet_id"`
	Content    string `json:"content"`
}

type messageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	PetID      string    `json:"pet_id,omitempty"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"is_read"`
}

func createMessageHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		var req createMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// El sender declarado tiene que ser el actor autenticado.
		if err := policy.Decide(actor, policy.ActionMessageCreate, policy.Target{SenderID: strings.TrimSpace(req.SenderID)}); err != nil {
			http.Error(w, "sender must be the authenticated user", http.StatusForbidden)
			return
		}

		// El receiver tiene que tener perfil registrado.
		if _, err := profilesSvc.GetByUserID(r.Context(), req.ReceiverID); err != nil {
			http.Error(w, "receiver not found", http.StatusNotFound)
			return
		}

		m, err := svc.Create(r.Context(), actor.UserID, CreateInput{
			ReceiverID: req.ReceiverID,
			PetID:      req.PetID,
			Content:    req.Content,
		})
		if err != nil {
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

func getMessageHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}

		if err := policy.Decide(actor, policy.ActionMessageRead, policy.Target{SenderID: m.SenderID, ReceiverID: m.ReceiverID}); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(m))
	}
}

func listUserMessagesHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		userID := chi.URLParam(r, "userID")
		if err := policy.Decide(actor, policy.ActionMessagesReadUser, policy.Target{SubjectUserID: userID}); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]messageResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMessageResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func markReadHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "messageID"))
		if err != nil {
			http.Error(w, "message not found", http.StatusNotFound)
			return
		}

		if err := policy.Decide(actor, policy.ActionMessageMarkRead, policy.Target{SenderID: m.SenderID, ReceiverID: m.ReceiverID}); err != nil {
			http.Error(w, "only the receiver can mark a message read", http.StatusForbidden)
			return
		}

		updated, err := svc.MarkRead(r.Context(), m.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toMessageResponse(updated))
	}
}

func resolveActor(w http.ResponseWriter, r *http.Request, profilesSvc *profiles.Service) (policy.Actor, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return policy.Actor{}, false
	}

	p, err := profilesSvc.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return policy.Actor{}, false
	}

	return policy.Actor{UserID: p.UserID, Role: p.Role}, true
}

func toMessageResponse(m Message) messageResponse {
	return messageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		PetID:      m.PetID,
		Content:    m.Content,
		Timestamp:  m.Timestamp,
		IsRead:     m.IsRead,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
