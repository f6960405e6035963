package profiles

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petpals-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register-profile", registerProfileHandler(svc))
		ar.Get("/profile", getProfileHandler(svc))
	})
}

type registerProfileRequest struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	Preferences  string `json:"preferences"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
}

type profileResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`
	Preferences  string    `json:"preferences,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func registerProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Register(r.Context(), RegisterInput{
			UserID:       req.UserID,
			Email:        req.Email,
			FullName:     req.FullName,
			Role:         req.Role,
			Preferences:  req.Preferences,
			ContactPhone: req.ContactPhone,
			Address:      req.Address,
		})
		if err != nil {
			switch err {
			case ErrAlreadyRegistered:
				http.Error(w, "user_id or email already registered", http.StatusConflict)
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toProfileResponse(p))
	}
}

func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		p, err := svc.GetByUserID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p))
	}
}

func toProfileResponse(p UserProfile) profileResponse {
	return profileResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Email:        p.Email,
		FullName:     p.FullName,
		Role:         string(p.Role),
		Preferences:  p.Preferences,
		ContactPhone: p.ContactPhone,
		Address:      p.Address,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// writeJSON se repite en los handlers de cada módulo a propósito;
// todavía no amerita un helper compartido.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
