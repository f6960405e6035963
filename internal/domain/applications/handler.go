package applications

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petpals-backend/internal/domain/pets"
	"petpals-backend/internal/domain/policy"
	"petpals-backend/internal/domain/profiles"
	"petpals-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, profilesSvc *profiles.Service) {
	r.Post("/applications", createApplicationHandler(svc, petsSvc, profilesSvc))
	r.Get("/applications/user/{userID}", listUserApplicationsHandler(svc, profilesSvc))
}

type createApplicationRequest struct {
	PetID    string `json:"pet_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	LivingSituation       string `json:"living_situation"`
	PreviousPetExperience string `json:"previous_pet_experience"`
	WhyAdopt              string `json:"why_adopt"`
	HomeDescription       string `json:"home_description"`
}

type applicationResponse struct {
	ID        string `json:"id"`
	PetID     string `json:"pet_id"`
	UserID    string `json:"user_id"`
	ShelterID string `json:"shelter_id"`

	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	LivingSituation       string `json:"living_situation,omitempty"`
	PreviousPetExperience string `json:"previous_pet_experience,omitempty"`
	WhyAdopt              string `json:"why_adopt"`
	HomeDescription       string `json:"home_description,omitempty"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func createApplicationHandler(svc *Service, petsSvc *pets.Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		if err := policy.Decide(actor, policy.ActionApplicationCreate, policy.Target{}); err != nil {
			http.Error(w, "only adopters can submit applications", http.StatusForbidden)
			return
		}

		var req createApplicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// La mascota tiene que existir; su dueño define el shelter_id.
		shelterID, err := petsSvc.OwnerOf(r.Context(), req.PetID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		a, err := svc.Create(r.Context(), actor.UserID, CreateInput{
			PetID:                 req.PetID,
			ShelterID:             shelterID,
			FullName:              req.FullName,
			Email:                 req.Email,
			Phone:                 req.Phone,
			Address:               req.Address,
			LivingSituation:       req.LivingSituation,
			PreviousPetExperience: req.PreviousPetExperience,
			WhyAdopt:              req.WhyAdopt,
			HomeDescription:       req.HomeDescription,
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

		writeJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

func listUserApplicationsHandler(svc *Service, profilesSvc *profiles.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		userID := chi.URLParam(r, "userID")
		if err := policy.Decide(actor, policy.ActionApplicationsReadUser, policy.Target{SubjectUserID: userID}); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
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

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:                    a.ID,
		PetID:                 a.PetID,
		UserID:                a.UserID,
		ShelterID:             a.ShelterID,
		FullName:              a.FullName,
		Email:                 a.Email,
		Phone:                 a.Phone,
		Address:               a.Address,
		LivingSituation:       a.LivingSituation,
		PreviousPetExperience: a.PreviousPetExperience,
		WhyAdopt:              a.WhyAdopt,
		HomeDescription:       a.HomeDescription,
		Status:                a.Status,
		CreatedAt:             a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
