package pets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"petpals-backend/internal/domain/policy"
	"petpals-backend/internal/domain/profiles"
	"petpals-backend/internal/middleware"
	"petpals-backend/internal/ports/media"

	"github.com/go-chi/chi/v5"
)

// límite de memoria para el parse del multipart (el resto va a disco temp)
const maxUploadMemory = 10 << 20 // 10MB

func RegisterRoutes(r chi.Router, svc *Service, profilesSvc *profiles.Service, store media.Store) {
	r.Route("/pets", func(pr chi.Router) {
		// Listado y perfil son públicos: no piden credencial.
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		pr.Post("/", createPetHandler(svc, profilesSvc, store))
		pr.Put("/{petID}", updatePetHandler(svc, profilesSvc, store))
		pr.Delete("/{petID}", deletePetHandler(svc, profilesSvc, store))
	})
}

type petResponse struct {
	ID           string    `json:"id"`
	OwnerUserID  string    `json:"owner_id"`
	Name         string    `json:"name"`
	Age          string    `json:"age"`
	Species      string    `json:"species"`
	Breed        string    `json:"breed"`
	Gender       string    `json:"gender"`
	Description  string    `json:"description,omitempty"`
	Temperament  string    `json:"temperament,omitempty"`
	MedicalNeeds string    `json:"medical_needs,omitempty"`
	Status       string    `json:"status"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func createPetHandler(svc *Service, profilesSvc *profiles.Service, store media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		if err := policy.Decide(actor, policy.ActionPetCreate, policy.Target{}); err != nil {
			http.Error(w, "only shelters can create pets", http.StatusForbidden)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		// Imagen opcional. Se guarda antes del insert para tener la URL;
		// si el insert falla, se intenta limpiar (ver nota en ports/media).
		imageURL := ""
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			url, err := store.Save(r.Context(), file, header.Filename)
			if err != nil {
				http.Error(w, "could not store image", http.StatusInternalServerError)
				return
			}
			imageURL = url
		}

		p, err := svc.Create(r.Context(), actor.UserID, CreateInput{
			Name:         r.FormValue("name"),
			Age:          r.FormValue("age"),
			Species:      r.FormValue("species"),
			Breed:        r.FormValue("breed"),
			Gender:       r.FormValue("gender"),
			Description:  r.FormValue("description"),
			Temperament:  r.FormValue("temperament"),
			MedicalNeeds: r.FormValue("medical_needs"),
			ImageURL:     imageURL,
		})
		if err != nil {
			if imageURL != "" {
				_ = store.Delete(r.Context(), imageURL)
			}
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Species: strings.TrimSpace(q.Get("species")),
			Status:  strings.TrimSpace(q.Get("status")),
			Gender:  strings.TrimSpace(q.Get("gender")),
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service, profilesSvc *profiles.Service, store media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		if err := policy.Decide(actor, policy.ActionPetUpdate, policy.Target{OwnerUserID: current.OwnerUserID}); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		// PUT parcial: solo los campos presentes en el form tocan el registro.
		in := UpdateInput{
			Name:         formValue(r, "name"),
			Age:          formValue(r, "age"),
			Species:      formValue(r, "species"),
			Breed:        formValue(r, "breed"),
			Gender:       formValue(r, "gender"),
			Description:  formValue(r, "description"),
			Temperament:  formValue(r, "temperament"),
			MedicalNeeds: formValue(r, "medical_needs"),
			Status:       formValue(r, "status"),
		}

		newImageURL := ""
		if file, header, err := r.FormFile("image"); err == nil {
			defer file.Close()
			url, err := store.Save(r.Context(), file, header.Filename)
			if err != nil {
				http.Error(w, "could not store image", http.StatusInternalServerError)
				return
			}
			newImageURL = url
			in.ImageURL = &newImageURL
		}

		updated, err := svc.Update(r.Context(), petID, in)
		if err != nil {
			if newImageURL != "" {
				_ = store.Delete(r.Context(), newImageURL)
			}
			switch err {
			case ErrInvalidInput:
				http.Error(w, err.Error(), http.StatusBadRequest)
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		// La imagen anterior se borra recién con el update confirmado.
		if newImageURL != "" && current.ImageURL != "" && current.ImageURL != newImageURL {
			_ = store.Delete(r.Context(), current.ImageURL)
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

func deletePetHandler(svc *Service, profilesSvc *profiles.Service, store media.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := resolveActor(w, r, profilesSvc)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		current, err := svc.GetByID(r.Context(), petID)
		if err != nil {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		if err := policy.Decide(actor, policy.ActionPetDelete, policy.Target{OwnerUserID: current.OwnerUserID}); err != nil {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		if err := svc.Delete(r.Context(), petID); err != nil {
			switch err {
			case ErrNotFound:
				http.Error(w, "pet not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if current.ImageURL != "" {
			_ = store.Delete(r.Context(), current.ImageURL)
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// resolveActor saca claims del contexto y los resuelve al perfil guardado.
// Escribe 401 sin credencial y 404 si la identidad no registró perfil.
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

// formValue devuelve puntero solo si el campo vino en el form.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	vals, ok := r.MultipartForm.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	v := vals[0]
	return &v
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:           p.ID,
		OwnerUserID:  p.OwnerUserID,
		Name:         p.Name,
		Age:          p.Age,
		Species:      string(p.Species),
		Breed:        p.Breed,
		Gender:       string(p.Gender),
		Description:  p.Description,
		Temperament:  p.Temperament,
		MedicalNeeds: p.MedicalNeeds,
		Status:       string(p.Status),
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
