package router

import (
	"database/sql"
	"net/http"
	"os"

	"petpals-backend/internal/adapters/media/diskstore"
	mem "petpals-backend/internal/adapters/storage/memory"
	pg "petpals-backend/internal/adapters/storage/postgres"
	"petpals-backend/internal/domain/applications"
	"petpals-backend/internal/domain/messages"
	"petpals-backend/internal/domain/pets"
	"petpals-backend/internal/domain/profiles"
	"petpals-backend/internal/middleware"
	"petpals-backend/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	// Verifier puede ser nil: modo trust, el bearer crudo es la identidad.
	Verifier auth.Verifier

	// Si viene, usa Postgres. Si no, repos in-memory (dev/tests).
	DB *sql.DB

	// Media store para imágenes. Si es nil se crea uno sobre UploadsDir.
	Media *diskstore.Store

	// Directorio de imágenes cuando Media es nil.
	UploadsDir string
}

func NewRouter(opts Options) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.Verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Si no pasan DB explícita, intenta por env (dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	var (
		profilesRepo profiles.Repository
		petsRepo     pets.Repository
		appsRepo     applications.Repository
		messagesRepo messages.Repository
	)

	if db != nil {
		profilesRepo = pg.NewProfilesRepo(db)
		petsRepo = pg.NewPetsRepo(db)
		appsRepo = pg.NewApplicationsRepo(db)
		messagesRepo = pg.NewMessagesRepo(db)
	} else {
		profilesRepo = mem.NewProfilesRepo()
		petsRepo = mem.NewPetsRepo()
		appsRepo = mem.NewApplicationsRepo()
		messagesRepo = mem.NewMessagesRepo()
	}

	store := opts.Media
	if store == nil {
		dir := opts.UploadsDir
		if dir == "" {
			dir = "static/images/pets"
		}
		s, err := diskstore.New(dir, "/static/images/pets")
		if err != nil {
			return nil, err
		}
		store = s
	}

	// Servicios por módulo
	profilesSvc := profiles.NewService(profilesRepo)
	petsSvc := pets.NewService(petsRepo)
	appsSvc := applications.NewService(appsRepo)
	messagesSvc := messages.NewService(messagesRepo)

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	pets.RegisterRoutes(r, petsSvc, profilesSvc, store)
	applications.RegisterRoutes(r, appsSvc, petsSvc, profilesSvc)
	messages.RegisterRoutes(r, messagesSvc, profilesSvc)

	// Imágenes subidas, servidas estáticamente
	prefix := store.PublicPrefix()
	r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServer(http.Dir(store.Dir()))))

	return r, nil
}
