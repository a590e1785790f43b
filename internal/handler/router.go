package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"cloudbox/internal/auth"
	"cloudbox/internal/logging"
	"cloudbox/internal/metrics"
	"cloudbox/internal/service"
)

// Services собирает зависимости HTTP слоя
type Services struct {
	Files     *service.FileService
	Trash     *service.TrashService
	Shares    *service.ShareService
	Analytics *service.AnalyticsService
	Sessions  *service.SessionService
}

type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

func NewRouter(svc Services, opts RouterOptions) http.Handler {
	fileHandler := NewFileHandler(svc.Files)
	folderHandler := NewFolderHandler(svc.Files)
	shareHandler := NewShareHandler(svc.Shares)
	trashHandler := NewTrashHandler(svc.Trash)
	analyticsHandler := NewAnalyticsHandler(svc.Analytics)
	sessionHandler := NewSessionHandler(svc.Sessions)

	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/session", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSession)
			r.Post("/login", sessionHandler.Login)
			r.Post("/signup", sessionHandler.Signup)
			r.Post("/logout", sessionHandler.Logout)
		})
		r.Put("/preferences/theme", sessionHandler.SetTheme)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireSession(svc.Sessions))

			r.Put("/profile", sessionHandler.UpdateProfile)

			r.Get("/files", fileHandler.ListFiles)
			r.Route("/files/{id}", func(r chi.Router) {
				r.Get("/", fileHandler.GetFile)
				r.Post("/favorite", fileHandler.ToggleFavorite)
				r.Post("/share", shareHandler.ShareFile)
				r.Delete("/share", shareHandler.Unshare)
			})
			r.Post("/folders", folderHandler.CreateFolder)

			r.Get("/favorites", fileHandler.GetFavorites)
			r.Get("/shared", fileHandler.GetShared)
			r.Get("/recent", fileHandler.GetRecent)

			r.Route("/trash", func(r chi.Router) {
				r.Get("/", trashHandler.GetTrashItems)
				r.Post("/", trashHandler.MoveToTrash)
				r.Post("/restore", trashHandler.RestoreItems)
				r.Post("/delete", trashHandler.DeletePermanently)
				r.Post("/empty", trashHandler.EmptyTrash)
				r.Get("/settings", trashHandler.GetSettings)
				r.Put("/settings", trashHandler.UpdateSettings)
			})

			r.Get("/analytics", analyticsHandler.GetStats)
			r.Get("/quota", analyticsHandler.GetQuotaInfo)
		})
	})

	return r
}
