package httpapi

import (
	"net/http"

	"fittrack-backend-go/internal/config"
	"fittrack-backend-go/internal/services"
	"fittrack-backend-go/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	Tracker *services.Tracker
	Config  config.Config
	Tokens  services.TokenService
	Events  *services.EventsHub
	Pages   *web.Renderer
}

func NewServer(tracker *services.Tracker, cfg config.Config, events *services.EventsHub) (*Server, error) {
	pages, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Server{
		Tracker: tracker,
		Config:  cfg,
		Tokens:  NewTokenService(cfg),
		Events:  events,
		Pages:   pages,
	}, nil
}

func NewTokenService(cfg config.Config) services.TokenService {
	return services.TokenService{
		Secret: []byte(cfg.SessionSecret),
		Issuer: cfg.SessionIssuer,
		TTL:    cfg.SessionTTL(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.Get("/session", s.StartSession)

	r.Route("/api", func(api chi.Router) {
		api.Use(WithIdentity(s.Tokens, s.Tracker, s.apiUnauthorized))

		api.Post("/health/log", s.LogMetric)
		api.Post("/health/medication", s.ToggleMedication)
		api.Post("/nutrition/log", s.LogMeal)
		api.Post("/nutrition/quick-add", s.QuickAddMeal)
		api.Post("/schedule/complete", s.ToggleScheduleBlock)
		api.Post("/workouts/complete", s.CompleteWorkout)

		api.Route("/views", func(views chi.Router) {
			views.Get("/dashboard", s.DashboardJSON)
			views.Get("/health", s.HealthJSON)
			views.Get("/nutrition", s.NutritionJSON)
			views.Get("/schedule", s.ScheduleJSON)
			views.Get("/workouts", s.WorkoutsJSON)
			views.Get("/workouts/{workoutId}", s.WorkoutDetailJSON)
		})
		api.Get("/summary", s.SummaryJSON)
		api.Get("/system/status", s.SystemStatus)
	})

	r.Group(func(pages chi.Router) {
		pages.Use(WithIdentity(s.Tokens, s.Tracker, s.pageUnauthorized))
		pages.Get("/", s.DashboardPage)
		pages.Get("/health", s.HealthPage)
		pages.Get("/nutrition", s.NutritionPage)
		pages.Get("/schedule", s.SchedulePage)
		pages.Get("/workouts", s.WorkoutsPage)
		pages.Get("/workouts/{workoutId}", s.WorkoutDetailPage)
		pages.Get("/ws/events", s.EventsSocket)
	})

	r.NotFound(s.NotFoundPage)
	return r
}
