package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dijana-z/organize-me/internal/config"
	"github.com/dijana-z/organize-me/internal/transport/httpserver/handler"
	authmw "github.com/dijana-z/organize-me/internal/transport/httpserver/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, tokenAuth *authmw.TokenAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.Metrics)
	r.Use(authmw.NewCORS(cfg.CORS.AllowedOrigins))

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/user", func(r chi.Router) {
		r.Post("/create", handlers.CreateUser)
		r.Post("/token", handlers.CreateToken)

		r.Group(func(r chi.Router) {
			r.Use(tokenAuth.Middleware)
			// POST /user/me answers 405 via chi's method matching.
			r.Get("/me", handlers.GetMe)
			r.Patch("/me", handlers.UpdateMe)
			r.Put("/me", handlers.UpdateMe)
		})
	})

	r.Route("/household", func(r chi.Router) {
		r.Use(tokenAuth.Middleware)

		r.Get("/household", handlers.ListHouseholds)
		r.Post("/household", handlers.CreateHousehold)
		r.Get("/household/{id}", handlers.GetHousehold)
		r.Patch("/household/{id}", handlers.UpdateHousehold)
		r.Put("/household/{id}", handlers.UpdateHousehold)
		r.Delete("/household/{id}", handlers.DeleteHousehold)

		r.Get("/grocery", handlers.ListGroceries)
		r.Post("/grocery", handlers.CreateGrocery)
		r.Get("/grocery/{id}", handlers.GetGrocery)
		r.Patch("/grocery/{id}", handlers.UpdateGrocery)
		r.Put("/grocery/{id}", handlers.UpdateGrocery)
		r.Delete("/grocery/{id}", handlers.DeleteGrocery)

		r.Get("/grocerylist", handlers.GetGroceryList)
		r.Post("/grocerylist", handlers.CreateGroceryListItem)
		r.Get("/shoppinglist", handlers.GetShoppingList)
		r.Post("/shoppinglist", handlers.CreateShoppingListItem)
	})

	return r
}
