package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"premium_api/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.NotFound(reply.NotFound)
	r.MethodNotAllowed(reply.MethodNotAllowed)

	r.Get("/", handler(s.getHome))
	r.Get("/health", handler(s.getHealth))
	r.Post("/predict", handler(s.postPredict))
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
