package ical

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(path string) http.Handler {
	h := NewHandler(path)

	r := chi.NewRouter()
	r.Get("/", h.ServeIndex)
	r.Get("/{club}.ics", h.ServeCalendar)
	return r
}
