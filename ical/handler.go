package ical

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/storage/boltdb"
)

type handler struct {
	path string
}

// NewHandler serves calendars generated from the local event cache found
// under path.
func NewHandler(path string) *handler {
	return &handler{path: path}
}

func (h *handler) storage() *boltdb.Config {
	return &boltdb.Config{Path: filepath.Join(h.path, boltdb.DefaultFile)}
}

// ServeCalendar handles /{club}.ics. The optional query parameters category,
// q, from and to map straight onto the filter options; the result is served
// as a downloadable text/calendar document.
func (h *handler) ServeCalendar(w http.ResponseWriter, r *http.Request) {
	club := strings.ToLower(chi.URLParam(r, "club"))

	st := boltdb.New(*h.storage())
	events, err := st.LoadEvents(club)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}
	if len(events) == 0 {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "no events for %s", club)
		return
	}

	q := r.URL.Query()
	f := calendar.FilterOptions{
		Category:   q.Get("category"),
		SearchText: q.Get("q"),
		DateFrom:   q.Get("from"),
		DateTo:     q.Get("to"),
	}
	events = calendar.SortEvents(calendar.Filter(events, f))

	name := club
	if f.Category != "" {
		name = fmt.Sprintf("%s - %s", club, f.Category)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", club+".ics"))
	w.Write([]byte(Encode(events, name)))
}

// ServeIndex lists the club slugs that have cached events, one per line.
func (h *handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	st := boltdb.New(*h.storage())
	clubs, err := st.Clubs()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "%s", err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, club := range clubs {
		fmt.Fprintf(w, "/%s.ics\n", club)
	}
}
