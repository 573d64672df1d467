package calendar

import (
	"fmt"
	"strings"
)

// Event is the canonical record every source parser converges to.
// Date keeps the display form DD/MM/YYYY, Time is 24-hour HH:MM; both may be
// empty or unparseable, the record stays usable and only drops out of
// date-dependent operations.
type Event struct {
	Code     string `json:"code"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Team1    string `json:"team1"`
	Team2    string `json:"team2"`
	Category string `json:"category"`
	Other    string `json:"other"`
	Location string `json:"location,omitempty"`
}

type Events []Event

func (e Event) Equals(other Event) bool {
	return e.Code == other.Code &&
		e.Date == other.Date &&
		e.Time == other.Time &&
		e.Team1 == other.Team1 &&
		e.Team2 == other.Team2 &&
		e.Category == other.Category &&
		e.Other == other.Other &&
		e.Location == other.Location
}

func (e Event) String() string {
	return e.GoString()
}

func (e Event) GoString() string {
	if len(e.Team1) == 0 && len(e.Team2) == 0 {
		return fmt.Sprintf("<[%s] %s @ %s %s>", e.Code, e.Category, e.Date, e.Time)
	}
	return fmt.Sprintf("<[%s] %s: %s et %s @ %s %s>", e.Code, e.Category, e.Team1, e.Team2, e.Date, e.Time)
}

func (e Events) String() string {
	return e.GoString()
}

func (e Events) GoString() string {
	ss := make([]string, len(e))
	for i, ev := range e {
		ss[i] = ev.GoString()
	}
	return fmt.Sprintf("Events[%d]:\n\t%s\n", len(e), strings.Join(ss, "\n\t"))
}

func (e Events) Contains(inc Event) bool {
	for _, ev := range e {
		if ev.Equals(inc) {
			return true
		}
	}
	return false
}

// Categories returns the distinct category labels in first-seen order.
func (e Events) Categories() []string {
	seen := make(map[string]bool)
	cats := make([]string, 0)
	for _, ev := range e {
		if ev.Category == "" || seen[ev.Category] {
			continue
		}
		seen[ev.Category] = true
		cats = append(cats, ev.Category)
	}
	return cats
}
