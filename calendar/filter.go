package calendar

import (
	"sort"
	"strings"
)

// FilterOptions are combined with AND; zero values mean "no condition".
// DateFrom/DateTo take either supported date shape. Supplying any bound
// excludes events without a parseable date, even when the bound itself does
// not parse; an unparseable bound just imposes no comparison of its own.
type FilterOptions struct {
	Category   string
	SearchText string
	DateFrom   string
	DateTo     string
}

func Filter(events Events, f FilterOptions) Events {
	from, okFrom := ParseDate(f.DateFrom)
	to, okTo := ParseDate(f.DateTo)
	search := strings.ToLower(f.SearchText)

	out := make(Events, 0, len(events))
	for _, ev := range events {
		if f.Category != "" && ev.Category != f.Category {
			continue
		}
		if search != "" {
			hay := strings.ToLower(strings.Join([]string{ev.Team1, ev.Team2, ev.Category, ev.Other}, " "))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		if f.DateFrom != "" || f.DateTo != "" {
			d, ok := ParseDate(ev.Date)
			if !ok {
				continue
			}
			if okFrom && d.Before(from) {
				continue
			}
			if okTo && d.After(to) {
				continue
			}
		}
		out = append(out, ev)
	}
	return out
}

// SortEvents returns a copy ordered ascending by parsed date, then by the
// literal time string for same-date events. Events whose date does not parse
// sort after all dated events and keep their relative order; the sort is
// stable throughout.
func SortEvents(events Events) Events {
	out := make(Events, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		di, oki := ParseDate(out[i].Date)
		dj, okj := ParseDate(out[j].Date)
		if !oki || !okj {
			return oki && !okj
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// DateGroup holds the events sharing one raw date string, in input order.
type DateGroup struct {
	Date   string
	Events Events
}

// GroupByDate groups on the raw date string, not the parsed value: two
// spellings of the same day stay separate groups. Groups come back in
// first-seen order.
func GroupByDate(events Events) []DateGroup {
	idx := make(map[string]int)
	groups := make([]DateGroup, 0)
	for _, ev := range events {
		i, ok := idx[ev.Date]
		if !ok {
			i = len(groups)
			idx[ev.Date] = i
			groups = append(groups, DateGroup{Date: ev.Date})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	return groups
}
