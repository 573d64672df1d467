// Package cpliege scrapes the provincial federation website: the club index
// page and the per-club agenda tables. It feeds the build step that writes
// the static data tree; the published site never hits the federation
// directly.
package cpliege

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

// ClubRef points at one club's agenda page.
type ClubRef struct {
	Name string
	URL  string
}

// ID is the federation number leading the club name ("1034 - RBC HANEFFE").
func (c ClubRef) ID() string {
	if fields := strings.Fields(c.Name); len(fields) > 0 {
		return fields[0]
	}
	return ""
}

// LoadClubs fetches the club index and returns every linked club in page
// order.
func LoadClubs(ctx context.Context) ([]ClubRef, error) {
	doc, err := fetchDocument(ctx, ClubsURL)
	if err != nil {
		return nil, err
	}

	clubs := make([]ClubRef, 0)
	doc.Find("a").Each(func(i int, s *goquery.Selection) {
		name := strings.Join(strings.Fields(s.Text()), " ")
		href, ok := s.Attr("href")
		if len(name) == 0 || !ok || len(href) == 0 {
			return
		}
		clubs = append(clubs, ClubRef{Name: name, URL: BaseURL + "/" + href})
	})
	return clubs, nil
}

// The agenda table carries 9 columns; the first rows of the page are layout
// chrome, real data starts after the header row.
const (
	agendaColumns   = 9
	agendaHeaderRow = 5
)

const (
	colCode = iota
	colUnknown
	colWeekday
	colDate
	colTime
	colTeam1
	colTeam2
	colCategory
	colOther
)

// LoadAgenda fetches a club page and parses its schedule table into
// canonical events. Rows without a category, with a parenthetical note in
// place of one, or without a usable date or time are skipped.
func LoadAgenda(ctx context.Context, url string) (calendar.Events, error) {
	doc, err := fetchDocument(ctx, url)
	if err != nil {
		return nil, err
	}

	events := make(calendar.Events, 0)
	doc.Find("table").First().Find("tr").Each(func(i int, row *goquery.Selection) {
		if i <= agendaHeaderRow {
			return
		}
		cells := row.Find("td")
		if cells.Length() < agendaColumns {
			return
		}
		cell := func(n int) string {
			return strings.Join(strings.Fields(cells.Eq(n).Text()), " ")
		}

		category := cell(colCategory)
		if len(category) == 0 {
			return
		}
		if strings.HasPrefix(category, "(") && strings.HasSuffix(category, ")") {
			return
		}

		day, ok := calendar.ParseDate(cell(colDate))
		if !ok {
			return
		}

		team1 := cell(colTeam1)
		events = append(events, calendar.Event{
			Code:     cell(colCode),
			Date:     calendar.FormatDate(day),
			Time:     fixTime(cell(colTime)),
			Team1:    team1,
			Team2:    cell(colTeam2),
			Category: category,
			Other:    cell(colOther),
			Location: team1,
		})
	})
	return events, nil
}

// fixTime normalizes the schedule's loose time notation: "." alone means
// midnight, "." or ";" stand in for ":", single-digit minutes get padded.
// Anything that still does not look like HH:MM collapses to "00:00".
func fixTime(s string) string {
	if s == "." {
		return "00:00"
	}
	s = strings.ReplaceAll(s, ".", ":")
	s = strings.ReplaceAll(s, ";", ":")
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return "00:00"
	}
	hours, minutes := parts[0], parts[1]
	switch len(minutes) {
	case 0:
		minutes = "00"
	case 1:
		minutes = minutes + "0"
	}
	return hours + ":" + minutes
}

func fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)
	}
	return goquery.NewDocumentFromReader(res.Body)
}
