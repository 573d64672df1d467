// Package jsonfeed parses the optional per-club events.json documents. The
// records already match the canonical shape except for their date, which is
// published as YYYY-MM-DD and converted to the display form here.
package jsonfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

// ClubInfo identifies the club a document belongs to.
type ClubInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Document is the wire shape of a club-data JSON file.
type Document struct {
	Club   ClubInfo        `json:"club"`
	Events calendar.Events `json:"events"`
}

// ParseEvents decodes a club-data document. The only transformation applied
// is the date conversion; a date that does not parse passes through
// untouched so the record stays constructible.
func ParseEvents(body []byte) (calendar.Events, error) {
	doc, err := ParseDocument(body)
	if err != nil {
		return nil, err
	}
	return doc.Events, nil
}

// ParseDocument decodes the full document, club info included.
func ParseDocument(body []byte) (*Document, error) {
	doc := Document{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("unable to unmarshal json body: %w", err)
	}
	for i, ev := range doc.Events {
		if d, ok := calendar.ParseDate(ev.Date); ok {
			doc.Events[i].Date = calendar.FormatDate(d)
		}
	}
	return &doc, nil
}

// LoadEvents fetches a JSON source over HTTP and parses it.
func LoadEvents(ctx context.Context, url string) (calendar.Events, error) {
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
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read body: %w", err)
	}
	return ParseEvents(body)
}
