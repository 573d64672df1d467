// Package csvfeed parses the per-club agenda CSV files published as static
// data. The files are plain comma-delimited text without quoting; the first
// line is a header and is never validated, just dropped.
package csvfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

// ParseEvents turns agenda CSV text into canonical events. Rows with fewer
// than 6 fields are skipped silently; a 7th field becomes the free-text
// annotation. There is no quoted-field support, commas inside values break
// the row.
func ParseEvents(text string) calendar.Events {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	events := make(calendar.Events, 0)
	if len(lines) < 2 {
		return events
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 6 {
			continue
		}
		ev := calendar.Event{
			Code:     parts[0],
			Date:     parts[1],
			Time:     parts[2],
			Team1:    parts[3],
			Team2:    parts[4],
			Category: parts[5],
		}
		if len(parts) > 6 {
			ev.Other = parts[6]
		}
		events = append(events, ev)
	}
	return events
}

// LoadEvents fetches a CSV source over HTTP and parses it.
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
	return ParseEvents(string(body)), nil
}
