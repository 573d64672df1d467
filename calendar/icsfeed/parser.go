// Package icsfeed parses the per-category ICS calendars. One file carries one
// category; the label comes from the file's calendar-name header and is
// supplied by the caller, not read from the events themselves.
package icsfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	ics "github.com/arran4/golang-ical"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

var (
	// Summaries look like "<anything>: <team1> et <team2>". The "et"
	// separator matches the upstream data's locale; summaries in any other
	// shape yield empty team names.
	reTeams = regexp.MustCompile(`:\s*(.+?)\s+et\s+(.+)$`)
	// Descriptions may carry the match code as a bracketed prefix: "[CODE] — ...".
	reCode = regexp.MustCompile(`\[(\w+)\]`)
)

// ParseEvents extracts every VEVENT of the calendar into canonical events.
// Malformed blocks degrade to empty fields instead of being dropped; only an
// unparseable calendar body is an error.
func ParseEvents(body []byte, category string) (calendar.Events, error) {
	cal, err := ics.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("unable to parse calendar: %w", err)
	}

	events := make(calendar.Events, 0)
	for _, ve := range cal.Events() {
		var summary, uid, description string
		if p := ve.GetProperty(ics.ComponentPropertySummary); p != nil {
			summary = p.Value
		}
		if p := ve.GetProperty(ics.ComponentPropertyUniqueId); p != nil {
			uid = p.Value
		}
		if p := ve.GetProperty(ics.ComponentPropertyDescription); p != nil {
			description = p.Value
		}

		var team1, team2 string
		if m := reTeams.FindStringSubmatch(summary); m != nil {
			team1 = strings.TrimSpace(m[1])
			team2 = strings.TrimSpace(m[2])
		}

		// The segment before the first dash of the UID is the fallback code;
		// a bracketed code in the description wins over it.
		code := ""
		if len(uid) > 0 {
			code = strings.SplitN(uid, "-", 2)[0]
		}
		if m := reCode.FindStringSubmatch(description); m != nil {
			code = m[1]
		}

		ev := calendar.Event{
			Code:     code,
			Team1:    team1,
			Team2:    team2,
			Category: category,
		}
		// Times are treated as naive wall-clock values: the start is
		// formatted as written, no zone conversion.
		if start, err := ve.GetStartAt(); err == nil {
			ev.Date = calendar.FormatDate(start)
			ev.Time = start.Format("15:04")
		}
		events = append(events, ev)
	}
	return events, nil
}

// LoadEvents fetches an ICS source over HTTP and parses it with the given
// category label.
func LoadEvents(ctx context.Context, url, category string) (calendar.Events, error) {
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
	return ParseEvents(body, category)
}
