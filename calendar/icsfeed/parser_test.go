package icsfeed

import (
	"strings"
	"testing"
)

var fixture = []byte(strings.Join([]string{
	"BEGIN:VCALENDAR",
	"VERSION:2.0",
	"PRODID:-//test//FR",
	"X-WR-CALNAME:RBC Haneffe - U18",
	"BEGIN:VEVENT",
	"UID:A1-20240201T180000@sport-events-to-calendar",
	"DTSTART:20240201T180000",
	"DTEND:20240201T200000",
	"SUMMARY:U18: Haneffe et Waremme",
	"DESCRIPTION:[A1] — U18: Haneffe et Waremme",
	"END:VEVENT",
	"BEGIN:VEVENT",
	"UID:zzz",
	"SUMMARY:rien d'utile ici",
	"END:VEVENT",
	"END:VCALENDAR",
	"",
}, "\r\n"))

func TestParseEvents(t *testing.T) {
	events, err := ParseEvents(fixture, "U18")
	if err != nil {
		t.Fatalf("ParseEvents() error: %s", err)
	}
	if len(events) != 2 {
		t.Fatalf("ParseEvents() returned %d events, expected 2", len(events))
	}

	ev := events[0]
	if ev.Code != "A1" {
		t.Errorf("code = %q, expected %q", ev.Code, "A1")
	}
	if ev.Team1 != "Haneffe" || ev.Team2 != "Waremme" {
		t.Errorf("teams = %q / %q", ev.Team1, ev.Team2)
	}
	if ev.Category != "U18" {
		t.Errorf("category = %q, expected the supplied label", ev.Category)
	}
	if ev.Date != "01/02/2024" || ev.Time != "18:00" {
		t.Errorf("start = %q %q", ev.Date, ev.Time)
	}

	// No description code, no teams separator, no start: the record degrades
	// to what the UID yields instead of being dropped.
	ev = events[1]
	if ev.Code != "zzz" {
		t.Errorf("fallback code = %q, expected the uid", ev.Code)
	}
	if ev.Team1 != "" || ev.Team2 != "" || ev.Date != "" || ev.Time != "" {
		t.Errorf("expected empty fields, got %s", ev)
	}
}

func TestParseEventsCodePrecedence(t *testing.T) {
	body := []byte(strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//FR",
		"BEGIN:VEVENT",
		"UID:FALLBACK-123@example.com",
		"DESCRIPTION:[REAL] quelque chose",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n"))

	events, err := ParseEvents(body, "Seniors")
	if err != nil {
		t.Fatalf("ParseEvents() error: %s", err)
	}
	if len(events) != 1 {
		t.Fatalf("ParseEvents() returned %d events, expected 1", len(events))
	}
	if events[0].Code != "REAL" {
		t.Errorf("code = %q, the bracketed description code wins over the uid", events[0].Code)
	}
}

func TestParseEventsInvalid(t *testing.T) {
	if _, err := ParseEvents([]byte("definitely not a calendar"), "U18"); err == nil {
		t.Error("expected an error for an unparseable body")
	}
}
