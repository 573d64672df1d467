package ical

import (
	"strconv"
	"strings"
	"time"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

const (
	ProdID    = "-//tintamarre//sport-events-to-calendar//FR"
	uidDomain = "sport-events-to-calendar"

	// No duration data exists upstream, every match gets a fixed two hours.
	eventDuration = 2 * time.Hour

	compactTime = "20060102T150405"
)

// Encode serializes events into a minimal VCALENDAR document, lines joined
// with CRLF. Events whose date does not parse are left out. The UID is
// stable for a given (code, start) pair so calendar clients deduplicate on
// re-import.
func Encode(events calendar.Events, calName string) string {
	lines := make([]string, 0, 5+8*len(events))
	lines = append(lines,
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:"+ProdID,
		"X-WR-CALNAME:"+escapeText(calName),
	)

	for _, ev := range events {
		day, ok := calendar.ParseDate(ev.Date)
		if !ok {
			continue
		}
		start := overlayTime(day, ev.Time)
		end := start.Add(eventDuration)

		// The summary re-encodes the same "<category>: <team1> et <team2>"
		// convention the ICS parser consumes; the bracketed code in the
		// description mirrors what the parser reads back.
		summary := ev.Category + ": " + ev.Team1 + " et " + ev.Team2
		description := "[" + ev.Code + "] — " + summary

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+ev.Code+"-"+start.Format(compactTime)+"@"+uidDomain,
			"DTSTART:"+start.Format(compactTime),
			"DTEND:"+end.Format(compactTime),
			"SUMMARY:"+escapeText(summary),
			"DESCRIPTION:"+escapeText(description),
			"LOCATION:"+escapeText(ev.Team1),
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

// overlayTime puts the HH:MM value onto the parsed day; a missing or
// unparseable hour or minute defaults to 0.
func overlayTime(day time.Time, hm string) time.Time {
	hour, minute := 0, 0
	parts := strings.Split(hm, ":")
	if len(parts) > 0 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
	}
	if len(parts) > 1 {
		if m, err := strconv.Atoi(parts[1]); err == nil {
			minute = m
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\r", `\n`,
	"\n", `\n`,
	";", `\;`,
	",", `\,`,
)

// escapeText applies the TEXT escaping rules of RFC 5545: backslash,
// semicolon and comma are backslash-escaped, newlines become the literal
// two-character sequence \n.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
