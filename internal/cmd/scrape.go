package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/calendar/cpliege"
	"github.com/tintamarre/sport-events-to-calendar/calendar/jsonfeed"
	"github.com/tintamarre/sport-events-to-calendar/ical"
)

var ScrapeCmd = cli.Command{
	Name:  "scrape",
	Usage: "Scrapes the federation website and rebuilds the static data tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Usage: "Directory to write the data tree to",
			Value: "data",
		},
		&cli.StringSliceFlag{
			Name:  "club",
			Usage: "Which federation club numbers to scrape, all when empty",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
	},
	Action: scrapeClubs,
}

func scrapeClubs(c *cli.Context) error {
	debug := c.Bool("debug") || c.GlobalBool("debug")
	out := c.String("output")
	if err := MkDirIfNotExists(out); err != nil {
		return err
	}

	ctx := context.Background()
	refs, err := cpliege.LoadClubs(ctx)
	if err != nil {
		return err
	}
	refs = selectedRefs(refs, c.StringSlice("club"))
	if len(refs) == 0 {
		return fmt.Errorf("no valid clubs have been passed: %s", c.StringSlice("club"))
	}

	all := make(calendar.Events, 0)
	for _, ref := range refs {
		if debug {
			info("scraping %s: %s", ref.Name, ref.URL)
		}
		events, err := cpliege.LoadAgenda(ctx, ref.URL)
		if err != nil {
			errFn("unable to load agenda for %s: %s", ref.Name, err)
			continue
		}
		if len(events) == 0 {
			continue
		}
		if err = writeClub(out, ref, events); err != nil {
			errFn("unable to write club %s: %s", ref.Name, err)
			continue
		}
		info("%s: %d events", ref.Name, len(events))
		all = mergeEvents(all, events)
	}

	all = calendar.SortEvents(all)
	body := ical.Encode(all, "Tous les matchs")
	if err = os.WriteFile(filepath.Join(out, "calendar.ics"), []byte(body), 0644); err != nil {
		return err
	}
	if err = writeAllEvents(filepath.Join(out, "all-events.json"), all); err != nil {
		return err
	}
	return writeIndexes(out)
}

// mergeEvents accumulates without duplicates: an inter-club match shows up
// on both clubs' agendas but must land once in the global outputs.
func mergeEvents(all, events calendar.Events) calendar.Events {
	for _, ev := range events {
		if all.Contains(ev) {
			continue
		}
		all = append(all, ev)
	}
	return all
}

func selectedRefs(refs []cpliege.ClubRef, ids []string) []cpliege.ClubRef {
	if len(ids) == 0 {
		return refs
	}
	keep := make([]cpliege.ClubRef, 0, len(ids))
	for _, ref := range refs {
		for _, id := range ids {
			if ref.ID() == id {
				keep = append(keep, ref)
				break
			}
		}
	}
	return keep
}

// clubLabel strips the federation number prefix, "1034 - RBC HANEFFE"
// becomes "RBC HANEFFE".
func clubLabel(ref cpliege.ClubRef) string {
	label := strings.TrimPrefix(ref.Name, ref.ID())
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(label), "-"))
}

// writeClub lays one club's directory out: the CSV agenda, the events.json
// document and one iCalendar file per category.
func writeClub(out string, ref cpliege.ClubRef, events calendar.Events) error {
	label := clubLabel(ref)
	dir := ref.ID() + "-" + slug.Make(label)
	clubPath := filepath.Join(out, dir)
	if err := MkDirIfNotExists(clubPath); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(clubPath, slug.Make(label)+".csv"), events); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(clubPath, "events.json"), ref, dir, events); err != nil {
		return err
	}
	for _, category := range events.Categories() {
		evs := calendar.Filter(events, calendar.FilterOptions{Category: category})
		body := ical.Encode(calendar.SortEvents(evs), label+" - "+category)
		path := filepath.Join(clubPath, slug.Make(category)+".ics")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, events calendar.Events) error {
	b := strings.Builder{}
	b.WriteString("code,date,time,team1,team2,category,other\n")
	for _, ev := range events {
		b.WriteString(strings.Join([]string{ev.Code, ev.Date, ev.Time, ev.Team1, ev.Team2, ev.Category, ev.Other}, ","))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// writeJSON publishes the document with ISO dates, the loader converts them
// back to the display form.
func writeJSON(path string, ref cpliege.ClubRef, dir string, events calendar.Events) error {
	doc := jsonfeed.Document{
		Club: jsonfeed.ClubInfo{
			ID:   ref.ID(),
			Name: clubLabel(ref),
			Slug: dir,
		},
		Events: isoDates(events),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// writeAllEvents publishes the global events document, every club's matches
// behind one lastUpdated stamp.
func writeAllEvents(path string, events calendar.Events) error {
	doc := struct {
		LastUpdated string          `json:"lastUpdated"`
		Events      calendar.Events `json:"events"`
	}{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Events:      isoDates(events),
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

// isoDates returns a copy with parseable dates rendered YYYY-MM-DD, the form
// the published JSON documents carry.
func isoDates(events calendar.Events) calendar.Events {
	out := make(calendar.Events, len(events))
	copy(out, events)
	for i, ev := range out {
		if day, ok := calendar.ParseDate(ev.Date); ok {
			out[i].Date = day.Format("2006-01-02")
		}
	}
	return out
}
