package cmd

import (
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/storage/boltdb"
)

var ListCmd = cli.Command{
	Name:      "list",
	Usage:     "Lists cached events, optionally filtered",
	ArgsUsage: "[club-slug...]",
	Flags:     filterFlags,
	Action:    listEvents,
}

func listEvents(c *cli.Context) error {
	st := boltdb.New(boltdb.Config{
		Path:  path.Join(c.GlobalString("path"), boltdb.DefaultFile),
		ErrFn: boltdb.LoggerFn(errFn),
	})

	events, err := st.LoadEvents(c.Args()...)
	if err != nil {
		return err
	}
	events = calendar.SortEvents(calendar.Filter(events, filterOptions(c)))
	if len(events) == 0 {
		info("no events")
		return nil
	}

	for _, g := range calendar.GroupByDate(events) {
		info("%s", g.Date)
		for _, ev := range g.Events {
			line := fmt.Sprintf("  %s  [%s] %s: %s et %s", ev.Time, ev.Code, ev.Category, ev.Team1, ev.Team2)
			if len(ev.Other) > 0 {
				line += " (" + ev.Other + ")"
			}
			info("%s", line)
		}
	}
	return nil
}

var CategoriesCmd = cli.Command{
	Name:      "categories",
	Usage:     "Lists the distinct categories present in the cached events",
	ArgsUsage: "[club-slug...]",
	Action:    listCategories,
}

func listCategories(c *cli.Context) error {
	st := boltdb.New(boltdb.Config{
		Path:  path.Join(c.GlobalString("path"), boltdb.DefaultFile),
		ErrFn: boltdb.LoggerFn(errFn),
	})

	events, err := st.LoadEvents(c.Args()...)
	if err != nil {
		return err
	}
	info("%s", strings.Join(events.Categories(), ", "))
	return nil
}
