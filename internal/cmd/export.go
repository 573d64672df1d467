package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/ical"
	"github.com/tintamarre/sport-events-to-calendar/storage/boltdb"
)

var ExportCmd = cli.Command{
	Name:      "export",
	Usage:     "Exports cached events as an iCalendar document",
	ArgsUsage: "[club-slug...]",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "output",
			Usage: "File to write the calendar to, stdout when empty",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Calendar display name",
			Value: "Tous les matchs",
		},
	}, filterFlags...),
	Action: exportEvents,
}

func exportEvents(c *cli.Context) error {
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
		return fmt.Errorf("no events to export")
	}

	name := c.String("name")
	if cat := c.String("category"); len(cat) > 0 {
		name = fmt.Sprintf("%s - %s", name, cat)
	}
	body := ical.Encode(events, name)

	out := c.String("output")
	if len(out) == 0 {
		fmt.Print(body)
		return nil
	}
	if err = os.WriteFile(out, []byte(body), 0644); err != nil {
		return fmt.Errorf("unable to write calendar %s: %w", out, err)
	}
	info("wrote %d events to %s", len(events), out)
	return nil
}
