package cmd

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/loader"
	"github.com/tintamarre/sport-events-to-calendar/storage/boltdb"
)

var FetchCmd = cli.Command{
	Name:  "fetch",
	Usage: "Fetches club events from the published data tree",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{
			Name:  "club",
			Usage: "Which club slugs to load, all manifest clubs when empty",
		},
		&cli.StringFlag{
			Name:  "base",
			Usage: "Base URL of the data tree",
			Value: DefaultBaseURL,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Don't persist events",
		},
	},
	Action: fetchClubs,
}

type fetcher struct {
	debug bool
	l     *loader.Loader
	log   logFn
	err   logFn
}

func newFetcher(base string, debug bool) *fetcher {
	f := fetcher{
		debug: debug,
		log:   info,
		err:   errFn,
	}
	cfg := loader.Config{BasePath: base, ErrFn: loader.LoggerFn(errFn)}
	if debug {
		cfg.LogFn = loader.LoggerFn(info)
	}
	f.l = loader.New(cfg)
	return &f
}

// selected filters the manifest down to the requested slugs; unknown slugs
// are reported and skipped.
func (f *fetcher) selected(m *loader.Manifest, slugs []string) []loader.Club {
	if len(slugs) == 0 {
		return m.Clubs
	}
	clubs := make([]loader.Club, 0, len(slugs))
	for _, s := range slugs {
		club, ok := m.Club(strings.ToLower(s))
		if !ok {
			f.err("unknown club %s", s)
			continue
		}
		clubs = append(clubs, club)
	}
	return clubs
}

func fetchClubs(c *cli.Context) error {
	debug := c.Bool("debug") || c.GlobalBool("debug")
	f := newFetcher(c.String("base"), debug)

	ctx := context.Background()
	m, err := f.l.LoadManifest(ctx)
	if err != nil {
		return err
	}
	clubs := f.selected(m, c.StringSlice("club"))
	if len(clubs) == 0 {
		return fmt.Errorf("no valid clubs have been passed: %s", c.StringSlice("club"))
	}

	st := boltdb.New(boltdb.Config{
		Path:  path.Join(c.GlobalString("path"), boltdb.DefaultFile),
		ErrFn: boltdb.LoggerFn(errFn),
	})

	// One failing club should not stop the others.
	for _, club := range clubs {
		events, err := f.l.LoadClubEvents(ctx, club)
		if err != nil {
			f.err("unable to load events for %s: %s", club.Slug, err)
			continue
		}
		if f.debug {
			for _, ev := range events {
				f.log("%s", ev)
			}
		}
		f.log("%s: %d events", club.Slug, len(events))
		if c.Bool("dry-run") {
			continue
		}
		if err = st.SaveEvents(club.Slug, events); err != nil {
			f.err("unable to save events for %s: %s", club.Slug, err)
		}
	}
	return nil
}
