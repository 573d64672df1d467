// Package loader is the boundary between the published static data tree and
// the parsers: it fetches the manifest, decides which source format to use
// per club and hands the payload to the matching parser.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/calendar/csvfeed"
	"github.com/tintamarre/sport-events-to-calendar/calendar/icsfeed"
	"github.com/tintamarre/sport-events-to-calendar/calendar/jsonfeed"
)

// Club describes one club's source locations as listed in the manifest. A
// club may offer several formats at once; LoadClubEvents picks one with
// precedence JSON > ICS > CSV.
type Club struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Slug       string            `json:"slug"`
	Categories []string          `json:"categories"`
	CSVPath    string            `json:"csvPath"`
	JSONPath   string            `json:"jsonPath,omitempty"`
	ICSFiles   map[string]string `json:"icsFiles"`
}

// Manifest indexes every club and its files. It is produced by the build
// step and treated as read-only input here.
type Manifest struct {
	LastUpdated string `json:"lastUpdated"`
	Clubs       []Club `json:"clubs"`
}

// Club finds a club by slug.
func (m *Manifest) Club(slug string) (Club, bool) {
	for _, c := range m.Clubs {
		if c.Slug == slug {
			return c, true
		}
	}
	return Club{}, false
}

// SourceError is a transport-level failure, tagged with the source kind
// (manifest, csv, ics, json) and the path that failed. Content-level
// malformation never surfaces as an error.
type SourceError struct {
	Source string
	Path   string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("unable to load %s source %s: %s", e.Source, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

type LoggerFn func(string, ...interface{})

// Config carries the deployment base URL explicitly; dev and published
// builds serve the data tree from different prefixes and the loader should
// not guess from ambient state.
type Config struct {
	BasePath string
	Client   *http.Client
	LogFn    LoggerFn
	ErrFn    LoggerFn
}

type Loader struct {
	base string
	cl   *http.Client
	log  LoggerFn
	err  LoggerFn
}

// New returns a loader for the data tree rooted at c.BasePath.
func New(c Config) *Loader {
	l := Loader{
		base: strings.TrimSuffix(c.BasePath, "/"),
		cl:   c.Client,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if l.cl == nil {
		l.cl = &http.Client{Timeout: 30 * time.Second}
	}
	if c.LogFn != nil {
		l.log = c.LogFn
	}
	if c.ErrFn != nil {
		l.err = c.ErrFn
	}
	return &l
}

func (l *Loader) resolve(path string) string {
	return l.base + "/" + strings.TrimPrefix(path, "/")
}

func (l *Loader) fetch(ctx context.Context, source, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.resolve(path), nil)
	if err != nil {
		return nil, &SourceError{Source: source, Path: path, Err: err}
	}
	res, err := l.cl.Do(req)
	if err != nil {
		return nil, &SourceError{Source: source, Path: path, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &SourceError{Source: source, Path: path, Err: fmt.Errorf("status code error: %d %s", res.StatusCode, res.Status)}
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &SourceError{Source: source, Path: path, Err: err}
	}
	return body, nil
}

// LoadManifest fetches and decodes /data/manifest.json.
func (l *Loader) LoadManifest(ctx context.Context) (*Manifest, error) {
	body, err := l.fetch(ctx, "manifest", "/data/manifest.json")
	if err != nil {
		return nil, err
	}
	m := Manifest{}
	if err = json.Unmarshal(body, &m); err != nil {
		return nil, &SourceError{Source: "manifest", Path: "/data/manifest.json", Err: err}
	}
	return &m, nil
}

// LoadClubEvents loads one club's events from its richest available source:
// JSON if configured, the per-category ICS files next, the CSV agenda last.
func (l *Loader) LoadClubEvents(ctx context.Context, club Club) (calendar.Events, error) {
	if club.JSONPath != "" {
		body, err := l.fetch(ctx, "json", club.JSONPath)
		if err != nil {
			return nil, err
		}
		events, err := jsonfeed.ParseEvents(body)
		if err != nil {
			return nil, &SourceError{Source: "json", Path: club.JSONPath, Err: err}
		}
		return events, nil
	}
	if len(club.ICSFiles) > 0 {
		return l.loadCategories(ctx, club)
	}
	if club.CSVPath != "" {
		body, err := l.fetch(ctx, "csv", club.CSVPath)
		if err != nil {
			return nil, err
		}
		return csvfeed.ParseEvents(string(body)), nil
	}
	return nil, fmt.Errorf("club %s has no configured sources", club.Slug)
}

// loadCategories fetches every category calendar of a club concurrently. A
// failing category is logged and skipped, the remaining ones still
// accumulate; the only way to get an empty result is every source failing.
func (l *Loader) loadCategories(ctx context.Context, club Club) (calendar.Events, error) {
	events := make(calendar.Events, 0)
	mu := sync.Mutex{}

	g, gctx := errgroup.WithContext(ctx)
	for category, path := range club.ICSFiles {
		g.Go(func() error {
			body, err := l.fetch(gctx, "ics", path)
			if err != nil {
				l.err("unable to load %s events for %s: %s", category, club.Slug, err)
				return nil
			}
			evs, err := icsfeed.ParseEvents(body, category)
			if err != nil {
				l.err("unable to parse %s events for %s: %s", category, club.Slug, err)
				return nil
			}
			mu.Lock()
			events = append(events, evs...)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	l.log("loaded %d events for %s from %d calendars", len(events), club.Slug, len(club.ICSFiles))
	return events, nil
}
