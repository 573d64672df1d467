package boltdb

import (
	"encoding/json"
	"fmt"
	"strings"

	bolt "go.etcd.io/bbolt"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/storage"
)

var (
	_ storage.Saver  = &repo{}
	_ storage.Loader = &repo{}
)

type LoggerFn func(string, ...interface{})

type repo struct {
	d    *bolt.DB
	root []byte
	path string
	log  LoggerFn
	err  LoggerFn
}

const (
	rootBucket = "clubs"

	DefaultFile = "sportcal.bdb"
)

// Config
type Config struct {
	Path  string
	LogFn LoggerFn
	ErrFn LoggerFn
}

// New returns a new repo repository
func New(c Config) *repo {
	b := repo{
		root: []byte(rootBucket),
		path: c.Path,
		log:  func(string, ...interface{}) {},
		err:  func(string, ...interface{}) {},
	}
	if c.ErrFn != nil {
		b.err = c.ErrFn
	}
	if c.LogFn != nil {
		b.log = c.LogFn
	}

	return &b
}

func (r *repo) open() error {
	var err error
	r.d, err = bolt.Open(r.path, 0600, nil)
	if err != nil {
		return fmt.Errorf("could not open db %s %w", r.path, err)
	}
	err = r.d.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(r.root)
		if err != nil {
			return fmt.Errorf("unable to create root bucket %s: %w", r.root, err)
		}
		if !root.Writable() {
			return fmt.Errorf("non writeable root bucket %s", r.root)
		}
		return nil
	})
	return err
}

// close closes the boltdb database if possible.
func (r *repo) close() error {
	if r.d == nil {
		return nil
	}
	return r.d.Close()
}

// eventKey builds a per-club unique key. Saving the same (code, date, time)
// pair twice overwrites, which also deduplicates events present in more than
// one source format.
func eventKey(ev calendar.Event) []byte {
	return []byte(strings.Join([]string{ev.Code, ev.Date, ev.Time}, "|"))
}

// SaveEvents stores all events of a club under its slug bucket.
func (r *repo) SaveEvents(club string, events calendar.Events) error {
	if err := r.open(); err != nil {
		return err
	}
	defer r.close()

	return r.d.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		b, err := root.CreateBucketIfNotExists([]byte(club))
		if err != nil {
			return fmt.Errorf("unable to create club bucket %s: %w", club, err)
		}
		for _, ev := range events {
			raw, err := json.Marshal(ev)
			if err != nil {
				r.err("could not marshal event %s: %s", ev.Code, err)
				continue
			}
			if err = b.Put(eventKey(ev), raw); err != nil {
				return fmt.Errorf("could not store encoded event: %w", err)
			}
		}
		r.log("saved %d events for %s", len(events), club)
		return nil
	})
}

// LoadEvents reads cached events back; with no slugs it walks every club
// bucket.
func (r *repo) LoadEvents(clubs ...string) (calendar.Events, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	defer r.close()

	events := make(calendar.Events, 0)
	err := r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		if len(clubs) == 0 {
			return root.ForEachBucket(func(k []byte) error {
				events = append(events, loadFromBucket(root.Bucket(k), r.err)...)
				return nil
			})
		}
		for _, club := range clubs {
			b := root.Bucket([]byte(club))
			if b == nil {
				continue
			}
			events = append(events, loadFromBucket(b, r.err)...)
		}
		return nil
	})
	return events, err
}

func loadFromBucket(b *bolt.Bucket, errFn LoggerFn) calendar.Events {
	events := make(calendar.Events, 0)
	b.ForEach(func(k, raw []byte) error {
		if raw == nil {
			return nil
		}
		ev := calendar.Event{}
		if err := json.Unmarshal(raw, &ev); err != nil {
			errFn("could not unmarshal event %s: %s", k, err)
			return nil
		}
		events = append(events, ev)
		return nil
	})
	return events
}

// Clubs lists the slugs that have cached events.
func (r *repo) Clubs() ([]string, error) {
	if err := r.open(); err != nil {
		return nil, err
	}
	defer r.close()

	clubs := make([]string, 0)
	err := r.d.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(r.root)
		if root == nil {
			return fmt.Errorf("invalid bucket %s", r.root)
		}
		return root.ForEachBucket(func(k []byte) error {
			clubs = append(clubs, string(k))
			return nil
		})
	})
	return clubs, err
}
