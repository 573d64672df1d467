package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
)

const (
	AppName    = "sportcal"
	AppVersion = "(unknown)"
)

// DefaultBaseURL is where the published data tree lives.
var DefaultBaseURL = "https://tintamarre.github.io/sport-events-to-calendar"

type logFn func(string, ...interface{})

var info = func(s string, args ...interface{}) {
	fmt.Printf(s+"\n", args...)
}

var errFn = func(s string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, s+"\n", args...)
}

func MkDirIfNotExists(p string) error {
	fi, err := os.Stat(p)
	if err != nil && os.IsNotExist(err) {
		err = os.MkdirAll(p, os.ModeDir|os.ModePerm|0700)
	}
	if err != nil {
		return err
	}
	fi, err = os.Stat(p)
	if err != nil {
		return err
	} else if !fi.IsDir() {
		return fmt.Errorf("path exists, and is not a folder %s", p)
	}
	return nil
}

func CachePath() string {
	xdgCachePath, _ := os.UserCacheDir()
	return filepath.Join(xdgCachePath, AppName)
}

func DataPath() string {
	homeDir, _ := os.UserHomeDir()
	xdgDataPath := filepath.Join(homeDir, ".local", "share")
	appPath := filepath.Join(xdgDataPath, AppName)

	if _, err := os.Stat(appPath); err != nil && errors.Is(err, os.ErrNotExist) {
		err := MkDirIfNotExists(appPath)
		if err != nil {
			log.Fatalf("Error: %s", err.Error())
		}
	}
	return appPath
}

var filterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "category",
		Usage: "Keep only events of this category",
	},
	&cli.StringFlag{
		Name:  "search",
		Usage: "Keep only events whose teams, category or notes contain this text",
	},
	&cli.StringFlag{
		Name:  "from",
		Usage: "Keep only events on or after this date",
	},
	&cli.StringFlag{
		Name:  "to",
		Usage: "Keep only events on or before this date",
	},
}

func filterOptions(c *cli.Context) calendar.FilterOptions {
	return calendar.FilterOptions{
		Category:   c.String("category"),
		SearchText: c.String("search"),
		DateFrom:   c.String("from"),
		DateTo:     c.String("to"),
	}
}
