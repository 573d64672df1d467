package loader

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Club directories follow the <federation id>-<name> convention, e.g.
// "1034-rbc-haneffe".
var reClubDir = regexp.MustCompile(`^(\d+)-(.+)$`)

// BuildManifest scans a data directory tree and indexes every club in it. A
// club needs at least a CSV agenda to be listed; an events.json and any
// number of per-category ICS files are picked up when present. Clubs come
// out ordered by name, categories sorted.
func BuildManifest(dataDir string) (*Manifest, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("unable to read data directory %s: %w", dataDir, err)
	}

	clubs := make([]Club, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		m := reClubDir.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}

		clubPath := filepath.Join(dataDir, entry.Name())
		files, err := os.ReadDir(clubPath)
		if err != nil {
			continue
		}

		club := Club{
			ID:         m[1],
			Name:       clubName(m[2]),
			Slug:       entry.Name(),
			Categories: make([]string, 0),
			ICSFiles:   make(map[string]string),
		}
		for _, f := range files {
			name := f.Name()
			webPath := "/data/" + entry.Name() + "/" + name
			switch {
			case strings.HasSuffix(name, ".csv") && club.CSVPath == "":
				club.CSVPath = webPath
			case name == "events.json":
				club.JSONPath = webPath
			case strings.HasSuffix(name, ".ics"):
				category, ok := categoryFromICS(filepath.Join(clubPath, name))
				if !ok {
					continue
				}
				club.Categories = append(club.Categories, category)
				club.ICSFiles[category] = webPath
			}
		}
		// No agenda, no listing.
		if club.CSVPath == "" {
			continue
		}
		sort.Strings(club.Categories)
		clubs = append(clubs, club)
	}

	sort.Slice(clubs, func(i, j int) bool {
		return clubs[i].Name < clubs[j].Name
	})

	return &Manifest{
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
		Clubs:       clubs,
	}, nil
}

// WriteManifest renders the manifest as indented JSON at path.
func WriteManifest(m *Manifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// categoryFromICS pulls the category out of the calendar-name header, shaped
// "X-WR-CALNAME:<prefix> - <category>". The category is whatever follows the
// last " - ".
func categoryFromICS(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		v, found := strings.CutPrefix(line, "X-WR-CALNAME:")
		if !found {
			continue
		}
		i := strings.LastIndex(v, " - ")
		if i < 0 {
			return "", false
		}
		return strings.TrimSpace(v[i+3:]), true
	}
	return "", false
}

// clubName turns a slug fragment like "rbc-haneffe" into "Rbc Haneffe".
func clubName(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if len(w) == 0 {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
