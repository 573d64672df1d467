package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/tintamarre/sport-events-to-calendar/loader"
)

var ManifestCmd = cli.Command{
	Name:  "manifest",
	Usage: "Rebuilds manifest.json and listing.md from an existing data tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "data",
			Usage: "Directory holding the data tree",
			Value: "data",
		},
	},
	Action: buildManifest,
}

func buildManifest(c *cli.Context) error {
	return writeIndexes(c.String("data"))
}

// writeIndexes regenerates the machine and human readable indexes of a data
// tree.
func writeIndexes(dataDir string) error {
	m, err := loader.BuildManifest(dataDir)
	if err != nil {
		return err
	}
	if err = loader.WriteManifest(m, filepath.Join(dataDir, "manifest.json")); err != nil {
		return err
	}
	info("indexed %d clubs", len(m.Clubs))
	return os.WriteFile(filepath.Join(dataDir, "listing.md"), []byte(listing(m)), 0644)
}

func listing(m *loader.Manifest) string {
	b := strings.Builder{}
	b.WriteString("# Calendriers des clubs\n\n")
	b.WriteString("Dernière mise à jour: " + m.LastUpdated + "\n")
	for _, club := range m.Clubs {
		b.WriteString("\n## " + club.Name + " (" + club.ID + ")\n\n")
		b.WriteString("- [Agenda](" + club.CSVPath + ")\n")
		if len(club.JSONPath) > 0 {
			b.WriteString("- [JSON](" + club.JSONPath + ")\n")
		}
		for _, category := range club.Categories {
			b.WriteString("- [" + category + "](" + club.ICSFiles[category] + ")\n")
		}
	}
	return b.String()
}
