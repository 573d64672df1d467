package jsonfeed

import (
	"testing"
)

var body = []byte(`{
  "club": {"id": "1034", "name": "RBC Haneffe", "slug": "1034-rbc-haneffe"},
  "events": [
    {"code": "A1", "date": "2024-02-01", "time": "18:00", "team1": "Haneffe", "team2": "Waremme", "category": "U18", "other": ""},
    {"code": "B2", "date": "pas de date", "time": "20:00", "team1": "Liège", "team2": "Esneux", "category": "Seniors", "other": ""}
  ]
}`)

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument(body)
	if err != nil {
		t.Fatalf("ParseDocument() error: %s", err)
	}
	if doc.Club.ID != "1034" || doc.Club.Slug != "1034-rbc-haneffe" {
		t.Errorf("unexpected club info: %+v", doc.Club)
	}
	if len(doc.Events) != 2 {
		t.Fatalf("ParseDocument() returned %d events, expected 2", len(doc.Events))
	}
	// ISO dates are converted to the display form.
	if doc.Events[0].Date != "01/02/2024" {
		t.Errorf("date = %q, expected %q", doc.Events[0].Date, "01/02/2024")
	}
	// An unparseable date passes through untouched.
	if doc.Events[1].Date != "pas de date" {
		t.Errorf("date = %q, expected passthrough", doc.Events[1].Date)
	}
}

func TestParseDocumentInvalid(t *testing.T) {
	if _, err := ParseDocument([]byte("not json")); err == nil {
		t.Error("expected an error for invalid json")
	}
}
