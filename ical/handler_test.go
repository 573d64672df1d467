package ical_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tintamarre/sport-events-to-calendar/calendar"
	"github.com/tintamarre/sport-events-to-calendar/ical"
	"github.com/tintamarre/sport-events-to-calendar/storage/boltdb"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	st := boltdb.New(boltdb.Config{Path: filepath.Join(dir, boltdb.DefaultFile)})
	err := st.SaveEvents("1034-rbc-haneffe", calendar.Events{
		{Code: "A1", Date: "01/02/2024", Time: "18:00", Team1: "Haneffe", Team2: "Waremme", Category: "U18"},
		{Code: "B2", Date: "02/02/2024", Time: "20:00", Team1: "Liège", Team2: "Esneux", Category: "Seniors"},
	})
	if err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(ical.Routes(dir))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}
	return res, string(body)
}

func TestServeCalendar(t *testing.T) {
	srv := testServer(t)

	res, body := get(t, srv.URL+"/1034-rbc-haneffe.ics")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "text/calendar; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(body, "UID:A1-") || !strings.Contains(body, "UID:B2-") {
		t.Errorf("both events should be served:\n%s", body)
	}
}

func TestServeCalendarFiltered(t *testing.T) {
	srv := testServer(t)

	res, body := get(t, srv.URL+"/1034-rbc-haneffe.ics?category=U18")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "UID:A1-") || strings.Contains(body, "UID:B2-") {
		t.Errorf("only the U18 event should be served:\n%s", body)
	}
	if !strings.Contains(body, "X-WR-CALNAME:1034-rbc-haneffe - U18") {
		t.Errorf("calendar name should carry the category:\n%s", body)
	}
}

func TestServeCalendarUnknownClub(t *testing.T) {
	srv := testServer(t)

	res, _ := get(t, srv.URL+"/nope.ics")
	if res.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", res.StatusCode)
	}
}

func TestServeIndex(t *testing.T) {
	srv := testServer(t)

	res, body := get(t, srv.URL+"/")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	if !strings.Contains(body, "/1034-rbc-haneffe.ics") {
		t.Errorf("index should list the cached club:\n%s", body)
	}
}
