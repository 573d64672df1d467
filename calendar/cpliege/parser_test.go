package cpliege

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClubRefID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "1034 - RBC HANEFFE", want: "1034"},
		{name: "1034", want: "1034"},
		{name: "", want: ""},
	}
	for _, tt := range tests {
		ref := ClubRef{Name: tt.name}
		if got := ref.ID(); got != tt.want {
			t.Errorf("ID(%q) = %q, expected %q", tt.name, got, tt.want)
		}
	}
}

func TestFixTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "18:30", want: "18:30"},
		{in: "18.30", want: "18:30"},
		{in: "18;30", want: "18:30"},
		{in: "18:3", want: "18:30"},
		{in: "18:", want: "18:00"},
		{in: ".", want: "00:00"},
		{in: "18", want: "00:00"},
		{in: "n'importe quoi", want: "00:00"},
	}
	for _, tt := range tests {
		if got := fixTime(tt.in); got != tt.want {
			t.Errorf("fixTime(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func agendaRow(cells ...string) string {
	b := strings.Builder{}
	b.WriteString("<tr>")
	for _, c := range cells {
		fmt.Fprintf(&b, "<td>%s</td>", c)
	}
	b.WriteString("</tr>\n")
	return b.String()
}

func TestLoadAgenda(t *testing.T) {
	b := strings.Builder{}
	b.WriteString("<html><body><table>\n")
	// Layout chrome and the header row come before the data.
	for i := 0; i < 5; i++ {
		b.WriteString(agendaRow("chrome"))
	}
	b.WriteString(agendaRow("N°", "", "Jour", "Date", "Heure", "Equipe 1", "Equipe 2", "Catégorie", "Divers"))
	b.WriteString(agendaRow("A1", "", "Sam", "01/02/24", "18.30", " RBC  Haneffe ", "Waremme", "U18", "remis"))
	b.WriteString(agendaRow("B2", "", "Dim", "02/02/24", ".", "Liège", "Esneux", "Seniors", ""))
	b.WriteString(agendaRow("C3", "", "Sam", "01/02/24", "18:00", "Ans", "Awans", "(forfait)", ""))
	b.WriteString(agendaRow("D4", "", "Sam", "", "18:00", "Ans", "Awans", "U12", ""))
	b.WriteString(agendaRow("E5", "", "Sam", "03/02/24", "18:00", "Ans", "Awans", "", ""))
	b.WriteString(agendaRow("too", "short"))
	b.WriteString("</table></body></html>")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, b.String())
	}))
	defer srv.Close()

	events, err := LoadAgenda(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("LoadAgenda() error: %s", err)
	}
	// Parenthetical category, missing date, empty category and short rows
	// are all dropped.
	if len(events) != 2 {
		t.Fatalf("LoadAgenda() returned %d events, expected 2: %s", len(events), events)
	}

	ev := events[0]
	if ev.Code != "A1" || ev.Date != "01/02/2024" || ev.Time != "18:30" {
		t.Errorf("unexpected event: %s", ev)
	}
	if ev.Team1 != "RBC Haneffe" {
		t.Errorf("team1 = %q, whitespace should be collapsed", ev.Team1)
	}
	if ev.Location != "RBC Haneffe" {
		t.Errorf("location = %q, expected the home team", ev.Location)
	}
	if ev.Other != "remis" {
		t.Errorf("other = %q", ev.Other)
	}

	if events[1].Time != "00:00" {
		t.Errorf("time = %q, a lone dot means midnight", events[1].Time)
	}
}

func TestLoadAgendaUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := LoadAgenda(context.Background(), srv.URL); err == nil {
		t.Error("expected an error for a missing page")
	}
}
