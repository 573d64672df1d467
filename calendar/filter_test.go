package calendar

import (
	"testing"
)

var sample = Events{
	{Code: "A1", Date: "15/01/2024", Time: "10:00", Team1: "Haneffe", Team2: "Waremme", Category: "U18", Other: "amical"},
	{Code: "B2", Date: "01/01/2024", Time: "09:00", Team1: "Liège", Team2: "Esneux", Category: "Seniors"},
	{Code: "C3", Date: "01/01/2024", Time: "08:00", Team1: "Esneux", Team2: "Haneffe", Category: "U18"},
	{Code: "D4", Date: "pas de date", Time: "12:00", Team1: "Ans", Team2: "Awans", Category: "U12"},
}

func codes(events Events) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Code
	}
	return out
}

func equalCodes(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		f    FilterOptions
		want []string
	}{
		{name: "no filter", f: FilterOptions{}, want: []string{"A1", "B2", "C3", "D4"}},
		{name: "category", f: FilterOptions{Category: "U18"}, want: []string{"A1", "C3"}},
		{name: "category is exact", f: FilterOptions{Category: "u18"}, want: []string{}},
		{name: "search team", f: FilterOptions{SearchText: "haneffe"}, want: []string{"A1", "C3"}},
		{name: "search other field", f: FilterOptions{SearchText: "AMICAL"}, want: []string{"A1"}},
		{name: "from", f: FilterOptions{DateFrom: "02/01/2024"}, want: []string{"A1"}},
		{name: "to", f: FilterOptions{DateTo: "01/01/2024"}, want: []string{"B2", "C3"}},
		{name: "range", f: FilterOptions{DateFrom: "01/01/2024", DateTo: "15/01/2024"}, want: []string{"A1", "B2", "C3"}},
		{name: "iso bounds", f: FilterOptions{DateFrom: "2024-01-02"}, want: []string{"A1"}},
		{name: "bound excludes undated", f: FilterOptions{DateFrom: "01/01/2024"}, want: []string{"A1", "B2", "C3"}},
		{name: "unparseable bound keeps dated", f: FilterOptions{DateFrom: "not a date"}, want: []string{"A1", "B2", "C3"}},
		{name: "unparseable bound still excludes undated", f: FilterOptions{DateTo: "pas valide"}, want: []string{"A1", "B2", "C3"}},
		{name: "combined", f: FilterOptions{Category: "U18", DateTo: "01/01/2024"}, want: []string{"C3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := codes(Filter(sample, tt.f))
			if !equalCodes(got, tt.want...) {
				t.Errorf("Filter() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSortEvents(t *testing.T) {
	got := SortEvents(sample)
	// Ascending by date, same-day ordered by time, undated events last.
	if !equalCodes(codes(got), "C3", "B2", "A1", "D4") {
		t.Errorf("SortEvents() = %v", codes(got))
	}
	// The input order is untouched.
	if !equalCodes(codes(sample), "A1", "B2", "C3", "D4") {
		t.Errorf("SortEvents() reordered its input: %v", codes(sample))
	}
}

func TestSortEventsUndatedKeepOrder(t *testing.T) {
	events := Events{
		{Code: "X1", Date: "???"},
		{Code: "X2", Date: "??"},
		{Code: "Y1", Date: "01/01/2024"},
	}
	got := SortEvents(events)
	if !equalCodes(codes(got), "Y1", "X1", "X2") {
		t.Errorf("SortEvents() = %v", codes(got))
	}
}

func TestGroupByDate(t *testing.T) {
	groups := GroupByDate(SortEvents(sample))
	if len(groups) != 3 {
		t.Fatalf("GroupByDate() returned %d groups, expected 3", len(groups))
	}
	if groups[0].Date != "01/01/2024" || len(groups[0].Events) != 2 {
		t.Errorf("first group = %s with %d events", groups[0].Date, len(groups[0].Events))
	}
	if !equalCodes(codes(groups[0].Events), "C3", "B2") {
		t.Errorf("group keeps input order, got %v", codes(groups[0].Events))
	}
	if groups[1].Date != "15/01/2024" || len(groups[1].Events) != 1 {
		t.Errorf("second group = %s with %d events", groups[1].Date, len(groups[1].Events))
	}
	if groups[2].Date != "pas de date" {
		t.Errorf("last group = %s, expected the undated one", groups[2].Date)
	}
}

func TestCategories(t *testing.T) {
	got := sample.Categories()
	if !equalCodes(got, "U18", "Seniors", "U12") {
		t.Errorf("Categories() = %v", got)
	}
}
