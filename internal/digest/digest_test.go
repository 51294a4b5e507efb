package digest

import (
	"reflect"
	"testing"
	"time"

	"github.com/Attamusc/commit-digest-cli/internal/gitlog"
)

func date(s string) *time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return &d
}

func TestFilterByRange(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "c3", Date: "2024-01-03", Message: "newest"},
		{Hash: "c2", Date: "2024-01-02", Message: "middle"},
		{Hash: "c1", Date: "2024-01-01", Message: "oldest"},
	}

	tests := []struct {
		name       string
		start, end *time.Time
		want       []string
	}{
		{
			name: "no bounds returns input unchanged",
			want: []string{"newest", "middle", "oldest"},
		},
		{
			name:  "start only",
			start: date("2024-01-02"),
			want:  []string{"newest", "middle"},
		},
		{
			name: "end only",
			end:  date("2024-01-02"),
			want: []string{"middle", "oldest"},
		},
		{
			name:  "inclusive single day",
			start: date("2024-01-02"),
			end:   date("2024-01-02"),
			want:  []string{"middle"},
		},
		{
			name:  "start after end retains nothing",
			start: date("2024-01-03"),
			end:   date("2024-01-01"),
			want:  nil,
		},
		{
			name:  "range covering everything",
			start: date("2023-12-01"),
			end:   date("2024-02-01"),
			want:  []string{"newest", "middle", "oldest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, skipped := FilterByRange(commits, tt.start, tt.end)
			if skipped != 0 {
				t.Errorf("expected no skipped commits, got %d", skipped)
			}

			var got []string
			for _, c := range kept {
				got = append(got, c.Message)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterByRange_SkipsUnparseableDates(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "c1", Date: "2024-01-02", Message: "good"},
		{Hash: "c2", Date: "not-a-date", Message: "bad"},
		{Hash: "c3", Date: "2024-13-40", Message: "worse"},
	}

	kept, skipped := FilterByRange(commits, nil, nil)

	if skipped != 2 {
		t.Errorf("expected 2 skipped commits, got %d", skipped)
	}
	if len(kept) != 1 || kept[0].Message != "good" {
		t.Errorf("expected only the well-dated commit to survive, got %+v", kept)
	}
}

func TestGroupByDate_Stable(t *testing.T) {
	commits := []gitlog.Commit{
		{Hash: "c1", Date: "2024-01-02", Message: "first on the 2nd"},
		{Hash: "c2", Date: "2024-01-01", Message: "only on the 1st"},
		{Hash: "c3", Date: "2024-01-02", Message: "second on the 2nd"},
	}

	groups := GroupByDate(commits)

	if len(groups) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(groups))
	}

	want := []string{"first on the 2nd", "second on the 2nd"}
	if !reflect.DeepEqual(groups["2024-01-02"], want) {
		t.Errorf("expected relative order preserved, got %v", groups["2024-01-02"])
	}
	if !reflect.DeepEqual(groups["2024-01-01"], []string{"only on the 1st"}) {
		t.Errorf("unexpected group for 2024-01-01: %v", groups["2024-01-01"])
	}
}

func TestSortedDates(t *testing.T) {
	groups := map[string][]string{
		"2024-01-03": {"a"},
		"2023-12-31": {"b"},
		"2024-01-01": {"c"},
	}

	got := SortedDates(groups)
	want := []string{"2023-12-31", "2024-01-01", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveBounds(t *testing.T) {
	commits := []gitlog.Commit{
		{Date: "2024-01-03"},
		{Date: "2024-01-01"},
		{Date: "2024-01-02"},
	}

	t.Run("both bounds missing resolve to commit extremes", func(t *testing.T) {
		start, end := ResolveBounds(commits, nil, nil)
		if start.Format(DateLayout) != "2024-01-01" {
			t.Errorf("expected start 2024-01-01, got %s", start.Format(DateLayout))
		}
		if end.Format(DateLayout) != "2024-01-03" {
			t.Errorf("expected end 2024-01-03, got %s", end.Format(DateLayout))
		}
	})

	t.Run("given bounds win", func(t *testing.T) {
		start, end := ResolveBounds(commits, date("2023-11-01"), date("2024-06-01"))
		if start.Format(DateLayout) != "2023-11-01" || end.Format(DateLayout) != "2024-06-01" {
			t.Errorf("expected given bounds preserved, got %s / %s",
				start.Format(DateLayout), end.Format(DateLayout))
		}
	})
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       string
	}{
		{name: "single day", start: "2024-01-02", end: "2024-01-02", want: "2024-01-02"},
		{name: "range", start: "2024-01-01", end: "2024-01-05", want: "2024-01-01_to_2024-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Label(*date(tt.start), *date(tt.end))
			if got != tt.want {
				t.Errorf("expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}
