package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Attamusc/commit-digest-cli/internal/gitlog"
)

// DateLayout is the day-precision layout used throughout: commit dates,
// operator input and report labels.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date into UTC midnight of that day.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(raw))
}

// FilterByRange keeps commits whose date lies within the inclusive bounds.
// A nil bound is unbounded on that side; start > end retains nothing. A
// commit whose date does not parse is skipped and counted rather than
// failing the run.
func FilterByRange(commits []gitlog.Commit, start, end *time.Time) (kept []gitlog.Commit, skipped int) {
	for _, c := range commits {
		d, err := ParseDate(c.Date)
		if err != nil {
			skipped++
			continue
		}
		if start != nil && d.Before(*start) {
			continue
		}
		if end != nil && d.After(*end) {
			continue
		}
		kept = append(kept, c)
	}
	return kept, skipped
}

// GroupByDate partitions commit messages by calendar date. Within a date,
// messages keep the order the source produced them in.
func GroupByDate(commits []gitlog.Commit) map[string][]string {
	groups := make(map[string][]string)
	for _, c := range commits {
		groups[c.Date] = append(groups[c.Date], c.Message)
	}
	return groups
}

// SortedDates returns the group keys in ascending order. Date strings are
// zero-padded YYYY-MM-DD, so lexicographic order is chronological order.
func SortedDates(groups map[string][]string) []string {
	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// ResolveBounds fills missing range endpoints from the retained commits:
// a nil start becomes the earliest commit date, a nil end the latest.
// Commits with unparseable dates are ignored; they were already filtered
// out by FilterByRange.
func ResolveBounds(commits []gitlog.Commit, start, end *time.Time) (time.Time, time.Time) {
	var min, max time.Time
	for _, c := range commits {
		d, err := ParseDate(c.Date)
		if err != nil {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}

	resolvedStart, resolvedEnd := min, max
	if start != nil {
		resolvedStart = *start
	}
	if end != nil {
		resolvedEnd = *end
	}
	return resolvedStart, resolvedEnd
}

// Label derives the report label for a resolved range: the date itself for
// a single day, "start_to_end" otherwise.
func Label(start, end time.Time) string {
	if start.Equal(end) {
		return start.Format(DateLayout)
	}
	return fmt.Sprintf("%s_to_%s", start.Format(DateLayout), end.Format(DateLayout))
}
