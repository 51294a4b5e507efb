package report

import (
	"regexp"
	"strings"
)

// bulletRegex matches lines that lead with a bullet or dash marker
var bulletRegex = regexp.MustCompile(`^[*-]\s+`)

// ExtractTaskPoints pulls bullet-style lines out of a prose summary and
// strips their markers. A non-empty summary with no bullets at all becomes
// a single point; an empty summary yields no points.
func ExtractTaskPoints(summary string) []string {
	var points []string
	for _, line := range strings.Split(summary, "\n") {
		line = strings.TrimSpace(line)
		if bulletRegex.MatchString(line) {
			points = append(points, strings.TrimSpace(strings.TrimLeft(line, "*-")))
		}
	}

	if len(points) == 0 && strings.TrimSpace(summary) != "" {
		points = []string{strings.TrimSpace(summary)}
	}
	return points
}
