package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"

	"github.com/Attamusc/commit-digest-cli/internal/digest"
	"github.com/Attamusc/commit-digest-cli/internal/gitlog"
)

// Ref identifies a GitHub-hosted repository as owner/name
type Ref struct {
	Owner string
	Name  string
}

// ParseRef parses an "owner/name" repository reference
func ParseRef(s string) (Ref, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Ref{}, fmt.Errorf("invalid repository reference %q (want owner/name)", s)
	}
	return Ref{Owner: parts[0], Name: parts[1]}, nil
}

// String returns a string representation of the Ref
func (r Ref) String() string {
	return r.Owner + "/" + r.Name
}

// Source lists commits of a GitHub-hosted repository through the REST API,
// shaping them like the local git log readers: day-precision author date
// and subject line only. When date bounds are set, the listing itself is
// restricted server-side; the local date filter still applies afterwards.
type Source struct {
	Client *github.Client
	Ref    Ref
	Since  *time.Time
	Until  *time.Time
}

func (s *Source) Commits(ctx context.Context) ([]gitlog.Commit, error) {
	opts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	if s.Since != nil {
		opts.Since = *s.Since
	}
	if s.Until != nil {
		// Bounds carry day precision; include the whole end day
		opts.Until = s.Until.Add(24*time.Hour - time.Second)
	}

	var commits []gitlog.Commit
	for {
		page, resp, err := s.Client.Repositories.ListCommits(ctx, s.Ref.Owner, s.Ref.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits for %s: %w", s.Ref, err)
		}

		for _, rc := range page {
			subject, _, _ := strings.Cut(rc.GetCommit().GetMessage(), "\n")
			commits = append(commits, gitlog.Commit{
				Hash:    rc.GetSHA(),
				Date:    rc.GetCommit().GetAuthor().GetDate().Format(digest.DateLayout),
				Message: strings.TrimSpace(subject),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return commits, nil
}
