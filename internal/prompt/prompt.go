package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Attamusc/commit-digest-cli/internal/digest"
	"github.com/Attamusc/commit-digest-cli/internal/repolist"
)

// Mode is the analysis window the operator selected
type Mode int

const (
	// ModeAllHistory analyzes the full commit history
	ModeAllHistory Mode = iota + 1
	// ModeDate analyzes a single specific date
	ModeDate
	// ModeRange analyzes an inclusive date range
	ModeRange
	// ModeToday analyzes today's commits
	ModeToday
	// ModeYesterday analyzes yesterday's commits
	ModeYesterday
)

// ParseMode maps a CLI flag value onto a Mode
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return ModeAllHistory, nil
	case "date":
		return ModeDate, nil
	case "range":
		return ModeRange, nil
	case "today":
		return ModeToday, nil
	case "yesterday":
		return ModeYesterday, nil
	}
	return 0, fmt.Errorf("unknown analysis mode %q (want all, date, range, today or yesterday)", s)
}

// Prompter drives the interactive dialogue on the operator's terminal.
// Input comes from an injected reader so tests can script the exchange.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing prompts to out
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// SelectRepoPath offers the remembered paths as a numbered menu, with a
// final entry for adding a new path. With no remembered paths it goes
// straight to entry. New paths are validated as directories and saved.
func (p *Prompter) SelectRepoPath(store *repolist.Store) (string, error) {
	paths, err := store.Load()
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return p.readNewRepoPath(store)
	}

	fmt.Fprintln(p.out, "Select a repo path:")
	for i, path := range paths {
		fmt.Fprintf(p.out, "%d. %s\n", i+1, path)
	}
	fmt.Fprintf(p.out, "%d. Add new repo path\n", len(paths)+1)

	choice, err := p.readLine(fmt.Sprintf("Enter choice (1-%d): ", len(paths)+1))
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(paths)+1 {
		return "", fmt.Errorf("invalid choice %q", choice)
	}
	if n <= len(paths) {
		return paths[n-1], nil
	}
	return p.readNewRepoPath(store)
}

func (p *Prompter) readNewRepoPath(store *repolist.Store) (string, error) {
	path, err := p.readLine("Enter new repo path: ")
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("invalid directory path: %s", path)
	}
	if err := store.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// SelectMode presents the analysis type menu
func (p *Prompter) SelectMode() (Mode, error) {
	fmt.Fprintln(p.out, "Select analysis type:")
	fmt.Fprintln(p.out, "1. All history")
	fmt.Fprintln(p.out, "2. Specific date")
	fmt.Fprintln(p.out, "3. Date range")
	fmt.Fprintln(p.out, "4. Today")
	fmt.Fprintln(p.out, "5. Yesterday")

	choice, err := p.readLine("Enter choice (1/2/3/4/5): ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < int(ModeAllHistory) || n > int(ModeYesterday) {
		return 0, fmt.Errorf("invalid choice %q", choice)
	}
	return Mode(n), nil
}

// ReadDate asks for a YYYY-MM-DD date, named by label ("date", "start date", ...)
func (p *Prompter) ReadDate(label string) (time.Time, error) {
	raw, err := p.readLine(fmt.Sprintf("Enter %s (YYYY-MM-DD): ", label))
	if err != nil {
		return time.Time{}, err
	}
	d, err := digest.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", raw)
	}
	return d, nil
}

// ReadAPIKey asks for the Gemini credential, the last resort after .env
// and the environment
func (p *Prompter) ReadAPIKey() (string, error) {
	return p.readLine("Enter Gemini API key (or set GEMINI_API_KEY env): ")
}
