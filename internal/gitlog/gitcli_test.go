package gitlog

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=test",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=test",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v: %s", args, err, out)
	}
}

func TestCLISource_Commits(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init")
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	commits, err := (&CLISource{RepoPath: dir}).Commits(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	if commits[0].Message != "Initial commit" {
		t.Errorf("expected message 'Initial commit', got '%s'", commits[0].Message)
	}
	if commits[0].Hash == "" {
		t.Error("expected non-empty hash")
	}
	if _, err := time.Parse("2006-01-02", commits[0].Date); err != nil {
		t.Errorf("expected day-precision date, got '%s'", commits[0].Date)
	}
}

func TestCLISource_Commits_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	_, err := (&CLISource{RepoPath: t.TempDir()}).Commits(context.Background())
	if err == nil {
		t.Error("expected error for a directory without history")
	}
}
