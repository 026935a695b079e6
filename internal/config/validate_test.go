package config

import (
	"strings"
	"testing"
)

func issueAt(issues []Issue, path string) (Issue, bool) {
	for _, i := range issues {
		if i.Path == path {
			return i, true
		}
	}
	return Issue{}, false
}

func TestValidate_DefaultsAreClean(t *testing.T) {
	t.Parallel()

	if issues := Validate(Default()); len(issues) != 0 {
		t.Fatalf("issues = %v", issues)
	}
}

func TestValidate_EmptyAddr(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Server.Addr = "  "
	issues := Validate(cfg)
	issue, ok := issueAt(issues, "server.addr")
	if !ok || issue.Severity != SeverityError {
		t.Fatalf("issues = %v", issues)
	}
}

func TestValidate_Dataset(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Dataset.Path = "a.csv"
	cfg.Dataset.URL = "https://example.com/b.csv"
	if _, ok := issueAt(Validate(cfg), "dataset"); !ok {
		t.Fatal("path+url should be mutually exclusive")
	}

	cfg = Default()
	cfg.Dataset.URL = "ftp://example.com/b.csv"
	issue, ok := issueAt(Validate(cfg), "dataset.url")
	if !ok || issue.Severity != SeverityError {
		t.Fatalf("non-http URL accepted: %v", Validate(cfg))
	}

	cfg = Default()
	cfg.Dataset.MaxFileSize = -1
	cfg.Dataset.MaxRows = -1
	cfg.Dataset.Delimiter = "||"
	issues := Validate(cfg)
	for _, path := range []string{"dataset.max_file_size", "dataset.max_rows", "dataset.delimiter"} {
		if _, ok := issueAt(issues, path); !ok {
			t.Fatalf("missing issue for %s in %v", path, issues)
		}
	}

	// A single multi-byte delimiter rune is fine.
	cfg = Default()
	cfg.Dataset.Delimiter = "§"
	if _, ok := issueAt(Validate(cfg), "dataset.delimiter"); ok {
		t.Fatal("single-rune delimiter rejected")
	}
}

func TestValidate_Query(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Query.PageSize = 2000
	issue, ok := issueAt(Validate(cfg), "query.page_size")
	if !ok || issue.Severity != SeverityWarning {
		t.Fatalf("oversized page: %v", Validate(cfg))
	}

	cfg = Default()
	cfg.Query.ChunkSize = 2000
	cfg.Query.MaxVisibleRows = 1000
	issue, ok = issueAt(Validate(cfg), "query.chunk_size")
	if !ok || issue.Severity != SeverityWarning {
		t.Fatalf("clipped chunk: %v", Validate(cfg))
	}

	cfg = Default()
	cfg.Query.FuzzyThreshold = 1.5
	if _, ok := issueAt(Validate(cfg), "query.fuzzy_threshold"); !ok {
		t.Fatalf("threshold out of range accepted: %v", Validate(cfg))
	}
}

func TestHasErrors(t *testing.T) {
	t.Parallel()

	if HasErrors([]Issue{{Severity: SeverityWarning}}) {
		t.Fatal("warnings alone should not be fatal")
	}
	if !HasErrors([]Issue{{Severity: SeverityWarning}, {Severity: SeverityError}}) {
		t.Fatal("an error should be fatal")
	}
}

func TestIssueError(t *testing.T) {
	t.Parallel()

	issue := Issue{Severity: SeverityError, Path: "dataset.url", Message: "bad"}
	if got := issue.Error(); !strings.Contains(got, "dataset.url") || !strings.Contains(got, "error") {
		t.Fatalf("Error() = %q", got)
	}
}
