package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		err       error
		wantKind  Kind
		retryable bool
	}{
		{"csv_structural", CSV("empty", CodeEmptyFile), KindCSV, false},
		{"csv_network", CSV("down", CodeNetworkError), KindCSV, true},
		{"csv_timeout", CSV("slow", CodeTimeout), KindCSV, true},
		{"validation", Validation("bad", "PRICE", "x"), KindValidation, false},
		{"parse", Parse("mismatch", 3), KindParse, false},
		{"plain_fetch_message", errors.New("failed to fetch resource"), KindNetwork, true},
		{"plain_other", errors.New("boom"), KindUnknown, false},
		{"wrapped_csv", fmt.Errorf("load: %w", CSV("down", CodeNetworkError)), KindCSV, true},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			kind, retryable := Classify(c.err)
			if kind != c.wantKind || retryable != c.retryable {
				t.Fatalf("Classify(%v) = %v/%v, want %v/%v",
					c.err, kind, retryable, c.wantKind, c.retryable)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	if got := Message(CSV("raw", CodeEmptyFile)); got != "The CSV file is empty or contains no valid data." {
		t.Fatalf("empty-file message = %q", got)
	}
	if got := Message(CSV("custom copy", CodeNoFile)); got != "custom copy" {
		t.Fatalf("unmapped code should keep its own message, got %q", got)
	}
	if got := Message(Validation("not a number", "PRICE", "x")); got != `Invalid data in field "PRICE": not a number` {
		t.Fatalf("validation message = %q", got)
	}
	if got := Message(Parse("bad row", 4)); got != "Parse error at line 4: bad row" {
		t.Fatalf("parse message = %q", got)
	}
	if got := Message(nil); got != "An unexpected error occurred." {
		t.Fatalf("nil message = %q", got)
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()

	if got := Suggestions(CSV("", CodeMissingHeaders)); len(got) != 3 {
		t.Fatalf("expected 3 suggestions for missing headers, got %v", got)
	}
	if got := Suggestions(Validation("", "F", "v")); len(got) == 0 {
		t.Fatal("expected suggestions for validation errors")
	}
	if got := Suggestions(errors.New("boom")); len(got) == 0 {
		t.Fatal("expected generic fallback suggestions")
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	if !IsRetryable(CSV("down", CodeNetworkError)) {
		t.Fatal("network CSV errors should be retryable")
	}
	if IsRetryable(CSV("empty", CodeEmptyFile)) {
		t.Fatal("structural CSV errors should not be retryable")
	}
}
