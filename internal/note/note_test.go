package note

import (
	"testing"
	"time"
)

func TestCollapseTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"empty":            {in: "", want: DefaultTitle},
		"whitespace":       {in: "   \t ", want: DefaultTitle},
		"kept as typed":    {in: "Groceries", want: "Groceries"},
		"padding kept":     {in: "  Groceries  ", want: "  Groceries  "},
		"placeholder text": {in: DefaultTitle, want: DefaultTitle},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if got := CollapseTitle(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSameFields(t *testing.T) {
	t.Parallel()

	base := Note{
		ID:        "a",
		Title:     "Alpha",
		Content:   "body",
		CreatedAt: "c",
		UpdatedAt: "u",
	}

	if !base.SameFields(base) {
		t.Fatal("identical notes reported different")
	}

	edited := base
	edited.UpdatedAt = "u2"
	if base.SameFields(edited) {
		t.Fatal("updatedAt change went unnoticed")
	}

	styled := base
	styled.TitleBold = true
	if base.SameFields(styled) {
		t.Fatal("style change went unnoticed")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	t.Parallel()

	when := time.Date(2026, time.March, 9, 15, 4, 0, 0, time.UTC)
	formatted := Timestamp(when)

	if formatted != "Mar 9, 2026, 3:04 PM" {
		t.Fatalf("formatted: got %q", formatted)
	}

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !parsed.Equal(when) {
		t.Fatalf("round trip: got %v, want %v", parsed, when)
	}
}

func TestParseTimestampLenient(t *testing.T) {
	t.Parallel()

	parsed, err := ParseTimestamp("2026-03-09T15:04:00Z")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Year() != 2026 || parsed.Month() != time.March {
		t.Fatalf("parsed: %v", parsed)
	}
}

func TestParseTimestampGarbage(t *testing.T) {
	t.Parallel()

	if _, err := ParseTimestamp("not a time"); err == nil {
		t.Fatal("expected an error")
	}
}
