package services

import (
	"strings"
	"testing"
)

func validPaperInput() PaperInput {
	return PaperInput{
		Title:    "Adaptive Mesh Refinement",
		Authors:  []string{"A. Author"},
		Field:    "physics",
		Abstract: strings.Repeat("a", 100),
		Keywords: []string{"mesh"},
	}
}

func validReviewInput() ReviewInput {
	return ReviewInput{
		Decision:        "accept",
		TechnicalMerit:  4,
		Novelty:         3,
		Clarity:         5,
		Significance:    4,
		PublicComments:  strings.Repeat("p", 50),
		PrivateComments: strings.Repeat("q", 50),
	}
}

func fieldFailures(t *testing.T, err error) map[string]string {
	t.Helper()
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	failures := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		failures[f.Field] = f.Message
	}
	return failures
}

func TestPaperInputTitleBoundary(t *testing.T) {
	in := validPaperInput()
	in.Title = "abcd"
	failures := fieldFailures(t, in.Validate())
	if _, ok := failures["title"]; !ok {
		t.Fatalf("expected title failure, got %v", failures)
	}

	in.Title = "abcde"
	if err := in.Validate(); err != nil {
		t.Fatalf("5-char title should pass, got %v", err)
	}
}

func TestPaperInputAbstractBoundary(t *testing.T) {
	in := validPaperInput()
	in.Abstract = strings.Repeat("a", 99)
	failures := fieldFailures(t, in.Validate())
	if _, ok := failures["abstract"]; !ok {
		t.Fatalf("expected abstract failure, got %v", failures)
	}

	in.Abstract = strings.Repeat("a", 100)
	if err := in.Validate(); err != nil {
		t.Fatalf("100-char abstract should pass, got %v", err)
	}
}

func TestPaperInputCollectsAllFailures(t *testing.T) {
	in := PaperInput{
		Title:    "abc",
		Authors:  []string{"  "},
		Field:    "astrology",
		Abstract: "too short",
		Keywords: nil,
	}
	failures := fieldFailures(t, in.Validate())
	for _, field := range []string{"title", "authors", "field", "abstract", "keywords"} {
		if _, ok := failures[field]; !ok {
			t.Fatalf("expected %s failure, got %v", field, failures)
		}
	}
}

func TestPaperInputTrimsBeforeChecking(t *testing.T) {
	in := validPaperInput()
	in.Title = "  ab  " // 2 chars after trimming
	failures := fieldFailures(t, in.Validate())
	if _, ok := failures["title"]; !ok {
		t.Fatalf("expected title failure after trimming, got %v", failures)
	}
}

func TestReviewInputCommentBoundary(t *testing.T) {
	in := validReviewInput()
	in.PublicComments = strings.Repeat("x", 49)
	failures := fieldFailures(t, in.Validate())
	if _, ok := failures["public_comments"]; !ok {
		t.Fatalf("expected public_comments failure, got %v", failures)
	}

	in.PublicComments = strings.Repeat("x", 50)
	if err := in.Validate(); err != nil {
		t.Fatalf("50-char comments should pass, got %v", err)
	}

	// Padding does not help: length is measured after trimming.
	in.PrivateComments = "  " + strings.Repeat("y", 49) + "  "
	failures = fieldFailures(t, in.Validate())
	if _, ok := failures["private_comments"]; !ok {
		t.Fatalf("expected private_comments failure, got %v", failures)
	}
}

func TestReviewInputRatingBounds(t *testing.T) {
	for _, bad := range []int{0, 6, -1} {
		in := validReviewInput()
		in.Novelty = bad
		failures := fieldFailures(t, in.Validate())
		if _, ok := failures["novelty"]; !ok {
			t.Fatalf("rating %d should fail, got %v", bad, failures)
		}
	}
	for _, good := range []int{1, 5} {
		in := validReviewInput()
		in.TechnicalMerit = good
		if err := in.Validate(); err != nil {
			t.Fatalf("rating %d should pass, got %v", good, err)
		}
	}
}

func TestReviewInputDecisionEnum(t *testing.T) {
	for _, good := range []string{"accept", "reject", "pending"} {
		in := validReviewInput()
		in.Decision = good
		if err := in.Validate(); err != nil {
			t.Fatalf("decision %q should pass, got %v", good, err)
		}
	}

	in := validReviewInput()
	in.Decision = "maybe"
	failures := fieldFailures(t, in.Validate())
	if _, ok := failures["decision"]; !ok {
		t.Fatalf("expected decision failure, got %v", failures)
	}
}
