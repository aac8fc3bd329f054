package services

import (
	"strings"

	"peer-review-api/models"
)

// PaperInput carries the author-supplied fields of a submission.
type PaperInput struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Field    string   `json:"field"`
	Abstract string   `json:"abstract"`
	Keywords []string `json:"keywords"`
}

// ReviewInput carries one reviewer's verdict fields.
type ReviewInput struct {
	Decision        string `json:"decision"`
	TechnicalMerit  int    `json:"technical_merit"`
	Novelty         int    `json:"novelty"`
	Clarity         int    `json:"clarity"`
	Significance    int    `json:"significance"`
	PublicComments  string `json:"public_comments"`
	PrivateComments string `json:"private_comments"`
}

const (
	minTitleLength    = 5
	minAbstractLength = 100
)

// Normalize trims every string field in place.
func (in *PaperInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Field = strings.TrimSpace(in.Field)
	in.Abstract = strings.TrimSpace(in.Abstract)
	for i := range in.Authors {
		in.Authors[i] = strings.TrimSpace(in.Authors[i])
	}
	for i := range in.Keywords {
		in.Keywords[i] = strings.TrimSpace(in.Keywords[i])
	}
}

// Validate checks the submission fields and returns an itemized
// ValidationError listing every failed field, or nil.
func (in *PaperInput) Validate() error {
	in.Normalize()
	ve := &ValidationError{}

	if len(in.Title) < minTitleLength {
		ve.Add("title", "Title must be at least 5 characters long")
	}
	if len(in.Authors) == 0 {
		ve.Add("authors", "At least one author is required")
	} else {
		for _, author := range in.Authors {
			if author == "" {
				ve.Add("authors", "Each author must be a non-empty string")
				break
			}
		}
	}
	if !models.IsValidField(in.Field) {
		ve.Add("field", "Invalid field of study")
	}
	if len(in.Abstract) < minAbstractLength {
		ve.Add("abstract", "Abstract must be at least 100 characters long")
	}
	if len(in.Keywords) == 0 {
		ve.Add("keywords", "At least one keyword is required")
	} else {
		for _, keyword := range in.Keywords {
			if keyword == "" {
				ve.Add("keywords", "Each keyword must be a non-empty string")
				break
			}
		}
	}

	return ve.Err()
}

// Normalize trims the comment fields and decision in place.
func (in *ReviewInput) Normalize() {
	in.Decision = strings.TrimSpace(in.Decision)
	in.PublicComments = strings.TrimSpace(in.PublicComments)
	in.PrivateComments = strings.TrimSpace(in.PrivateComments)
}

// Validate checks the review fields and returns an itemized
// ValidationError listing every failed field, or nil.
func (in *ReviewInput) Validate() error {
	in.Normalize()
	ve := &ValidationError{}

	switch in.Decision {
	case models.DecisionAccept, models.DecisionReject, models.DecisionPending:
	default:
		ve.Add("decision", "Invalid decision value")
	}

	ratings := []struct {
		field string
		value int
		label string
	}{
		{"technical_merit", in.TechnicalMerit, "Technical merit"},
		{"novelty", in.Novelty, "Novelty"},
		{"clarity", in.Clarity, "Clarity"},
		{"significance", in.Significance, "Significance"},
	}
	for _, r := range ratings {
		if r.value < models.RatingMin || r.value > models.RatingMax {
			ve.Add(r.field, r.label+" must be between 1 and 5")
		}
	}

	if len(in.PublicComments) < models.MinCommentLength {
		ve.Add("public_comments", "Public comments must be at least 50 characters long")
	}
	if len(in.PrivateComments) < models.MinCommentLength {
		ve.Add("private_comments", "Private comments must be at least 50 characters long")
	}

	return ve.Err()
}
