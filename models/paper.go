package models

import (
	"time"
)

// Paper statuses stored in papers.status.
const (
	PaperStatusSubmitted   = "submitted"
	PaperStatusUnderReview = "under_review"
	PaperStatusAccepted    = "accepted"
	PaperStatusRejected    = "rejected"
)

// MaxReviewersPerPaper caps the reviewer assignment list. The paper moves
// to under_review only when the cap is reached exactly.
const MaxReviewersPerPaper = 3

// ResearchFields is the fixed field enumeration shared by paper
// classification and reviewer expertise tags.
var ResearchFields = []string{
	"computer-science",
	"mathematics",
	"physics",
	"chemistry",
	"biology",
	"engineering",
	"medicine",
	"social-sciences",
	"humanities",
	"other",
}

// IsValidField reports whether field belongs to the enumeration.
func IsValidField(field string) bool {
	for _, f := range ResearchFields {
		if f == field {
			return true
		}
	}
	return false
}

type Paper struct {
	PaperID        int       `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	SubmissionRef  string    `gorm:"column:submission_ref;unique" json:"submission_ref"`
	Title          string    `gorm:"column:title" json:"title"`
	Authors        []string  `gorm:"column:authors;serializer:json" json:"authors"`
	Field          string    `gorm:"column:field" json:"field"`
	Abstract       string    `gorm:"column:abstract" json:"abstract"`
	Keywords       []string  `gorm:"column:keywords;serializer:json" json:"keywords"`
	Status         string    `gorm:"column:status;default:submitted" json:"status"`
	SubmittedBy    int       `gorm:"column:submitted_by" json:"submitted_by"`
	SubmittedAt    time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
	CurrentVersion int       `gorm:"column:current_version;default:1" json:"current_version"`

	// Relations
	Submitter *User    `gorm:"foreignKey:SubmittedBy" json:"submitter,omitempty"`
	Reviewers []User   `gorm:"many2many:paper_reviewers;foreignKey:PaperID;joinForeignKey:PaperID;References:UserID;joinReferences:ReviewerID" json:"reviewers,omitempty"`
	Reviews   []Review `gorm:"foreignKey:PaperID" json:"reviews,omitempty"`
}

// PaperReviewer is the join row behind Paper.Reviewers. It is mapped
// explicitly so assignment inserts can go through the unique
// (paper_id, reviewer_id) index instead of gorm association helpers.
type PaperReviewer struct {
	PaperID    int       `gorm:"primaryKey;column:paper_id" json:"paper_id"`
	ReviewerID int       `gorm:"primaryKey;column:reviewer_id" json:"reviewer_id"`
	AssignedAt time.Time `gorm:"column:assigned_at;autoCreateTime" json:"assigned_at"`
}

// TableName overrides
func (Paper) TableName() string {
	return "papers"
}

func (PaperReviewer) TableName() string {
	return "paper_reviewers"
}

// HasReviewer reports whether reviewerID is already on the paper's
// reviewer list. Callers must have preloaded Reviewers.
func (p *Paper) HasReviewer(reviewerID int) bool {
	for _, r := range p.Reviewers {
		if r.UserID == reviewerID {
			return true
		}
	}
	return false
}
