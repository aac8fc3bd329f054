package models

import "time"

// Review decisions stored in reviews.decision.
const (
	DecisionAccept  = "accept"
	DecisionReject  = "reject"
	DecisionPending = "pending"
)

// Rating bounds for the four per-criterion scores.
const (
	RatingMin = 1
	RatingMax = 5
)

// MinCommentLength applies to both public and private comments after
// trimming.
const MinCommentLength = 50

// Review holds one reviewer's structured verdict on one paper. The
// composite unique index keeps a (paper, reviewer) pair down to a single
// row; repeated submissions update it in place.
type Review struct {
	ReviewID        int       `gorm:"primaryKey;column:review_id" json:"review_id"`
	ReviewRef       string    `gorm:"column:review_ref;unique" json:"review_ref"`
	PaperID         int       `gorm:"column:paper_id;uniqueIndex:idx_paper_reviewer" json:"paper_id"`
	ReviewerID      int       `gorm:"column:reviewer_id;uniqueIndex:idx_paper_reviewer" json:"reviewer_id"`
	Decision        string    `gorm:"column:decision;default:pending" json:"decision"`
	TechnicalMerit  int       `gorm:"column:technical_merit" json:"technical_merit"`
	Novelty         int       `gorm:"column:novelty" json:"novelty"`
	Clarity         int       `gorm:"column:clarity" json:"clarity"`
	Significance    int       `gorm:"column:significance" json:"significance"`
	PublicComments  string    `gorm:"column:public_comments" json:"public_comments"`
	PrivateComments string    `gorm:"column:private_comments" json:"private_comments"`
	SubmittedAt     time.Time `gorm:"column:submitted_at;autoCreateTime" json:"submitted_at"`
	LastModifiedAt  time.Time `gorm:"column:last_modified_at" json:"last_modified_at"`

	// Relations
	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}

// TableName specifies the table name for Review.
func (Review) TableName() string {
	return "reviews"
}
