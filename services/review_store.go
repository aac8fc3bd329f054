package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"peer-review-api/models"
)

// ReviewStore persists review records and owns the one-review-per
// (paper, reviewer) invariant. The invariant lives in the composite
// unique index, not in application-level read-then-write checks, so
// concurrent submissions collapse to a single row.
type ReviewStore struct {
	db *gorm.DB
}

// NewReviewStore creates a ReviewStore backed by db.
func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// Upsert creates or updates the review keyed by (paperID, reviewerID) in
// one statement. On conflict all rated and commented fields are
// overwritten and last_modified_at is refreshed; review_id, review_ref
// and submitted_at are left untouched.
func (s *ReviewStore) Upsert(tx *gorm.DB, paperID, reviewerID int, in ReviewInput) (*models.Review, error) {
	if tx == nil {
		tx = s.db
	}

	now := time.Now()
	review := models.Review{
		ReviewRef:       uuid.NewString(),
		PaperID:         paperID,
		ReviewerID:      reviewerID,
		Decision:        in.Decision,
		TechnicalMerit:  in.TechnicalMerit,
		Novelty:         in.Novelty,
		Clarity:         in.Clarity,
		Significance:    in.Significance,
		PublicComments:  in.PublicComments,
		PrivateComments: in.PrivateComments,
		SubmittedAt:     now,
		LastModifiedAt:  now,
	}

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "paper_id"}, {Name: "reviewer_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"decision",
			"technical_merit",
			"novelty",
			"clarity",
			"significance",
			"public_comments",
			"private_comments",
			"last_modified_at",
		}),
	}).Create(&review).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert review: %w", err)
	}

	// The conflict path keeps the original row's id, so reload to return
	// the record as stored.
	var stored models.Review
	if err := tx.Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to reload review: %w", err)
	}
	return &stored, nil
}

// Find returns the review for (paperID, reviewerID), or ErrNotFound.
func (s *ReviewStore) Find(paperID, reviewerID int) (*models.Review, error) {
	var review models.Review
	err := s.db.Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("review: %w", ErrNotFound)
		}
		return nil, err
	}
	return &review, nil
}

// AllForPaper returns every review recorded for the paper, newest first,
// with reviewer identity preloaded.
func (s *ReviewStore) AllForPaper(paperID int) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Preload("Reviewer", func(db *gorm.DB) *gorm.DB {
		return db.Select("user_id", "first_name", "last_name", "email", "institution")
	}).
		Where("paper_id = ?", paperID).
		Order("submitted_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

// ReviewedPaperIDs returns the ids of papers the reviewer has already
// submitted a review for.
func (s *ReviewStore) ReviewedPaperIDs(reviewerID int) ([]int, error) {
	var ids []int
	err := s.db.Model(&models.Review{}).
		Where("reviewer_id = ?", reviewerID).
		Pluck("paper_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviewed paper ids: %w", err)
	}
	return ids, nil
}
