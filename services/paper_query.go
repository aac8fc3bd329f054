package services

import (
	"fmt"

	"gorm.io/gorm"

	"peer-review-api/models"
)

// PaperQueryService serves the read-side listings for the three roles.
type PaperQueryService struct {
	db      *gorm.DB
	reviews *ReviewStore
}

// NewPaperQueryService creates a PaperQueryService backed by db.
func NewPaperQueryService(db *gorm.DB) *PaperQueryService {
	return &PaperQueryService{db: db, reviews: NewReviewStore(db)}
}

// PapersByAuthor returns the author's own papers, newest first, with
// reviews and reviewer identity preloaded.
func (s *PaperQueryService) PapersByAuthor(authorID int) ([]models.Paper, error) {
	var papers []models.Paper
	err := s.db.Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("submitted_at DESC")
	}).
		Preload("Reviews.Reviewer", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "first_name", "last_name", "email", "institution")
		}).
		Where("submitted_by = ?", authorID).
		Order("submitted_at DESC").
		Find(&papers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch papers: %w", err)
	}
	return papers, nil
}

// UnassignedPapers returns papers still recruiting reviewers: status
// submitted and fewer than the reviewer cap assigned.
func (s *PaperQueryService) UnassignedPapers() ([]models.Paper, error) {
	var papers []models.Paper
	err := s.db.Preload("Submitter", func(db *gorm.DB) *gorm.DB {
		return db.Select("user_id", "first_name", "last_name", "email")
	}).
		Preload("Reviewers", func(db *gorm.DB) *gorm.DB {
			return db.Select("user_id", "first_name", "last_name", "email")
		}).
		Where("status = ?", models.PaperStatusSubmitted).
		Where("(SELECT COUNT(*) FROM paper_reviewers WHERE paper_reviewers.paper_id = papers.paper_id) < ?",
			models.MaxReviewersPerPaper).
		Order("submitted_at DESC").
		Find(&papers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unassigned papers: %w", err)
	}
	return papers, nil
}

// ReviewerPool returns every registered reviewer. Expertise filtering
// happens in the matcher so tag comparison stays in one place.
func (s *PaperQueryService) ReviewerPool() ([]models.User, error) {
	var reviewers []models.User
	err := s.db.Select("user_id", "first_name", "last_name", "email", "expertise", "institution", "department", "user_type").
		Where("user_type = ?", models.UserTypeReviewer).
		Order("user_id ASC").
		Find(&reviewers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviewers: %w", err)
	}
	return reviewers, nil
}

// AssignedPendingPapers returns papers assigned to the reviewer that they
// have not reviewed yet and that are still in an active status.
func (s *PaperQueryService) AssignedPendingPapers(reviewerID int) ([]models.Paper, error) {
	reviewedIDs, err := s.reviews.ReviewedPaperIDs(reviewerID)
	if err != nil {
		return nil, err
	}

	query := s.db.Preload("Submitter", func(db *gorm.DB) *gorm.DB {
		return db.Select("user_id", "first_name", "last_name", "email")
	}).
		Joins("JOIN paper_reviewers ON paper_reviewers.paper_id = papers.paper_id").
		Where("paper_reviewers.reviewer_id = ?", reviewerID).
		Where("papers.status IN ?", []string{models.PaperStatusSubmitted, models.PaperStatusUnderReview})
	if len(reviewedIDs) > 0 {
		query = query.Where("papers.paper_id NOT IN ?", reviewedIDs)
	}

	var papers []models.Paper
	if err := query.Order("papers.submitted_at DESC").Find(&papers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch assigned papers: %w", err)
	}
	return papers, nil
}
