package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"peer-review-api/models"
)

// Consensus thresholds. They are deliberately independent of the
// reviewer-assignment cap: assignment governs how many reviewers are
// recruited, the counts below govern when consensus forces a terminal
// status. Two rejects end a paper even if only two reviewers were ever
// assigned.
const (
	AcceptThreshold = 3
	RejectThreshold = 2
)

// LifecycleService owns paper status transitions, reviewer assignment and
// review aggregation.
type LifecycleService struct {
	db      *gorm.DB
	reviews *ReviewStore
}

// NewLifecycleService creates a LifecycleService backed by db.
func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{db: db, reviews: NewReviewStore(db)}
}

// Reviews exposes the underlying review store.
func (s *LifecycleService) Reviews() *ReviewStore {
	return s.reviews
}

// NextStatusAfterAssignment returns the paper status after the reviewer
// count reaches reviewerCount. The under_review transition fires only at
// the exact cap; below it the status stays as it was.
func NextStatusAfterAssignment(current string, reviewerCount int) string {
	if reviewerCount == models.MaxReviewersPerPaper {
		return models.PaperStatusUnderReview
	}
	return current
}

// DecideStatus folds the review decision counts into a paper status.
// Accept wins over reject when both thresholds are somehow met, and a
// paper never regresses out of a terminal status.
func DecideStatus(current string, acceptCount, rejectCount int) string {
	if acceptCount >= AcceptThreshold {
		return models.PaperStatusAccepted
	}
	if rejectCount >= RejectThreshold {
		return models.PaperStatusRejected
	}
	return current
}

// AssignmentMessage renders the coordinator-facing outcome of a
// successful assignment.
func AssignmentMessage(reviewerCount int) string {
	if reviewerCount == models.MaxReviewersPerPaper {
		return "Reviewer assigned successfully. Paper is now under review."
	}
	remaining := models.MaxReviewersPerPaper - reviewerCount
	return fmt.Sprintf("Reviewer assigned successfully. %d more reviewer(s) needed.", remaining)
}

// SubmitPaper validates the submission fields and creates the paper in
// submitted status with empty reviewer and review lists.
func (s *LifecycleService) SubmitPaper(authorID int, in PaperInput) (*models.Paper, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	paper := models.Paper{
		SubmissionRef:  uuid.NewString(),
		Title:          in.Title,
		Authors:        in.Authors,
		Field:          in.Field,
		Abstract:       in.Abstract,
		Keywords:       in.Keywords,
		Status:         models.PaperStatusSubmitted,
		SubmittedBy:    authorID,
		CurrentVersion: 1,
	}
	if err := s.db.Create(&paper).Error; err != nil {
		return nil, fmt.Errorf("failed to create paper: %w", err)
	}
	return &paper, nil
}

// AssignReviewer adds reviewerID to the paper's reviewer list. The
// mutation is guarded by the paper's version counter so two concurrent
// assignments cannot both take the last slot; a lost version race is
// retried once before surfacing ErrConflict.
func (s *LifecycleService) AssignReviewer(paperID, reviewerID int) (*models.Paper, string, error) {
	var reviewer models.User
	err := s.db.Where("user_id = ? AND user_type = ?", reviewerID, models.UserTypeReviewer).
		First(&reviewer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("reviewer: %w", ErrNotFound)
		}
		return nil, "", err
	}

	var count int
	err = s.retryOnConflict(func() error {
		var innerErr error
		count, innerErr = s.assignOnce(paperID, reviewerID)
		return innerErr
	})
	if err != nil {
		return nil, "", err
	}

	var paper models.Paper
	if err := s.db.Preload("Reviewers").First(&paper, "paper_id = ?", paperID).Error; err != nil {
		return nil, "", fmt.Errorf("failed to reload paper: %w", err)
	}
	return &paper, AssignmentMessage(count), nil
}

func (s *LifecycleService) assignOnce(paperID, reviewerID int) (int, error) {
	var count int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.Preload("Reviewers").First(&paper, "paper_id = ?", paperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("paper: %w", ErrNotFound)
			}
			return err
		}

		if err := IsAssignable(&paper, reviewerID); err != nil {
			return err
		}

		assignment := models.PaperReviewer{PaperID: paperID, ReviewerID: reviewerID}
		if err := tx.Create(&assignment).Error; err != nil {
			// The unique index backstops a concurrent duplicate insert.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyAssigned
			}
			return fmt.Errorf("failed to record assignment: %w", err)
		}

		var assigned int64
		if err := tx.Model(&models.PaperReviewer{}).
			Where("paper_id = ?", paperID).
			Count(&assigned).Error; err != nil {
			return err
		}
		count = int(assigned)
		if count > models.MaxReviewersPerPaper {
			return ErrCapacityExceeded
		}

		status := NextStatusAfterAssignment(paper.Status, count)

		// Guarded bump: zero rows affected means another transaction won
		// the version race and our count is stale.
		res := tx.Model(&models.Paper{}).
			Where("paper_id = ? AND current_version = ?", paperID, paper.CurrentVersion).
			Updates(map[string]interface{}{
				"status":          status,
				"current_version": paper.CurrentVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}
		return nil
	})
	return count, err
}

// SubmitReview upserts the reviewer's verdict and re-aggregates the
// paper's decision counts in the same transaction. Submitting twice
// updates the existing record instead of creating a second one.
func (s *LifecycleService) SubmitReview(paperID, reviewerID int, in ReviewInput) (*models.Review, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var review *models.Review
	err := s.retryOnConflict(func() error {
		var innerErr error
		review, innerErr = s.submitReviewOnce(paperID, reviewerID, in)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *LifecycleService) submitReviewOnce(paperID, reviewerID int, in ReviewInput) (*models.Review, error) {
	var review *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.First(&paper, "paper_id = ?", paperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("paper: %w", ErrNotFound)
			}
			return err
		}

		var assigned int64
		if err := tx.Model(&models.PaperReviewer{}).
			Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).
			Count(&assigned).Error; err != nil {
			return err
		}
		if assigned == 0 {
			return fmt.Errorf("reviewer is not assigned to this paper: %w", ErrForbidden)
		}

		stored, err := s.reviews.Upsert(tx, paperID, reviewerID, in)
		if err != nil {
			return err
		}
		review = stored

		// Aggregate over every review currently recorded for the paper,
		// inside the transaction, so interleaved submissions cannot lose
		// a count.
		var acceptCount, rejectCount int64
		if err := tx.Model(&models.Review{}).
			Where("paper_id = ? AND decision = ?", paperID, models.DecisionAccept).
			Count(&acceptCount).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Review{}).
			Where("paper_id = ? AND decision = ?", paperID, models.DecisionReject).
			Count(&rejectCount).Error; err != nil {
			return err
		}

		status := DecideStatus(paper.Status, int(acceptCount), int(rejectCount))

		// The bump is unconditional, status change or not: two submissions
		// that aggregated over the same snapshot cannot both commit, so the
		// loser re-counts on retry and sees the winner's review.
		res := tx.Model(&models.Paper{}).
			Where("paper_id = ? AND current_version = ?", paperID, paper.CurrentVersion).
			Updates(map[string]interface{}{
				"status":          status,
				"current_version": paper.CurrentVersion + 1,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

// WithdrawPaper permanently removes the paper. Only the submitting author
// may withdraw, and only while the paper is still in submitted status.
func (s *LifecycleService) WithdrawPaper(paperID, actorID int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var paper models.Paper
		if err := tx.First(&paper, "paper_id = ?", paperID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("paper: %w", ErrNotFound)
			}
			return err
		}

		if paper.SubmittedBy != actorID {
			return fmt.Errorf("only the submitting author can withdraw: %w", ErrForbidden)
		}
		if paper.Status != models.PaperStatusSubmitted {
			return fmt.Errorf("only papers in submitted status can be withdrawn: %w", ErrInvalidState)
		}

		// No reviews can exist yet in submitted status; the delete below
		// keeps the store consistent regardless.
		if err := tx.Where("paper_id = ?", paperID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("paper_id = ?", paperID).Delete(&models.PaperReviewer{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Paper{}, "paper_id = ?", paperID).Error; err != nil {
			return err
		}
		return nil
	})
}

// retryOnConflict runs fn, retrying exactly once when it loses an
// optimistic version race.
func (s *LifecycleService) retryOnConflict(fn func() error) error {
	err := fn()
	if errors.Is(err, ErrConflict) {
		err = fn()
	}
	return err
}
