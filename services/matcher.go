package services

import (
	"peer-review-api/models"
)

// EligibleReviewers filters pool down to reviewers whose expertise tags
// contain the paper's field. Matching is an exact tag comparison and the
// pool order is preserved; no ranking is applied.
func EligibleReviewers(field string, pool []models.User) ([]models.User, error) {
	if !models.IsValidField(field) {
		ve := &ValidationError{}
		ve.Add("field", "Invalid field of study")
		return nil, ve
	}

	eligible := make([]models.User, 0, len(pool))
	for _, candidate := range pool {
		if !candidate.IsReviewer() {
			continue
		}
		if candidate.HasExpertise(field) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible, nil
}

// IsAssignable reports whether reviewerID may be added to the paper's
// reviewer list. The paper must have Reviewers preloaded. This is the
// advisory check; the insert itself is still guarded at the store level.
func IsAssignable(paper *models.Paper, reviewerID int) error {
	if paper.HasReviewer(reviewerID) {
		return ErrAlreadyAssigned
	}
	if len(paper.Reviewers) >= models.MaxReviewersPerPaper {
		return ErrCapacityExceeded
	}
	return nil
}
