package services

import (
	"errors"
	"testing"

	"peer-review-api/models"
)

func reviewer(id int, expertise ...string) models.User {
	return models.User{
		UserID:    id,
		UserType:  models.UserTypeReviewer,
		Expertise: expertise,
	}
}

func TestEligibleReviewersFiltersByExpertise(t *testing.T) {
	pool := []models.User{
		reviewer(1, "physics", "mathematics"),
		reviewer(2, "biology"),
		reviewer(3, "physics"),
	}

	eligible, err := EligibleReviewers("physics", pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eligible) != 2 {
		t.Fatalf("expected 2 eligible reviewers, got %d", len(eligible))
	}
	// Ties stay in pool order.
	if eligible[0].UserID != 1 || eligible[1].UserID != 3 {
		t.Fatalf("expected pool order [1 3], got [%d %d]", eligible[0].UserID, eligible[1].UserID)
	}
}

func TestEligibleReviewersNoExactMatchYieldsEmpty(t *testing.T) {
	pool := []models.User{
		reviewer(1, "chemistry"),
		reviewer(2, "physics-adjacent"),
	}

	eligible, err := EligibleReviewers("physics", pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eligible) != 0 {
		t.Fatalf("expected no eligible reviewers, got %d", len(eligible))
	}
}

func TestEligibleReviewersSkipsNonReviewers(t *testing.T) {
	author := models.User{UserID: 5, UserType: models.UserTypeAuthor, Expertise: []string{"physics"}}
	pool := []models.User{author, reviewer(6, "physics")}

	eligible, err := EligibleReviewers("physics", pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eligible) != 1 || eligible[0].UserID != 6 {
		t.Fatalf("expected only reviewer 6, got %+v", eligible)
	}
}

func TestEligibleReviewersRejectsUnknownField(t *testing.T) {
	_, err := EligibleReviewers("alchemy", nil)
	ve, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError for unknown field, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "field" {
		t.Fatalf("unexpected field errors: %+v", ve.Fields)
	}
}

func TestIsAssignable(t *testing.T) {
	paper := &models.Paper{
		Reviewers: []models.User{reviewer(1), reviewer(2)},
	}

	if err := IsAssignable(paper, 3); err != nil {
		t.Fatalf("expected reviewer 3 assignable, got %v", err)
	}
	if err := IsAssignable(paper, 2); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}

	paper.Reviewers = append(paper.Reviewers, reviewer(3))
	if err := IsAssignable(paper, 4); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded, got %v", err)
	}
	// Duplicate check wins over the capacity check for a known reviewer.
	if err := IsAssignable(paper, 1); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}
}
