package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"peer-review-api/config"
	"peer-review-api/services"
)

func paperIDParam(c *gin.Context) (int, bool) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return 0, false
	}
	return paperID, true
}

// GetAssignedPapers lists papers assigned to the reviewer that still need
// their review.
func GetAssignedPapers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	papers, err := services.NewPaperQueryService(config.DB).AssignedPendingPapers(userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    papers,
	})
}

// GetReview fetches the reviewer's own review of a paper, if any.
func GetReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	paperID, ok := paperIDParam(c)
	if !ok {
		return
	}

	review, err := services.NewLifecycleService(config.DB).Reviews().Find(paperID, userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    review,
	})
}

// SubmitReview creates or updates the reviewer's review of a paper and
// re-evaluates the paper's status.
func SubmitReview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	paperID, ok := paperIDParam(c)
	if !ok {
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	review, err := services.NewLifecycleService(config.DB).SubmitReview(paperID, userID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Review submitted successfully",
		"data":    review,
	})
}

// GetPaperReviews lists every review for a paper (editor).
func GetPaperReviews(c *gin.Context) {
	paperID, ok := paperIDParam(c)
	if !ok {
		return
	}

	reviews, err := services.NewLifecycleService(config.DB).Reviews().AllForPaper(paperID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reviews,
	})
}
