package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"peer-review-api/config"
	"peer-review-api/models"
	"peer-review-api/services"
)

// AssignReviewerRequest binds the editor's assignment intent.
type AssignReviewerRequest struct {
	PaperID    int `json:"paper_id" binding:"required"`
	ReviewerID int `json:"reviewer_id" binding:"required"`
}

// SubmitPaper creates a new paper for the authenticated author.
func SubmitPaper(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input services.PaperInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	paper, err := services.NewLifecycleService(config.DB).SubmitPaper(userID, input)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Paper submitted successfully",
		"data":    paper,
	})
}

// GetMyPapers lists the author's own papers with their reviews.
func GetMyPapers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	papers, err := services.NewPaperQueryService(config.DB).PapersByAuthor(userID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Papers retrieved successfully",
		"data":    papers,
	})
}

// WithdrawPaper permanently removes one of the author's own submitted papers.
func WithdrawPaper(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	if err := services.NewLifecycleService(config.DB).WithdrawPaper(paperID, userID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Paper withdrawn successfully",
	})
}

// GetUnassignedPapers lists papers still recruiting reviewers (editor).
func GetUnassignedPapers(c *gin.Context) {
	papers, err := services.NewPaperQueryService(config.DB).UnassignedPapers()
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    papers,
		"total":   len(papers),
	})
}

// GetAvailableReviewers lists reviewers eligible for a paper (editor).
// The paper's own field drives the match unless a field filter overrides
// it.
func GetAvailableReviewers(c *gin.Context) {
	paperID, err := strconv.Atoi(c.Param("id"))
	if err != nil || paperID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paper ID"})
		return
	}

	var paper models.Paper
	if err := config.DB.First(&paper, "paper_id = ?", paperID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
			return
		}
		respondDomainError(c, err)
		return
	}

	field := strings.TrimSpace(c.Query("field"))
	if field == "" {
		field = paper.Field
	}

	pool, err := services.NewPaperQueryService(config.DB).ReviewerPool()
	if err != nil {
		respondDomainError(c, err)
		return
	}

	eligible, err := services.EligibleReviewers(field, pool)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    eligible,
	})
}

// AssignReviewer adds a reviewer to a paper (editor).
func AssignReviewer(c *gin.Context) {
	var req AssignReviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paper ID and reviewer ID are required"})
		return
	}

	paper, message, err := services.NewLifecycleService(config.DB).AssignReviewer(req.PaperID, req.ReviewerID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    paper,
	})
}
