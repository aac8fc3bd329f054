package routes

import (
	"peer-review-api/controllers"
	"peer-review-api/middleware"
	"peer-review-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/register", controllers.Register)
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Peer Review API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)

			// Papers
			papers := protected.Group("/papers")
			{
				// Only authors submit, list and withdraw their own papers
				papers.POST("", middleware.RequireRole(models.UserTypeAuthor), controllers.SubmitPaper)
				papers.GET("/mine", middleware.RequireRole(models.UserTypeAuthor), controllers.GetMyPapers)
				papers.DELETE("/:id", middleware.RequireRole(models.UserTypeAuthor), controllers.WithdrawPaper)

				// Editors recruit reviewers
				papers.GET("/unassigned", middleware.RequireRole(models.UserTypeEditor), controllers.GetUnassignedPapers)
				papers.GET("/:id/reviewers", middleware.RequireRole(models.UserTypeEditor), controllers.GetAvailableReviewers)
				papers.POST("/assign", middleware.RequireRole(models.UserTypeEditor), controllers.AssignReviewer)
				papers.GET("/:id/reviews", middleware.RequireRole(models.UserTypeEditor), controllers.GetPaperReviews)
			}

			// Reviews
			reviews := protected.Group("/reviews")
			reviews.Use(middleware.RequireRole(models.UserTypeReviewer))
			{
				reviews.GET("/assigned", controllers.GetAssignedPapers)
				reviews.GET("/paper/:id", controllers.GetReview)
				reviews.POST("/paper/:id", controllers.SubmitReview)
			}
		}
	}
}
