package routes

import (
	"pledge-points-api/controllers"
	"pledge-points-api/middleware"
	"pledge-points-api/models"

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
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Pledge Points API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Roster
			protected.GET("/pledges", controllers.GetPledges)
			protected.GET("/pledges/:name/history", controllers.GetPledgeHistory)

			// Leaderboard
			protected.GET("/leaderboard", controllers.GetLeaderboard)

			// Point submissions
			points := protected.Group("/points")
			{
				// Any brother can view and submit
				points.GET("", controllers.GetPoints)
				points.GET("/:id", controllers.GetPoint)
				points.GET("/pending", controllers.GetPendingPoints)
				points.POST("", middleware.RequireRole(models.RoleBrother, models.RoleEboard, models.RoleAdmin), controllers.SubmitPoints)
				points.POST("/direct", middleware.RequireRole(models.RoleBrother, models.RoleEboard, models.RoleAdmin), controllers.SubmitPointsDirect)

				// Only eboard/admin can decide
				points.POST("/:id/approve", middleware.RequireRole(models.RoleEboard, models.RoleAdmin), controllers.ApprovePoint)
				points.POST("/:id/reject", middleware.RequireRole(models.RoleEboard, models.RoleAdmin), controllers.RejectPoint)
				points.POST("/decide", middleware.RequireRole(models.RoleEboard, models.RoleAdmin), controllers.DecidePoints)
				points.POST("/decide-all", middleware.RequireRole(models.RoleEboard, models.RoleAdmin), controllers.DecideAllPending)

				// Only admin can purge the pending queue
				points.DELETE("/pending", middleware.RequireRole(models.RoleAdmin), controllers.PurgePendingPoints)
			}

			// Admin operations
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/digest", controllers.SendPendingDigest)
			}
		}
	}
}
