package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/baris/okulport/internal/app/controllers"
	"github.com/baris/okulport/internal/app/models/dto"
	"github.com/baris/okulport/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// The view endpoint trusts that the caller already passed the login
	// check; the gate inside is the request status, not device identity.
	students := v1.Group("/students")
	{
		students.GET("/:id/view", studentController.GetStudentView)
	}

	// --- Admin routes, guarded by the admin API key ---
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.AdminKeyRequired())
	{
		requests := admin.Group("/requests")
		{
			requests.GET("", adminController.ListRequests)
			requests.POST("/:id/approve", adminController.ApproveRequest)
			requests.POST("/:id/reject", adminController.RejectRequest)
			requests.DELETE("/:id", adminController.ResetRequest)
		}

		adminStudents := admin.Group("/students")
		{
			adminStudents.GET("", adminController.ListStudents)
			adminStudents.POST("/import", adminController.ImportRoster)
			adminStudents.POST("/:id/grades", adminController.AddGrade)
			adminStudents.POST("/:id/absences", adminController.AddAbsence)
			adminStudents.POST("/:id/notifications", adminController.AddNotification)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
