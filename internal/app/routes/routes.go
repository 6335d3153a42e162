package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/controllers"
	"github.com/kdanquah/regportal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	studentController *controllers.StudentController,
	registrationController *controllers.RegistrationController,
	workflowController *controllers.WorkflowController,
	exportController *controllers.ExportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalogue routes ---
	catalog := v1.Group("/catalog")
	{
		catalog.GET("/programmes", catalogController.GetProgrammes)
		catalog.GET("/programmes/:programme/levels", catalogController.GetLevels)
		catalog.GET("/programmes/:programme/levels/:level/courses", catalogController.GetCourses)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Public submission routes (two-phase) ---
	students := v1.Group("/students")
	{
		students.POST("/drafts", studentController.ProposeDraft)
		students.POST("/drafts/:draftId/confirm", studentController.ConfirmDraft)
		students.DELETE("/drafts/:draftId", studentController.DiscardDraft)
		// Applicants upload their own documents right after confirmation.
		students.POST("/:id/documents/:slot", studentController.UploadDocument)
	}

	registrations := v1.Group("/registrations")
	{
		registrations.POST("/drafts", registrationController.ProposeDraft)
		registrations.POST("/drafts/:draftId/confirm", registrationController.ConfirmDraft)
		registrations.DELETE("/drafts/:draftId", registrationController.DiscardDraft)
		registrations.POST("/:id/receipt", registrationController.UploadReceipt)
	}

	// --- Admin routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth())
	{
		adminStudents := admin.Group("/students")
		{
			adminStudents.GET("", studentController.ListStudents)
			adminStudents.GET("/:id", studentController.GetStudent)
			adminStudents.GET("/:id/registrations", registrationController.ListForStudent)
			adminStudents.PUT("/:id", studentController.UpdateStudent)
			adminStudents.DELETE("/:id", studentController.DeleteStudent)
			adminStudents.DELETE("/:id/documents/:slot", studentController.DeleteDocument)
			adminStudents.PUT("/:id/receipt-amount", studentController.SetReceiptAmount)
			adminStudents.PUT("/:id/approval", workflowController.SetStudentStatus)
		}

		adminRegistrations := admin.Group("/registrations")
		{
			adminRegistrations.GET("", registrationController.ListRegistrations)
			adminRegistrations.GET("/:id", registrationController.GetRegistration)
			adminRegistrations.PUT("/:id", registrationController.UpdateRegistration)
			adminRegistrations.DELETE("/:id", registrationController.DeleteRegistration)
			adminRegistrations.DELETE("/:id/receipt", registrationController.DeleteReceipt)
			adminRegistrations.PUT("/:id/receipt-amount", registrationController.SetReceiptAmount)
			adminRegistrations.PUT("/:id/approval", workflowController.SetRegistrationStatus)
		}

		admin.GET("/workflow/pending-counts", workflowController.GetPendingCounts)

		exports := admin.Group("/exports")
		{
			exports.GET("/students.csv", exportController.DownloadStudentsCSV)
			exports.GET("/registrations.csv", exportController.DownloadRegistrationsCSV)
			exports.GET("/database.xlsx", exportController.DownloadWorkbook)
			exports.GET("/database.zip", exportController.DownloadDatabaseBundle)
			exports.GET("/attachments.zip", exportController.DownloadAttachmentsBundle)
			exports.GET("/students/:id/form.pdf", exportController.DownloadStudentForm)
			exports.GET("/registrations/:id/form.pdf", exportController.DownloadRegistrationForm)
		}
	}
}
