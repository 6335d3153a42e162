package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/services"
	"github.com/kdanquah/regportal/internal/middleware"
)

// ExportController serves the reporting and backup downloads
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

func sendAttachment(ctx *gin.Context, data []byte, contentType, baseName, ext string) {
	filename := fmt.Sprintf("%s_%s.%s", baseName, time.Now().Format("2006-01-02"), ext)
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, contentType, data)
}

// DownloadStudentsCSV streams the student table as CSV
func (c *ExportController) DownloadStudentsCSV(ctx *gin.Context) {
	data, err := c.exportService.StudentsCSV(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data, "text/csv", "student_records", "csv")
}

// DownloadRegistrationsCSV streams the registration table as CSV
func (c *ExportController) DownloadRegistrationsCSV(ctx *gin.Context) {
	data, err := c.exportService.RegistrationsCSV(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data, "text/csv", "course_registrations", "csv")
}

// DownloadWorkbook streams both tables as one xlsx workbook
func (c *ExportController) DownloadWorkbook(ctx *gin.Context) {
	data, err := c.exportService.Workbook(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"registration_database", "xlsx")
}

// DownloadDatabaseBundle streams a zip of both tables as CSV files
func (c *ExportController) DownloadDatabaseBundle(ctx *gin.Context) {
	data, err := c.exportService.DatabaseBundle(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data, "application/zip", "database_backup", "zip")
}

// DownloadAttachmentsBundle streams a zip of every stored document file
func (c *ExportController) DownloadAttachmentsBundle(ctx *gin.Context) {
	data, err := c.exportService.AttachmentsBundle(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data, "application/zip", "attachments", "zip")
}

// DownloadStudentForm streams the intake form PDF for one student
func (c *ExportController) DownloadStudentForm(ctx *gin.Context) {
	id := ctx.Param("id")
	data, err := c.exportService.StudentForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	// Student ids carry slashes (PS/ACC/2024/001); keep filenames flat.
	safe := strings.ReplaceAll(id, "/", "-")
	sendAttachment(ctx, data, "application/pdf", "student_form_"+safe, "pdf")
}

// DownloadRegistrationForm streams the registration form PDF
func (c *ExportController) DownloadRegistrationForm(ctx *gin.Context) {
	id, ok := registrationIDParam(ctx)
	if !ok {
		return
	}

	data, err := c.exportService.RegistrationForm(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	sendAttachment(ctx, data, "application/pdf", fmt.Sprintf("registration_form_%d", id), "pdf")
}
