package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/app/services"
	"github.com/kdanquah/regportal/internal/middleware"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/helpers"
)

// StudentController handles student-record operations
type StudentController struct {
	studentService    services.StudentService
	attachmentService services.AttachmentService
	draftService      *services.DraftService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	attachmentService services.AttachmentService,
	draftService *services.DraftService,
) *StudentController {
	return &StudentController{
		studentService:    studentService,
		attachmentService: attachmentService,
		draftService:      draftService,
	}
}

// listFilterFromQuery builds a ListFilter from the common list query params.
func listFilterFromQuery(ctx *gin.Context) (filter repositories.ListFilter, page, size int) {
	page, size = helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	filter = repositories.ListFilter{
		Status:   ctx.Query("status"),
		Search:   ctx.Query("search"),
		SortKey:  ctx.Query("sortBy"),
		SortDesc: ctx.Query("order") == "desc",
		Offset:   offset,
		Limit:    limit,
	}
	return filter, page, size
}

// ProposeDraft parks a student submission for review before anything is
// persisted
func (c *StudentController) ProposeDraft(ctx *gin.Context) {
	var req dto.StudentDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// Surface malformed dates now, not at confirmation time.
	if _, err := req.ToStudentRecord(); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date of birth").
			WithField("dateOfBirth").
			WithDetails("Date must be in YYYY-MM-DD format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	draft := c.draftService.ProposeStudent(req)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      draft,
		Timestamp: time.Now(),
	})
}

// ConfirmDraft persists a previously proposed submission
func (c *StudentController) ConfirmDraft(ctx *gin.Context) {
	draftID := ctx.Param("draftId")

	req, ok := c.draftService.TakeStudent(draftID)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrDraftNotFound)
		return
	}

	rec, err := req.ToStudentRecord()
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid date of birth"))
		return
	}

	if err := c.studentService.CreateStudent(ctx, rec); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromStudentRecord(rec),
		Timestamp: time.Now(),
	})
}

// DiscardDraft drops a proposed submission, the review screen's "go back"
func (c *StudentController) DiscardDraft(ctx *gin.Context) {
	c.draftService.DiscardStudent(ctx.Param("draftId"))

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Draft discarded"},
		Timestamp: time.Now(),
	})
}

// GetStudent retrieves one student record by id
func (c *StudentController) GetStudent(ctx *gin.Context) {
	rec, err := c.studentService.GetStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudentRecord(rec),
		Timestamp: time.Now(),
	})
}

// ListStudents retrieves a filtered, sorted page of student records
func (c *StudentController) ListStudents(ctx *gin.Context) {
	filter, page, size := listFilterFromQuery(ctx)

	recs, total, err := c.studentService.ListStudents(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.StudentResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, dto.FromStudentRecord(rec))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ListResponse{
			Items:      items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateStudent applies a partial update to a student record
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id := ctx.Param("id")
	if err := c.studentService.UpdateStudent(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	rec, err := c.studentService.GetStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromStudentRecord(rec),
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student record and its attachment files
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Student record deleted"},
		Timestamp: time.Now(),
	})
}

// UploadDocument attaches an uploaded file to one of the student's document
// slots, replacing any previous file in that slot
func (c *StudentController) UploadDocument(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded").
			WithDetails("Send the document in a multipart field named 'file'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	slot := models.AttachmentSlot(ctx.Param("slot"))
	path, err := c.attachmentService.Attach(ctx, models.OwnerStudent, ctx.Param("id"), slot, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"slot": slot, "path": path},
		Timestamp: time.Now(),
	})
}

// DeleteDocument clears one of the student's document slots
func (c *StudentController) DeleteDocument(ctx *gin.Context) {
	slot := models.AttachmentSlot(ctx.Param("slot"))
	if err := c.attachmentService.Detach(ctx, models.OwnerStudent, ctx.Param("id"), slot); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Document removed"},
		Timestamp: time.Now(),
	})
}

// SetReceiptAmount records the payment amount for the student's receipt
func (c *StudentController) SetReceiptAmount(ctx *gin.Context) {
	var req dto.ReceiptAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid receipt amount")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.attachmentService.SetReceiptAmount(ctx, models.OwnerStudent, ctx.Param("id"), req.Amount); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Receipt amount recorded"},
		Timestamp: time.Now(),
	})
}
