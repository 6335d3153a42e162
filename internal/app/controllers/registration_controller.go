package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/services"
	"github.com/kdanquah/regportal/internal/middleware"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/helpers"
)

// RegistrationController handles course-registration operations
type RegistrationController struct {
	registrationService services.RegistrationService
	attachmentService   services.AttachmentService
	draftService        *services.DraftService
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(
	registrationService services.RegistrationService,
	attachmentService services.AttachmentService,
	draftService *services.DraftService,
) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		attachmentService:   attachmentService,
		draftService:        draftService,
	}
}

func registrationIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration ID").
			WithDetails("Registration ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// ProposeDraft parks a registration submission for review
func (c *RegistrationController) ProposeDraft(ctx *gin.Context) {
	var req dto.RegistrationDraftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	draft := c.draftService.ProposeRegistration(req)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      draft,
		Timestamp: time.Now(),
	})
}

// ConfirmDraft persists a previously proposed registration
func (c *RegistrationController) ConfirmDraft(ctx *gin.Context) {
	draftID := ctx.Param("draftId")

	req, ok := c.draftService.TakeRegistration(draftID)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrDraftNotFound)
		return
	}

	reg, err := c.registrationService.CreateRegistration(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.FromCourseRegistration(reg),
		Timestamp: time.Now(),
	})
}

// DiscardDraft drops a proposed registration without persisting it
func (c *RegistrationController) DiscardDraft(ctx *gin.Context) {
	c.draftService.DiscardRegistration(ctx.Param("draftId"))

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Draft discarded"},
		Timestamp: time.Now(),
	})
}

// GetRegistration retrieves one registration by id
func (c *RegistrationController) GetRegistration(ctx *gin.Context) {
	id, ok := registrationIDParam(ctx)
	if !ok {
		return
	}

	reg, err := c.registrationService.GetRegistration(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromCourseRegistration(reg),
		Timestamp: time.Now(),
	})
}

// ListRegistrations retrieves a filtered, sorted page of registrations
func (c *RegistrationController) ListRegistrations(ctx *gin.Context) {
	filter, page, size := listFilterFromQuery(ctx)

	regs, total, err := c.registrationService.ListRegistrations(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		items = append(items, dto.FromCourseRegistration(reg))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ListResponse{
			Items:      items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListForStudent retrieves all registrations filed under one student record
func (c *RegistrationController) ListForStudent(ctx *gin.Context) {
	regs, err := c.registrationService.ListByStudent(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		items = append(items, dto.FromCourseRegistration(reg))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      items,
		Timestamp: time.Now(),
	})
}

// UpdateRegistration applies a partial update to a registration
func (c *RegistrationController) UpdateRegistration(ctx *gin.Context) {
	id, ok := registrationIDParam(ctx)
	if !ok {
		return
	}

	var req dto.RegistrationUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid update data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.registrationService.UpdateRegistration(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reg, err := c.registrationService.GetRegistration(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.FromCourseRegistration(reg),
		Timestamp: time.Now(),
	})
}

// DeleteRegistration removes a registration and its receipt file
func (c *RegistrationController) DeleteRegistration(ctx *gin.Context) {
	id, ok := registrationIDParam(ctx)
	if !ok {
		return
	}

	if err := c.registrationService.DeleteRegistration(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Course registration deleted"},
		Timestamp: time.Now(),
	})
}

// UploadReceipt attaches a payment receipt to the registration
func (c *RegistrationController) UploadReceipt(ctx *gin.Context) {
	if _, ok := registrationIDParam(ctx); !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file uploaded").
			WithDetails("Send the receipt in a multipart field named 'file'")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.attachmentService.Attach(ctx, models.OwnerRegistration, ctx.Param("id"), models.SlotReceipt, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      gin.H{"slot": models.SlotReceipt, "path": path},
		Timestamp: time.Now(),
	})
}

// DeleteReceipt clears the registration's receipt slot
func (c *RegistrationController) DeleteReceipt(ctx *gin.Context) {
	if _, ok := registrationIDParam(ctx); !ok {
		return
	}

	if err := c.attachmentService.Detach(ctx, models.OwnerRegistration, ctx.Param("id"), models.SlotReceipt); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Receipt removed"},
		Timestamp: time.Now(),
	})
}

// SetReceiptAmount records the payment amount for the registration's receipt
func (c *RegistrationController) SetReceiptAmount(ctx *gin.Context) {
	if _, ok := registrationIDParam(ctx); !ok {
		return
	}

	var req dto.ReceiptAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid receipt amount")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.attachmentService.SetReceiptAmount(ctx, models.OwnerRegistration, ctx.Param("id"), req.Amount); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Receipt amount recorded"},
		Timestamp: time.Now(),
	})
}
