package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/services"
	"github.com/kdanquah/regportal/internal/middleware"
)

// WorkflowController handles the review queue and approval decisions
type WorkflowController struct {
	approvalService services.ApprovalService
}

// NewWorkflowController creates a new WorkflowController
func NewWorkflowController(approvalService services.ApprovalService) *WorkflowController {
	return &WorkflowController{
		approvalService: approvalService,
	}
}

// SetStudentStatus records the review outcome for a student record
func (c *WorkflowController) SetStudentStatus(ctx *gin.Context) {
	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid approval data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.approvalService.SetStudentStatus(ctx, ctx.Param("id"), req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Approval status updated"},
		Timestamp: time.Now(),
	})
}

// SetRegistrationStatus records the review outcome for a registration
func (c *WorkflowController) SetRegistrationStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid registration ID").
			WithDetails("Registration ID must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ApprovalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid approval data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.approvalService.SetRegistrationStatus(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Approval status updated"},
		Timestamp: time.Now(),
	})
}

// GetPendingCounts reports how many records are awaiting review
func (c *WorkflowController) GetPendingCounts(ctx *gin.Context) {
	counts, err := c.approvalService.PendingCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}
