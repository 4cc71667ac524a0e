package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// BatchController handles batch operations
type BatchController struct {
	batchService services.BatchService
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService services.BatchService) *BatchController {
	return &BatchController{
		batchService: batchService,
	}
}

// GetAllBatches lists all batches with division and year names
// @Summary List batches
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /batches [get]
func (c *BatchController) GetAllBatches(ctx *gin.Context) {
	batches, err := c.batchService.GetAllBatches(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("batches", batches, len(batches)))
}

// GetBatch retrieves one batch
// @Summary Get batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No batch found with that ID"
// @Router /batches/{id} [get]
func (c *BatchController) GetBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	batch, err := c.batchService.GetBatchByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("batch", batch))
}

// GetBatchesByDivision lists the batches of one division
// @Summary List batches by division
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param divisionId path int true "Division ID"
// @Success 200 {object} dto.APIResponse
// @Router /batches/by-division/{divisionId} [get]
func (c *BatchController) GetBatchesByDivision(ctx *gin.Context) {
	divisionID, ok := parseIDParam(ctx, "divisionId")
	if !ok {
		return
	}

	batches, err := c.batchService.GetBatchesByDivision(ctx.Request.Context(), divisionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("batches", batches, len(batches)))
}

// GetBatchStudents lists the students of one batch
// @Summary List students of a batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse
// @Router /batches/{id}/students [get]
func (c *BatchController) GetBatchStudents(ctx *gin.Context) {
	batchID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	students, err := c.batchService.GetBatchStudents(ctx.Request.Context(), batchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("students", students, len(students)))
}

// CreateBatch creates a batch under a division
// @Summary Create batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Batch already exists in this division"
// @Failure 404 {object} dto.APIResponse "No division found with that ID"
// @Router /batches [post]
func (c *BatchController) CreateBatch(ctx *gin.Context) {
	var req dto.CreateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide division ID and batch name"))
		return
	}

	batch, err := c.batchService.CreateBatch(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("batch", batch))
}

// UpdateBatch partially updates a batch
// @Summary Update batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No batch found with that ID"
// @Router /batches/{id} [patch]
func (c *BatchController) UpdateBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	batch, err := c.batchService.UpdateBatch(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("batch", batch))
}

// DeleteBatch deletes a batch without students
// @Summary Delete batch
// @Tags batches
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.APIResponse "Cannot delete batch with existing students"
// @Failure 404 {object} dto.APIResponse "No batch found with that ID"
// @Router /batches/{id} [delete]
func (c *BatchController) DeleteBatch(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.batchService.DeleteBatch(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
