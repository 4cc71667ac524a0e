package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// DivisionController handles division operations
type DivisionController struct {
	divisionService services.DivisionService
}

// NewDivisionController creates a new DivisionController
func NewDivisionController(divisionService services.DivisionService) *DivisionController {
	return &DivisionController{
		divisionService: divisionService,
	}
}

// GetAllDivisions lists all divisions with their year names
// @Summary List divisions
// @Tags divisions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /divisions [get]
func (c *DivisionController) GetAllDivisions(ctx *gin.Context) {
	divisions, err := c.divisionService.GetAllDivisions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("divisions", divisions, len(divisions)))
}

// GetDivision retrieves one division
// @Summary Get division
// @Tags divisions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Division ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No division found with that ID"
// @Router /divisions/{id} [get]
func (c *DivisionController) GetDivision(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	division, err := c.divisionService.GetDivisionByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("division", division))
}

// GetDivisionsByYear lists the divisions of one academic year
// @Summary List divisions by academic year
// @Tags divisions
// @Produce json
// @Security BearerAuth
// @Param yearId path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse
// @Router /divisions/by-year/{yearId} [get]
func (c *DivisionController) GetDivisionsByYear(ctx *gin.Context) {
	yearID, ok := parseIDParam(ctx, "yearId")
	if !ok {
		return
	}

	divisions, err := c.divisionService.GetDivisionsByYear(ctx.Request.Context(), yearID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("divisions", divisions, len(divisions)))
}

// CreateDivision creates a division under an academic year
// @Summary Create division
// @Tags divisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDivisionRequest true "Division"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Division already exists in this academic year"
// @Failure 404 {object} dto.APIResponse "No academic year found with that ID"
// @Router /divisions [post]
func (c *DivisionController) CreateDivision(ctx *gin.Context) {
	var req dto.CreateDivisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide academic year ID and division name"))
		return
	}

	division, err := c.divisionService.CreateDivision(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("division", division))
}

// UpdateDivision partially updates a division
// @Summary Update division
// @Tags divisions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Division ID"
// @Param request body dto.UpdateDivisionRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No division found with that ID"
// @Router /divisions/{id} [patch]
func (c *DivisionController) UpdateDivision(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDivisionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	division, err := c.divisionService.UpdateDivision(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("division", division))
}

// DeleteDivision deletes a division without batches
// @Summary Delete division
// @Tags divisions
// @Security BearerAuth
// @Param id path int true "Division ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.APIResponse "Cannot delete division with existing batches"
// @Failure 404 {object} dto.APIResponse "No division found with that ID"
// @Router /divisions/{id} [delete]
func (c *DivisionController) DeleteDivision(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.divisionService.DeleteDivision(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
