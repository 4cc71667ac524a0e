package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// AcademicYearController handles academic year operations
type AcademicYearController struct {
	yearService services.AcademicYearService
}

// NewAcademicYearController creates a new AcademicYearController
func NewAcademicYearController(yearService services.AcademicYearService) *AcademicYearController {
	return &AcademicYearController{
		yearService: yearService,
	}
}

// GetAllAcademicYears lists all academic years
// @Summary List academic years
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /academic-years [get]
func (c *AcademicYearController) GetAllAcademicYears(ctx *gin.Context) {
	years, err := c.yearService.GetAllAcademicYears(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("years", years, len(years)))
}

// GetAcademicYear retrieves one academic year
// @Summary Get academic year
// @Tags academic-years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No academic year found with that ID"
// @Router /academic-years/{id} [get]
func (c *AcademicYearController) GetAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	year, err := c.yearService.GetAcademicYearByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("year", year))
}

// CreateAcademicYear creates an academic year
// @Summary Create academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAcademicYearRequest true "Academic year"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Academic year already exists"
// @Router /academic-years [post]
func (c *AcademicYearController) CreateAcademicYear(ctx *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide a valid year name (e.g., FY, SY, TY)"))
		return
	}

	year, err := c.yearService.CreateAcademicYear(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("year", year))
}

// UpdateAcademicYear partially updates an academic year
// @Summary Update academic year
// @Tags academic-years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Param request body dto.UpdateAcademicYearRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No academic year found with that ID"
// @Router /academic-years/{id} [patch]
func (c *AcademicYearController) UpdateAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAcademicYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	year, err := c.yearService.UpdateAcademicYear(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("year", year))
}

// DeleteAcademicYear deletes an academic year without divisions
// @Summary Delete academic year
// @Tags academic-years
// @Security BearerAuth
// @Param id path int true "Academic year ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.APIResponse "Cannot delete academic year with existing divisions"
// @Failure 404 {object} dto.APIResponse "No academic year found with that ID"
// @Router /academic-years/{id} [delete]
func (c *AcademicYearController) DeleteAcademicYear(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.yearService.DeleteAcademicYear(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
