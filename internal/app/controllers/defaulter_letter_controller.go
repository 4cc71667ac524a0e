package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// DefaulterLetterController handles defaulter letter operations
type DefaulterLetterController struct {
	defaulterService services.DefaulterService
}

// NewDefaulterLetterController creates a new DefaulterLetterController
func NewDefaulterLetterController(defaulterService services.DefaulterService) *DefaulterLetterController {
	return &DefaulterLetterController{
		defaulterService: defaulterService,
	}
}

// GenerateDefaulterLetters renders PDF notices for every student below
// the attendance threshold in the requested month
// @Summary Generate defaulter letters
// @Tags defaulter-letters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateLettersRequest true "Period and optional threshold"
// @Success 200 {object} dto.APIResponse "Generated letters, or a message when no defaulters match"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /defaulter-letters [post]
func (c *DefaulterLetterController) GenerateDefaulterLetters(ctx *gin.Context) {
	var req dto.GenerateLettersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide month and year"))
		return
	}

	user := middleware.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewFailResponse("You are not logged in! Please log in to get access."))
		return
	}

	letters, err := c.defaulterService.GenerateLetters(ctx.Request.Context(), user.ID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if len(letters) == 0 {
		ctx.JSON(http.StatusOK, dto.NewMessageResponse("No defaulters found for the given criteria"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("letters", letters, len(letters)))
}

// GetDefaulterLetters lists generated letters matching the filters
// @Summary List defaulter letters
// @Tags defaulter-letters
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Student filter"
// @Param subjectId query int false "Subject filter"
// @Param month query int false "Month filter"
// @Param year query int false "Year filter"
// @Success 200 {object} dto.APIResponse
// @Router /defaulter-letters [get]
func (c *DefaulterLetterController) GetDefaulterLetters(ctx *gin.Context) {
	var (
		filter dto.DefaulterLetterFilter
		ok     bool
	)
	if filter.StudentID, ok = queryInt64(ctx, "studentId"); !ok {
		return
	}
	if filter.SubjectID, ok = queryInt64(ctx, "subjectId"); !ok {
		return
	}
	if filter.Month, ok = queryInt(ctx, "month"); !ok {
		return
	}
	if filter.Year, ok = queryInt(ctx, "year"); !ok {
		return
	}

	letters, err := c.defaulterService.GetLetters(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("letters", letters, len(letters)))
}
