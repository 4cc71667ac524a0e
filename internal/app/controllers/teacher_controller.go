package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// TeacherController handles teacher operations
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// GetAllTeachers lists all teachers with their account details
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /teachers [get]
func (c *TeacherController) GetAllTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetAllTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("teachers", teachers, len(teachers)))
}

// GetTeacher retrieves one teacher
// @Summary Get teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No teacher found with that ID"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	teacher, err := c.teacherService.GetTeacherByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher", teacher))
}

// GetTeacherSubjects lists a teacher's assigned subjects
// @Summary List a teacher's subjects
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 200 {object} dto.APIResponse
// @Router /teachers/{id}/subjects [get]
func (c *TeacherController) GetTeacherSubjects(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subjects, err := c.teacherService.GetTeacherSubjects(ctx.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("subjects", subjects, len(subjects)))
}

// CreateTeacher creates a teacher record for a teacher-role user
// @Summary Create teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "User must have teacher role"
// @Failure 404 {object} dto.APIResponse "No user found with that ID"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide user ID and designation"))
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("teacher", teacher))
}

// UpdateTeacher partially updates a teacher
// @Summary Update teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.UpdateTeacherRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No teacher found with that ID"
// @Router /teachers/{id} [patch]
func (c *TeacherController) UpdateTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	teacher, err := c.teacherService.UpdateTeacher(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("teacher", teacher))
}

// DeleteTeacher deletes a teacher without assignments
// @Summary Delete teacher
// @Tags teachers
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.APIResponse "Cannot delete teacher with assigned subjects"
// @Failure 404 {object} dto.APIResponse "No teacher found with that ID"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignSubjects assigns subjects to a teacher for one batch
// @Summary Assign subjects to a teacher
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Teacher ID"
// @Param request body dto.AssignSubjectsRequest true "Batch and subjects"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Subject already assigned to this teacher for the batch"
// @Failure 404 {object} dto.APIResponse "No teacher, batch, or subject found"
// @Router /teachers/{id}/assign-subjects [post]
func (c *TeacherController) AssignSubjects(ctx *gin.Context) {
	teacherID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignSubjectsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide batch ID and subject IDs"))
		return
	}

	assignments, err := c.teacherService.AssignSubjects(ctx.Request.Context(), teacherID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("assignments", assignments))
}
