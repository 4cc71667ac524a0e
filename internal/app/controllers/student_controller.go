package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// StudentController handles student operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetAllStudents lists students, optionally filtered by batch
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param batch_id query int false "Batch filter"
// @Success 200 {object} dto.APIResponse
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	batchID, ok := queryInt64(ctx, "batch_id")
	if !ok {
		return
	}

	students, err := c.studentService.GetAllStudents(ctx.Request.Context(), batchID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("students", students, len(students)))
}

// GetStudent retrieves one student
// @Summary Get student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No student found with that ID"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student", student))
}

// GetStudentAttendance lists one student's attendance records
// @Summary Get a student's attendance
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /students/{id}/attendance [get]
func (c *StudentController) GetStudentAttendance(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	attendance, err := c.studentService.GetStudentAttendance(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("attendance", attendance, len(attendance)))
}

// CreateStudent creates a student
// @Summary Create student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "PRN already in use"
// @Failure 404 {object} dto.APIResponse "No batch found with that ID"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("student", student))
}

// UpdateStudent partially updates a student
// @Summary Update student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No student found with that ID"
// @Router /students/{id} [patch]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("student", student))
}

// DeleteStudent deletes a student without attendance records
// @Summary Delete student
// @Tags students
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.APIResponse "Cannot delete student with attendance records"
// @Failure 404 {object} dto.APIResponse "No student found with that ID"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignBatch moves a set of students into a batch atomically
// @Summary Assign students to a batch
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignBatchRequest true "Batch and students"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No batch or student found"
// @Router /students/assign-batch [post]
func (c *StudentController) AssignBatch(ctx *gin.Context) {
	var req dto.AssignBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Please provide batch ID and student IDs"))
		return
	}

	students, err := c.studentService.AssignBatch(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("students", students, len(students)))
}
