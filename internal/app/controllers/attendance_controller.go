package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/services"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// AttendanceController handles attendance operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// GetAttendance lists attendance records matching the query filters
// @Summary List attendance records
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Student filter"
// @Param subjectId query int false "Subject filter"
// @Param month query int false "Month filter"
// @Param year query int false "Year filter"
// @Success 200 {object} dto.APIResponse
// @Router /attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	var (
		filter dto.AttendanceFilter
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

	records, err := c.attendanceService.GetAttendance(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse("attendance", records, len(records)))
}

// CreateAttendance records one student's monthly attendance
// @Summary Create attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance record"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse "Attendance record already exists for this student, subject, and month"
// @Failure 404 {object} dto.APIResponse "No student or subject found"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	attendance, err := c.attendanceService.CreateAttendance(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("attendance", attendance))
}

// UpdateAttendance partially updates an attendance record's counts
// @Summary Update attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID"
// @Param request body dto.UpdateAttendanceRequest true "Lecture counts"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "No attendance record found with that ID"
// @Router /attendance/{id} [patch]
func (c *AttendanceController) UpdateAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewFailResponse("Invalid request data"))
		return
	}

	attendance, err := c.attendanceService.UpdateAttendance(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("attendance", attendance))
}
