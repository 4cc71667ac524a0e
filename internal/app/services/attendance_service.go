package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*models.Attendance, error)
	GetAttendance(ctx context.Context, filter dto.AttendanceFilter) ([]*models.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, req dto.UpdateAttendanceRequest) (*models.Attendance, error)
}

type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
	studentRepo    *repositories.StudentRepository
	subjectRepo    *repositories.SubjectRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	studentRepo *repositories.StudentRepository,
	subjectRepo *repositories.SubjectRepository,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
	}
}

// CreateAttendance records one student's monthly attendance for a
// subject. The (student, subject, month, year) combination must not
// already have a record.
func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, req dto.CreateAttendanceRequest) (*models.Attendance, error) {
	if req.AttendedLectures > req.TotalLectures {
		return nil, apperrors.NewValidationError("Attended lectures cannot exceed total lectures")
	}

	student, err := s.studentRepo.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("No student found with that ID")
	}

	subject, err := s.subjectRepo.GetByID(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewNotFoundError("No subject found with that ID")
	}

	exists, err := s.attendanceRepo.Exists(ctx, req.StudentID, req.SubjectID, req.Month, req.Year)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Attendance record already exists for this student, subject, and month")
	}

	attendance := &models.Attendance{
		StudentID:        req.StudentID,
		SubjectID:        req.SubjectID,
		Month:            req.Month,
		Year:             req.Year,
		TotalLectures:    req.TotalLectures,
		AttendedLectures: req.AttendedLectures,
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Attendance record already exists for this student, subject, and month")
		}
		return nil, err
	}

	return attendance, nil
}

// GetAttendance retrieves attendance records matching the optional
// filters.
func (s *attendanceServiceImpl) GetAttendance(ctx context.Context, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	return s.attendanceRepo.GetAll(ctx, filter)
}

// UpdateAttendance merges the provided lecture counts over the
// existing record. The identifying fields never change.
func (s *attendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, req dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	attendance, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if attendance == nil {
		return nil, apperrors.NewNotFoundError("No attendance record found with that ID")
	}

	req.ApplyTo(attendance)
	if attendance.AttendedLectures > attendance.TotalLectures {
		return nil, apperrors.NewValidationError("Attended lectures cannot exceed total lectures")
	}

	updated, err := s.attendanceRepo.Update(ctx, attendance)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("No attendance record found with that ID")
	}

	return attendance, nil
}
