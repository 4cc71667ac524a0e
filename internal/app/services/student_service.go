package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/db"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, batchID *int64) ([]*models.Student, error)
	GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	AssignBatch(ctx context.Context, req dto.AssignBatchRequest) ([]*models.Student, error)
}

type studentServiceImpl struct {
	db             *db.PostgresDB
	studentRepo    *repositories.StudentRepository
	batchRepo      *repositories.BatchRepository
	attendanceRepo *repositories.AttendanceRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	database *db.PostgresDB,
	studentRepo *repositories.StudentRepository,
	batchRepo *repositories.BatchRepository,
	attendanceRepo *repositories.AttendanceRepository,
) StudentService {
	return &studentServiceImpl{
		db:             database,
		studentRepo:    studentRepo,
		batchRepo:      batchRepo,
		attendanceRepo: attendanceRepo,
	}
}

// CreateStudent creates a student after checking PRN uniqueness and,
// when a batch is given, that the batch exists.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	prnTaken, err := s.studentRepo.ExistsByPRN(ctx, req.PRN, 0)
	if err != nil {
		return nil, err
	}
	if prnTaken {
		return nil, apperrors.NewConflictError("PRN already in use")
	}

	if req.BatchID != nil {
		batch, err := s.batchRepo.GetByID(ctx, *req.BatchID)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, apperrors.NewNotFoundError("No batch found with that ID")
		}
	}

	student := &models.Student{
		PRN:        req.PRN,
		Name:       req.Name,
		Email:      req.Email,
		RollNumber: req.RollNumber,
		BatchID:    req.BatchID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("PRN already in use")
		}
		return nil, err
	}

	// Refetch for the joined batch enrichment
	return s.studentRepo.GetByID(ctx, student.ID)
}

// GetStudentByID retrieves one student with batch enrichment
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("No student found with that ID")
	}

	return student, nil
}

// GetAllStudents retrieves students, optionally filtered by batch
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, batchID *int64) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx, batchID)
}

// GetStudentAttendance retrieves one student's attendance records with
// subject names and codes.
func (s *studentServiceImpl) GetStudentAttendance(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	return s.attendanceRepo.GetByStudent(ctx, studentID)
}

// UpdateStudent merges the provided fields over the existing row,
// re-checking PRN uniqueness and batch existence for changed fields.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperrors.NewNotFoundError("No student found with that ID")
	}

	if req.PRN != nil {
		prnTaken, err := s.studentRepo.ExistsByPRN(ctx, *req.PRN, id)
		if err != nil {
			return nil, err
		}
		if prnTaken {
			return nil, apperrors.NewConflictError("PRN already in use")
		}
	}

	if req.BatchID != nil {
		batch, err := s.batchRepo.GetByID(ctx, *req.BatchID)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, apperrors.NewNotFoundError("No batch found with that ID")
		}
	}

	req.ApplyTo(student)
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.studentRepo.GetByID(ctx, id)
}

// DeleteStudent deletes a student unless attendance records still
// reference them.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	hasAttendance, err := s.attendanceRepo.ExistsForStudent(ctx, id)
	if err != nil {
		return err
	}
	if hasAttendance {
		return apperrors.NewDependencyError("Cannot delete student with attendance records")
	}

	deleted, err := s.studentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No student found with that ID")
	}

	return nil
}

// AssignBatch moves a set of students into a batch. Every existence
// check runs first; the writes then share one transaction so a failure
// reassigns nobody.
func (s *studentServiceImpl) AssignBatch(ctx context.Context, req dto.AssignBatchRequest) ([]*models.Student, error) {
	batch, err := s.batchRepo.GetByID(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperrors.NewNotFoundError("No batch found with that ID")
	}

	existing, err := s.studentRepo.ExistingIDs(ctx, req.StudentIDs)
	if err != nil {
		return nil, err
	}
	for _, studentID := range req.StudentIDs {
		if !existing[studentID] {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No student found with ID %d", studentID))
		}
	}

	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return s.studentRepo.AssignBatchTx(ctx, tx, req.BatchID, req.StudentIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetByIDs(ctx, req.StudentIDs)
}
