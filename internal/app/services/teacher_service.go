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

// TeacherService defines the interface for teacher operations
type TeacherService interface {
	CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetAllTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacherSubjects(ctx context.Context, teacherID int64) ([]*models.Subject, error)
	UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
	AssignSubjects(ctx context.Context, teacherID int64, req dto.AssignSubjectsRequest) ([]int64, error)
}

type teacherServiceImpl struct {
	db          *db.PostgresDB
	teacherRepo *repositories.TeacherRepository
	userRepo    *repositories.UserRepository
	batchRepo   *repositories.BatchRepository
	subjectRepo *repositories.SubjectRepository
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(
	database *db.PostgresDB,
	teacherRepo *repositories.TeacherRepository,
	userRepo *repositories.UserRepository,
	batchRepo *repositories.BatchRepository,
	subjectRepo *repositories.SubjectRepository,
) TeacherService {
	return &teacherServiceImpl{
		db:          database,
		teacherRepo: teacherRepo,
		userRepo:    userRepo,
		batchRepo:   batchRepo,
		subjectRepo: subjectRepo,
	}
}

// CreateTeacher creates a teacher record for an existing user account
// that carries the teacher role.
func (s *teacherServiceImpl) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFoundError("No user found with that ID")
	}
	if user.Role != models.RoleTeacher {
		return nil, apperrors.NewBadRequestError("User must have teacher role")
	}

	exists, err := s.teacherRepo.ExistsByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Teacher already exists for this user")
	}

	teacher := &models.Teacher{
		UserID:      req.UserID,
		Designation: req.Designation,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Teacher already exists for this user")
		}
		return nil, err
	}

	// Refetch for the joined account details
	return s.teacherRepo.GetByID(ctx, teacher.ID)
}

// GetTeacherByID retrieves one teacher with their account details
func (s *teacherServiceImpl) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("No teacher found with that ID")
	}

	return teacher, nil
}

// GetAllTeachers retrieves all teachers
func (s *teacherServiceImpl) GetAllTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// GetTeacherSubjects retrieves a teacher's assigned subjects with the
// batch each assignment belongs to.
func (s *teacherServiceImpl) GetTeacherSubjects(ctx context.Context, teacherID int64) ([]*models.Subject, error) {
	return s.teacherRepo.GetSubjects(ctx, teacherID)
}

// UpdateTeacher merges the provided fields over the existing row
func (s *teacherServiceImpl) UpdateTeacher(ctx context.Context, id int64, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("No teacher found with that ID")
	}

	req.ApplyTo(teacher)
	updated, err := s.teacherRepo.Update(ctx, id, teacher.Designation)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperrors.NewNotFoundError("No teacher found with that ID")
	}

	return s.teacherRepo.GetByID(ctx, id)
}

// DeleteTeacher deletes a teacher unless teaching assignments still
// reference them.
func (s *teacherServiceImpl) DeleteTeacher(ctx context.Context, id int64) error {
	hasAssignments, err := s.teacherRepo.HasAssignments(ctx, id)
	if err != nil {
		return err
	}
	if hasAssignments {
		return apperrors.NewDependencyError("Cannot delete teacher with assigned subjects")
	}

	deleted, err := s.teacherRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No teacher found with that ID")
	}

	return nil
}

// AssignSubjects assigns subjects to a teacher for one batch. Every
// existence and duplicate check runs first; the inserts then share one
// transaction so a failure assigns nothing. Returns the IDs of the
// created assignments.
func (s *teacherServiceImpl) AssignSubjects(ctx context.Context, teacherID int64, req dto.AssignSubjectsRequest) ([]int64, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apperrors.NewNotFoundError("No teacher found with that ID")
	}

	batch, err := s.batchRepo.GetByID(ctx, req.BatchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperrors.NewNotFoundError("No batch found with that ID")
	}

	existing, err := s.subjectRepo.ExistingIDs(ctx, req.SubjectIDs)
	if err != nil {
		return nil, err
	}
	assigned, err := s.teacherRepo.AssignedSubjectIDs(ctx, teacherID, req.BatchID)
	if err != nil {
		return nil, err
	}
	for _, subjectID := range req.SubjectIDs {
		if !existing[subjectID] {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("No subject found with ID %d", subjectID))
		}
		if assigned[subjectID] {
			return nil, apperrors.NewConflictError(fmt.Sprintf("Subject %d already assigned to this teacher for the batch", subjectID))
		}
	}

	assignmentIDs := make([]int64, 0, len(req.SubjectIDs))
	err = s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		for _, subjectID := range req.SubjectIDs {
			id, err := s.teacherRepo.CreateAssignmentTx(ctx, tx, teacherID, req.BatchID, subjectID)
			if err != nil {
				return err
			}
			assignmentIDs = append(assignmentIDs, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assignmentIDs, nil
}
