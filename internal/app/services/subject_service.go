package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// SubjectService defines the interface for subject operations
type SubjectService interface {
	CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error)
	GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error)
	GetAllSubjects(ctx context.Context) ([]*models.Subject, error)
	GetSubjectsByClass(ctx context.Context, classGroupID int64) ([]*models.Subject, error)
	UpdateSubject(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error)
	DeleteSubject(ctx context.Context, id int64) error
}

type subjectServiceImpl struct {
	subjectRepo *repositories.SubjectRepository
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjectRepo *repositories.SubjectRepository) SubjectService {
	return &subjectServiceImpl{
		subjectRepo: subjectRepo,
	}
}

// CreateSubject creates a subject after checking code uniqueness
func (s *subjectServiceImpl) CreateSubject(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	exists, err := s.subjectRepo.ExistsByCode(ctx, req.Code, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Subject code already in use")
	}

	subject := &models.Subject{
		Name:        req.Name,
		Code:        req.Code,
		IsPractical: req.IsPractical,
	}
	if err := s.subjectRepo.Create(ctx, subject); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Subject code already in use")
		}
		return nil, err
	}

	return subject, nil
}

// GetSubjectByID retrieves one subject
func (s *subjectServiceImpl) GetSubjectByID(ctx context.Context, id int64) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewNotFoundError("No subject found with that ID")
	}

	return subject, nil
}

// GetAllSubjects retrieves all subjects
func (s *subjectServiceImpl) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

// GetSubjectsByClass retrieves the subjects taught to one class group
func (s *subjectServiceImpl) GetSubjectsByClass(ctx context.Context, classGroupID int64) ([]*models.Subject, error) {
	return s.subjectRepo.GetByClassGroup(ctx, classGroupID)
}

// UpdateSubject merges the provided fields over the existing row,
// re-checking code uniqueness against the other rows.
func (s *subjectServiceImpl) UpdateSubject(ctx context.Context, id int64, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperrors.NewNotFoundError("No subject found with that ID")
	}

	if req.Code != nil {
		taken, err := s.subjectRepo.ExistsByCode(ctx, *req.Code, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("Subject code already in use")
		}
	}

	req.ApplyTo(subject)
	if err := s.subjectRepo.Update(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// DeleteSubject deletes a subject unless class groups or teachers are
// still assigned to it.
func (s *subjectServiceImpl) DeleteSubject(ctx context.Context, id int64) error {
	assigned, err := s.subjectRepo.IsAssigned(ctx, id)
	if err != nil {
		return err
	}
	if assigned {
		return apperrors.NewDependencyError("Cannot delete subject assigned to classes or teachers")
	}

	deleted, err := s.subjectRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No subject found with that ID")
	}

	return nil
}
