package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// AcademicYearService defines the interface for academic year
// operations
type AcademicYearService interface {
	CreateAcademicYear(ctx context.Context, req dto.CreateAcademicYearRequest) (*models.AcademicYear, error)
	GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error)
	GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error)
	UpdateAcademicYear(ctx context.Context, id int64, req dto.UpdateAcademicYearRequest) (*models.AcademicYear, error)
	DeleteAcademicYear(ctx context.Context, id int64) error
}

type academicYearServiceImpl struct {
	yearRepo     *repositories.AcademicYearRepository
	divisionRepo *repositories.DivisionRepository
}

// NewAcademicYearService creates a new academic year service instance
func NewAcademicYearService(yearRepo *repositories.AcademicYearRepository, divisionRepo *repositories.DivisionRepository) AcademicYearService {
	return &academicYearServiceImpl{
		yearRepo:     yearRepo,
		divisionRepo: divisionRepo,
	}
}

// CreateAcademicYear creates a year after checking name uniqueness
func (s *academicYearServiceImpl) CreateAcademicYear(ctx context.Context, req dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	exists, err := s.yearRepo.ExistsByName(ctx, req.YearName, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Academic year already exists")
	}

	year := &models.AcademicYear{YearName: req.YearName}
	if err := s.yearRepo.Create(ctx, year); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Academic year already exists")
		}
		return nil, err
	}

	return year, nil
}

// GetAcademicYearByID retrieves one academic year
func (s *academicYearServiceImpl) GetAcademicYearByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, apperrors.NewNotFoundError("No academic year found with that ID")
	}

	return year, nil
}

// GetAllAcademicYears retrieves all academic years
func (s *academicYearServiceImpl) GetAllAcademicYears(ctx context.Context) ([]*models.AcademicYear, error) {
	return s.yearRepo.GetAll(ctx)
}

// UpdateAcademicYear merges the provided fields over the existing row,
// re-checking name uniqueness against the other rows.
func (s *academicYearServiceImpl) UpdateAcademicYear(ctx context.Context, id int64, req dto.UpdateAcademicYearRequest) (*models.AcademicYear, error) {
	year, err := s.yearRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, apperrors.NewNotFoundError("No academic year found with that ID")
	}

	if req.YearName != nil {
		taken, err := s.yearRepo.ExistsByName(ctx, *req.YearName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("Academic year with this name already exists")
		}
	}

	req.ApplyTo(year)
	if err := s.yearRepo.Update(ctx, year); err != nil {
		return nil, err
	}

	return year, nil
}

// DeleteAcademicYear deletes a year unless divisions still reference it
func (s *academicYearServiceImpl) DeleteAcademicYear(ctx context.Context, id int64) error {
	hasDivisions, err := s.divisionRepo.ExistsForYear(ctx, id)
	if err != nil {
		return err
	}
	if hasDivisions {
		return apperrors.NewDependencyError("Cannot delete academic year with existing divisions")
	}

	deleted, err := s.yearRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No academic year found with that ID")
	}

	return nil
}
