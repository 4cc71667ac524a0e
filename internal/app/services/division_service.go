package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// DivisionService defines the interface for division operations
type DivisionService interface {
	CreateDivision(ctx context.Context, req dto.CreateDivisionRequest) (*models.Division, error)
	GetDivisionByID(ctx context.Context, id int64) (*models.Division, error)
	GetAllDivisions(ctx context.Context) ([]*models.Division, error)
	GetDivisionsByYear(ctx context.Context, yearID int64) ([]*models.Division, error)
	UpdateDivision(ctx context.Context, id int64, req dto.UpdateDivisionRequest) (*models.Division, error)
	DeleteDivision(ctx context.Context, id int64) error
}

type divisionServiceImpl struct {
	divisionRepo *repositories.DivisionRepository
	yearRepo     *repositories.AcademicYearRepository
	batchRepo    *repositories.BatchRepository
}

// NewDivisionService creates a new division service instance
func NewDivisionService(
	divisionRepo *repositories.DivisionRepository,
	yearRepo *repositories.AcademicYearRepository,
	batchRepo *repositories.BatchRepository,
) DivisionService {
	return &divisionServiceImpl{
		divisionRepo: divisionRepo,
		yearRepo:     yearRepo,
		batchRepo:    batchRepo,
	}
}

// CreateDivision creates a division after checking the parent year and
// per-year name uniqueness.
func (s *divisionServiceImpl) CreateDivision(ctx context.Context, req dto.CreateDivisionRequest) (*models.Division, error) {
	year, err := s.yearRepo.GetByID(ctx, req.AcademicYearID)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return nil, apperrors.NewNotFoundError("No academic year found with that ID")
	}

	exists, err := s.divisionRepo.ExistsByName(ctx, req.AcademicYearID, req.DivisionName, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Division already exists in this academic year")
	}

	division := &models.Division{
		AcademicYearID: req.AcademicYearID,
		DivisionName:   req.DivisionName,
	}
	if err := s.divisionRepo.Create(ctx, division); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Division already exists in this academic year")
		}
		return nil, err
	}

	// Refetch for the joined year name
	return s.divisionRepo.GetByID(ctx, division.ID)
}

// GetDivisionByID retrieves one division with its year name
func (s *divisionServiceImpl) GetDivisionByID(ctx context.Context, id int64) (*models.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, apperrors.NewNotFoundError("No division found with that ID")
	}

	return division, nil
}

// GetAllDivisions retrieves all divisions
func (s *divisionServiceImpl) GetAllDivisions(ctx context.Context) ([]*models.Division, error) {
	return s.divisionRepo.GetAll(ctx)
}

// GetDivisionsByYear retrieves the divisions of one academic year
func (s *divisionServiceImpl) GetDivisionsByYear(ctx context.Context, yearID int64) ([]*models.Division, error) {
	return s.divisionRepo.GetByAcademicYear(ctx, yearID)
}

// UpdateDivision merges the provided fields over the existing row. The
// uniqueness check runs against the year the division will end up in.
func (s *divisionServiceImpl) UpdateDivision(ctx context.Context, id int64, req dto.UpdateDivisionRequest) (*models.Division, error) {
	division, err := s.divisionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, apperrors.NewNotFoundError("No division found with that ID")
	}

	if req.AcademicYearID != nil {
		year, err := s.yearRepo.GetByID(ctx, *req.AcademicYearID)
		if err != nil {
			return nil, err
		}
		if year == nil {
			return nil, apperrors.NewNotFoundError("No academic year found with that ID")
		}
	}

	req.ApplyTo(division)

	if req.DivisionName != nil || req.AcademicYearID != nil {
		taken, err := s.divisionRepo.ExistsByName(ctx, division.AcademicYearID, division.DivisionName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("Division with this name already exists in the academic year")
		}
	}

	if err := s.divisionRepo.Update(ctx, division); err != nil {
		return nil, err
	}

	return s.divisionRepo.GetByID(ctx, id)
}

// DeleteDivision deletes a division unless batches still reference it
func (s *divisionServiceImpl) DeleteDivision(ctx context.Context, id int64) error {
	hasBatches, err := s.batchRepo.ExistsForDivision(ctx, id)
	if err != nil {
		return err
	}
	if hasBatches {
		return apperrors.NewDependencyError("Cannot delete division with existing batches")
	}

	deleted, err := s.divisionRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No division found with that ID")
	}

	return nil
}
