package services

import (
	"context"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/app/repositories"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
	"github.com/swapnilk/acadesk/internal/pkg/dberrors"
)

// BatchService defines the interface for batch operations
type BatchService interface {
	CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*models.Batch, error)
	GetBatchByID(ctx context.Context, id int64) (*models.Batch, error)
	GetAllBatches(ctx context.Context) ([]*models.Batch, error)
	GetBatchesByDivision(ctx context.Context, divisionID int64) ([]*models.Batch, error)
	GetBatchStudents(ctx context.Context, batchID int64) ([]*models.Student, error)
	UpdateBatch(ctx context.Context, id int64, req dto.UpdateBatchRequest) (*models.Batch, error)
	DeleteBatch(ctx context.Context, id int64) error
}

type batchServiceImpl struct {
	batchRepo    *repositories.BatchRepository
	divisionRepo *repositories.DivisionRepository
	studentRepo  *repositories.StudentRepository
}

// NewBatchService creates a new batch service instance
func NewBatchService(
	batchRepo *repositories.BatchRepository,
	divisionRepo *repositories.DivisionRepository,
	studentRepo *repositories.StudentRepository,
) BatchService {
	return &batchServiceImpl{
		batchRepo:    batchRepo,
		divisionRepo: divisionRepo,
		studentRepo:  studentRepo,
	}
}

// CreateBatch creates a batch after checking the parent division and
// per-division name uniqueness.
func (s *batchServiceImpl) CreateBatch(ctx context.Context, req dto.CreateBatchRequest) (*models.Batch, error) {
	division, err := s.divisionRepo.GetByID(ctx, req.DivisionID)
	if err != nil {
		return nil, err
	}
	if division == nil {
		return nil, apperrors.NewNotFoundError("No division found with that ID")
	}

	exists, err := s.batchRepo.ExistsByName(ctx, req.DivisionID, req.BatchName, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflictError("Batch already exists in this division")
	}

	batch := &models.Batch{
		DivisionID: req.DivisionID,
		BatchName:  req.BatchName,
	}
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Batch already exists in this division")
		}
		return nil, err
	}

	// Refetch for the joined division and year names
	return s.batchRepo.GetByID(ctx, batch.ID)
}

// GetBatchByID retrieves one batch with its division and year names
func (s *batchServiceImpl) GetBatchByID(ctx context.Context, id int64) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperrors.NewNotFoundError("No batch found with that ID")
	}

	return batch, nil
}

// GetAllBatches retrieves all batches
func (s *batchServiceImpl) GetAllBatches(ctx context.Context) ([]*models.Batch, error) {
	return s.batchRepo.GetAll(ctx)
}

// GetBatchesByDivision retrieves the batches of one division
func (s *batchServiceImpl) GetBatchesByDivision(ctx context.Context, divisionID int64) ([]*models.Batch, error) {
	return s.batchRepo.GetByDivision(ctx, divisionID)
}

// GetBatchStudents retrieves the students assigned to one batch
func (s *batchServiceImpl) GetBatchStudents(ctx context.Context, batchID int64) ([]*models.Student, error) {
	return s.studentRepo.GetByBatch(ctx, batchID)
}

// UpdateBatch merges the provided fields over the existing row. The
// uniqueness check runs against the division the batch will end up in.
func (s *batchServiceImpl) UpdateBatch(ctx context.Context, id int64, req dto.UpdateBatchRequest) (*models.Batch, error) {
	batch, err := s.batchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, apperrors.NewNotFoundError("No batch found with that ID")
	}

	if req.DivisionID != nil {
		division, err := s.divisionRepo.GetByID(ctx, *req.DivisionID)
		if err != nil {
			return nil, err
		}
		if division == nil {
			return nil, apperrors.NewNotFoundError("No division found with that ID")
		}
	}

	req.ApplyTo(batch)

	if req.BatchName != nil || req.DivisionID != nil {
		taken, err := s.batchRepo.ExistsByName(ctx, batch.DivisionID, batch.BatchName, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflictError("Batch with this name already exists in the division")
		}
	}

	if err := s.batchRepo.Update(ctx, batch); err != nil {
		return nil, err
	}

	return s.batchRepo.GetByID(ctx, id)
}

// DeleteBatch deletes a batch unless students still reference it
func (s *batchServiceImpl) DeleteBatch(ctx context.Context, id int64) error {
	hasStudents, err := s.studentRepo.ExistsForBatch(ctx, id)
	if err != nil {
		return err
	}
	if hasStudents {
		return apperrors.NewDependencyError("Cannot delete batch with existing students")
	}

	deleted, err := s.batchRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFoundError("No batch found with that ID")
	}

	return nil
}
