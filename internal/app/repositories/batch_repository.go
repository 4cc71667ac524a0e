package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// BatchRepository handles database operations for batches
type BatchRepository struct {
	db *db.PostgresDB
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(database *db.PostgresDB) *BatchRepository {
	return &BatchRepository{
		db: database,
	}
}

const batchSelect = `
	SELECT b.id, b.division_id, b.batch_name, d.division_name, ay.year_name
	FROM batches b
	JOIN divisions d ON b.division_id = d.id
	JOIN academic_years ay ON d.academic_year_id = ay.id
`

func scanBatch(row pgx.Row) (*models.Batch, error) {
	var batch models.Batch
	err := row.Scan(
		&batch.ID,
		&batch.DivisionID,
		&batch.BatchName,
		&batch.DivisionName,
		&batch.YearName,
	)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

// Create inserts a new batch and fills in its generated ID
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	query := `
		INSERT INTO batches (division_id, batch_name)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query, batch.DivisionID, batch.BatchName).Scan(&batch.ID)
}

// GetByID retrieves a batch with its division and year names. Returns
// (nil, nil) when no row exists.
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	query := batchSelect + ` WHERE b.id = $1`

	batch, err := scanBatch(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return batch, nil
}

// GetAll retrieves all batches with their division and year names
func (r *BatchRepository) GetAll(ctx context.Context) ([]*models.Batch, error) {
	query := batchSelect + ` ORDER BY ay.year_name, d.division_name, b.batch_name`
	return r.queryBatches(ctx, query)
}

// GetByDivision retrieves the batches of one division
func (r *BatchRepository) GetByDivision(ctx context.Context, divisionID int64) ([]*models.Batch, error) {
	query := batchSelect + ` WHERE b.division_id = $1 ORDER BY b.batch_name`
	return r.queryBatches(ctx, query, divisionID)
}

func (r *BatchRepository) queryBatches(ctx context.Context, query string, args ...any) ([]*models.Batch, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, rows.Err()
}

// ExistsByName reports whether a batch with the given name already
// exists within the division, ignoring the row with excludeID.
func (r *BatchRepository) ExistsByName(ctx context.Context, divisionID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM batches
			WHERE division_id = $1 AND batch_name = $2 AND id != $3
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, divisionID, name, excludeID).Scan(&exists)
	return exists, err
}

// ExistsForDivision reports whether the division has any batches
func (r *BatchRepository) ExistsForDivision(ctx context.Context, divisionID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM batches WHERE division_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, divisionID).Scan(&exists)
	return exists, err
}

// Update writes the batch's mutable fields
func (r *BatchRepository) Update(ctx context.Context, batch *models.Batch) error {
	query := `
		UPDATE batches
		SET division_id = $1, batch_name = $2
		WHERE id = $3
	`

	_, err := r.db.Pool.Exec(ctx, query, batch.DivisionID, batch.BatchName, batch.ID)
	return err
}

// Delete removes a batch. Returns false when no row matched.
func (r *BatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM batches
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
