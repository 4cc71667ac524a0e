package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// AcademicYearRepository handles database operations for academic years
type AcademicYearRepository struct {
	db *db.PostgresDB
}

// NewAcademicYearRepository creates a new academic year repository
func NewAcademicYearRepository(database *db.PostgresDB) *AcademicYearRepository {
	return &AcademicYearRepository{
		db: database,
	}
}

// Create inserts a new academic year and fills in its generated ID
func (r *AcademicYearRepository) Create(ctx context.Context, year *models.AcademicYear) error {
	query := `
		INSERT INTO academic_years (year_name)
		VALUES ($1)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query, year.YearName).Scan(&year.ID)
}

// GetByID retrieves an academic year by ID. Returns (nil, nil) when no
// row exists.
func (r *AcademicYearRepository) GetByID(ctx context.Context, id int64) (*models.AcademicYear, error) {
	query := `
		SELECT id, year_name
		FROM academic_years
		WHERE id = $1
	`

	var year models.AcademicYear
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(&year.ID, &year.YearName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &year, nil
}

// GetAll retrieves all academic years ordered by name
func (r *AcademicYearRepository) GetAll(ctx context.Context) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, year_name
		FROM academic_years
		ORDER BY year_name
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var year models.AcademicYear
		if err := rows.Scan(&year.ID, &year.YearName); err != nil {
			return nil, err
		}
		years = append(years, &year)
	}

	return years, rows.Err()
}

// ExistsByName reports whether an academic year with the given name
// exists, ignoring the row with excludeID (pass 0 to check all rows).
func (r *AcademicYearRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM academic_years
			WHERE year_name = $1 AND id != $2
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

// Update writes the year's mutable fields
func (r *AcademicYearRepository) Update(ctx context.Context, year *models.AcademicYear) error {
	query := `
		UPDATE academic_years
		SET year_name = $1
		WHERE id = $2
	`

	_, err := r.db.Pool.Exec(ctx, query, year.YearName, year.ID)
	return err
}

// Delete removes an academic year. Returns false when no row matched.
func (r *AcademicYearRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM academic_years
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
