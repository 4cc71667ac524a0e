package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// DivisionRepository handles database operations for divisions
type DivisionRepository struct {
	db *db.PostgresDB
}

// NewDivisionRepository creates a new division repository
func NewDivisionRepository(database *db.PostgresDB) *DivisionRepository {
	return &DivisionRepository{
		db: database,
	}
}

const divisionSelect = `
	SELECT d.id, d.academic_year_id, d.division_name, ay.year_name
	FROM divisions d
	JOIN academic_years ay ON d.academic_year_id = ay.id
`

func scanDivision(row pgx.Row) (*models.Division, error) {
	var division models.Division
	err := row.Scan(
		&division.ID,
		&division.AcademicYearID,
		&division.DivisionName,
		&division.YearName,
	)
	if err != nil {
		return nil, err
	}
	return &division, nil
}

// Create inserts a new division and fills in its generated ID
func (r *DivisionRepository) Create(ctx context.Context, division *models.Division) error {
	query := `
		INSERT INTO divisions (academic_year_id, division_name)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query, division.AcademicYearID, division.DivisionName).Scan(&division.ID)
}

// GetByID retrieves a division with its year name. Returns (nil, nil)
// when no row exists.
func (r *DivisionRepository) GetByID(ctx context.Context, id int64) (*models.Division, error) {
	query := divisionSelect + ` WHERE d.id = $1`

	division, err := scanDivision(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return division, nil
}

// GetAll retrieves all divisions with their year names
func (r *DivisionRepository) GetAll(ctx context.Context) ([]*models.Division, error) {
	query := divisionSelect + ` ORDER BY ay.year_name, d.division_name`
	return r.queryDivisions(ctx, query)
}

// GetByAcademicYear retrieves the divisions of one academic year
func (r *DivisionRepository) GetByAcademicYear(ctx context.Context, yearID int64) ([]*models.Division, error) {
	query := divisionSelect + ` WHERE d.academic_year_id = $1 ORDER BY d.division_name`
	return r.queryDivisions(ctx, query, yearID)
}

func (r *DivisionRepository) queryDivisions(ctx context.Context, query string, args ...any) ([]*models.Division, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var divisions []*models.Division
	for rows.Next() {
		division, err := scanDivision(rows)
		if err != nil {
			return nil, err
		}
		divisions = append(divisions, division)
	}

	return divisions, rows.Err()
}

// ExistsByName reports whether a division with the given name already
// exists within the academic year, ignoring the row with excludeID.
func (r *DivisionRepository) ExistsByName(ctx context.Context, yearID int64, name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM divisions
			WHERE academic_year_id = $1 AND division_name = $2 AND id != $3
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, yearID, name, excludeID).Scan(&exists)
	return exists, err
}

// ExistsForYear reports whether the academic year has any divisions
func (r *DivisionRepository) ExistsForYear(ctx context.Context, yearID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM divisions WHERE academic_year_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, yearID).Scan(&exists)
	return exists, err
}

// Update writes the division's mutable fields
func (r *DivisionRepository) Update(ctx context.Context, division *models.Division) error {
	query := `
		UPDATE divisions
		SET academic_year_id = $1, division_name = $2
		WHERE id = $3
	`

	_, err := r.db.Pool.Exec(ctx, query, division.AcademicYearID, division.DivisionName, division.ID)
	return err
}

// Delete removes a division. Returns false when no row matched.
func (r *DivisionRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM divisions
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
