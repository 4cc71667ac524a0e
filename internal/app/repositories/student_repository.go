package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{
		db: database,
	}
}

// Batch membership is optional, so the enrichment joins are LEFT JOINs
// and the joined names scan into nullable fields.
const studentSelect = `
	SELECT s.id, s.prn, s.name, s.email, s.roll_number, s.batch_id,
	       b.batch_name, d.division_name, ay.year_name
	FROM students s
	LEFT JOIN batches b ON s.batch_id = b.id
	LEFT JOIN divisions d ON b.division_id = d.id
	LEFT JOIN academic_years ay ON d.academic_year_id = ay.id
`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.PRN,
		&student.Name,
		&student.Email,
		&student.RollNumber,
		&student.BatchID,
		&student.BatchName,
		&student.DivisionName,
		&student.YearName,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student and fills in its generated ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (prn, name, email, roll_number, batch_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query,
		student.PRN,
		student.Name,
		student.Email,
		student.RollNumber,
		student.BatchID,
	).Scan(&student.ID)
}

// GetByID retrieves a student with batch enrichment. Returns (nil, nil)
// when no row exists.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := studentSelect + ` WHERE s.id = $1`

	student, err := scanStudent(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return student, nil
}

// GetAll retrieves students, optionally filtered by batch
func (r *StudentRepository) GetAll(ctx context.Context, batchID *int64) ([]*models.Student, error) {
	query := studentSelect
	var args []any
	if batchID != nil {
		query += ` WHERE s.batch_id = $1`
		args = append(args, *batchID)
	}
	query += ` ORDER BY s.name`

	return r.queryStudents(ctx, query, args...)
}

// GetByBatch retrieves the students assigned to one batch
func (r *StudentRepository) GetByBatch(ctx context.Context, batchID int64) ([]*models.Student, error) {
	query := studentSelect + ` WHERE s.batch_id = $1 ORDER BY s.name`
	return r.queryStudents(ctx, query, batchID)
}

// GetByIDs retrieves the given students with batch enrichment
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Student, error) {
	query := studentSelect + ` WHERE s.id = ANY($1) ORDER BY s.name`
	return r.queryStudents(ctx, query, ids)
}

func (r *StudentRepository) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// ExistingIDs returns which of the given student IDs exist
func (r *StudentRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	query := `SELECT id FROM students WHERE id = ANY($1)`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}

	return existing, rows.Err()
}

// ExistsByPRN reports whether a student with the given PRN exists,
// ignoring the row with excludeID (pass 0 to check all rows).
func (r *StudentRepository) ExistsByPRN(ctx context.Context, prn string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM students
			WHERE prn = $1 AND id != $2
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, prn, excludeID).Scan(&exists)
	return exists, err
}

// ExistsForBatch reports whether the batch has any students
func (r *StudentRepository) ExistsForBatch(ctx context.Context, batchID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM students WHERE batch_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, batchID).Scan(&exists)
	return exists, err
}

// Update writes the student's mutable fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET prn = $1, name = $2, email = $3, roll_number = $4, batch_id = $5
		WHERE id = $6
	`

	_, err := r.db.Pool.Exec(ctx, query,
		student.PRN,
		student.Name,
		student.Email,
		student.RollNumber,
		student.BatchID,
		student.ID,
	)
	return err
}

// AssignBatchTx moves the given students into a batch within an open
// transaction, so a failure leaves no student partially reassigned.
func (r *StudentRepository) AssignBatchTx(ctx context.Context, tx pgx.Tx, batchID int64, studentIDs []int64) error {
	query := `
		UPDATE students
		SET batch_id = $1
		WHERE id = ANY($2)
	`

	_, err := tx.Exec(ctx, query, batchID, studentIDs)
	return err
}

// Delete removes a student. Returns false when no row matched.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM students
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
