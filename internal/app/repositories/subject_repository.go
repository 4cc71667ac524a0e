package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *db.PostgresDB
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(database *db.PostgresDB) *SubjectRepository {
	return &SubjectRepository{
		db: database,
	}
}

// Create inserts a new subject and fills in its generated ID
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, is_practical)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query, subject.Name, subject.Code, subject.IsPractical).Scan(&subject.ID)
}

// GetByID retrieves a subject by ID. Returns (nil, nil) when no row
// exists.
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, code, is_practical
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.IsPractical,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &subject, nil
}

// GetAll retrieves all subjects
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, is_practical
		FROM subjects
		ORDER BY name
	`

	return r.querySubjects(ctx, query)
}

// GetByClassGroup retrieves the subjects taught to one class group
func (r *SubjectRepository) GetByClassGroup(ctx context.Context, classGroupID int64) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.is_practical
		FROM subjects s
		JOIN class_subjects cs ON s.id = cs.subject_id
		WHERE cs.class_group_id = $1
		ORDER BY s.name
	`

	return r.querySubjects(ctx, query, classGroupID)
}

func (r *SubjectRepository) querySubjects(ctx context.Context, query string, args ...any) ([]*models.Subject, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.IsPractical,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	return subjects, rows.Err()
}

// ExistingIDs returns which of the given subject IDs exist
func (r *SubjectRepository) ExistingIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	query := `SELECT id FROM subjects WHERE id = ANY($1)`

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

// ExistsByCode reports whether a subject with the given code exists,
// ignoring the row with excludeID (pass 0 to check all rows).
func (r *SubjectRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM subjects
			WHERE code = $1 AND id != $2
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, code, excludeID).Scan(&exists)
	return exists, err
}

// IsAssigned reports whether the subject is referenced by any class
// group or teacher assignment.
func (r *SubjectRepository) IsAssigned(ctx context.Context, subjectID int64) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM class_subjects WHERE subject_id = $1)
		    OR EXISTS (SELECT 1 FROM teacher_batch_subjects WHERE subject_id = $1)
	`

	var assigned bool
	err := r.db.Pool.QueryRow(ctx, query, subjectID).Scan(&assigned)
	return assigned, err
}

// Update writes the subject's mutable fields
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, is_practical = $3
		WHERE id = $4
	`

	_, err := r.db.Pool.Exec(ctx, query, subject.Name, subject.Code, subject.IsPractical, subject.ID)
	return err
}

// Delete removes a subject. Returns false when no row matched.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM subjects
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
