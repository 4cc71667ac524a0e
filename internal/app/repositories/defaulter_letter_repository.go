package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/db"
)

// DefaulterLetterRepository handles database operations for generated
// defaulter letters
type DefaulterLetterRepository struct {
	db *db.PostgresDB
}

// NewDefaulterLetterRepository creates a new defaulter letter
// repository
func NewDefaulterLetterRepository(database *db.PostgresDB) *DefaulterLetterRepository {
	return &DefaulterLetterRepository{
		db: database,
	}
}

// UpsertTx records a generated letter within an open transaction.
// Regenerating for the same (student, subject, month, year) replaces
// the prior row instead of accumulating duplicates.
func (r *DefaulterLetterRepository) UpsertTx(ctx context.Context, tx pgx.Tx, letter *models.DefaulterLetter) error {
	query := `
		INSERT INTO defaulter_letters (student_id, subject_id, month, year, generated_by, file_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (student_id, subject_id, month, year)
		DO UPDATE SET generated_by = EXCLUDED.generated_by,
		              file_path = EXCLUDED.file_path,
		              generated_at = now()
		RETURNING id, generated_at
	`

	return tx.QueryRow(ctx, query,
		letter.StudentID,
		letter.SubjectID,
		letter.Month,
		letter.Year,
		letter.GeneratedBy,
		letter.FilePath,
	).Scan(&letter.ID, &letter.GeneratedAt)
}

// GetAll retrieves generated letters matching the optional equality
// filters, enriched with student, subject, and generating-user names.
func (r *DefaulterLetterRepository) GetAll(ctx context.Context, filter dto.DefaulterLetterFilter) ([]*models.DefaulterLetter, error) {
	query := `
		SELECT dl.id, dl.student_id, dl.subject_id, dl.month, dl.year,
		       dl.generated_by, dl.file_path, dl.generated_at,
		       s.name, s.prn, sub.name, sub.code, u.name
		FROM defaulter_letters dl
		JOIN students s ON dl.student_id = s.id
		JOIN subjects sub ON dl.subject_id = sub.id
		JOIN users u ON dl.generated_by = u.id
		WHERE 1=1
	`
	var args []any

	appendFilter := func(column string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}
	if filter.StudentID != nil {
		appendFilter("dl.student_id", *filter.StudentID)
	}
	if filter.SubjectID != nil {
		appendFilter("dl.subject_id", *filter.SubjectID)
	}
	if filter.Month != nil {
		appendFilter("dl.month", *filter.Month)
	}
	if filter.Year != nil {
		appendFilter("dl.year", *filter.Year)
	}
	query += " ORDER BY dl.generated_at DESC, dl.id DESC"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var letters []*models.DefaulterLetter
	for rows.Next() {
		var letter models.DefaulterLetter
		if err := rows.Scan(
			&letter.ID,
			&letter.StudentID,
			&letter.SubjectID,
			&letter.Month,
			&letter.Year,
			&letter.GeneratedBy,
			&letter.FilePath,
			&letter.GeneratedAt,
			&letter.StudentName,
			&letter.PRN,
			&letter.SubjectName,
			&letter.SubjectCode,
			&letter.GeneratedByName,
		); err != nil {
			return nil, err
		}
		letters = append(letters, &letter)
	}

	return letters, rows.Err()
}
