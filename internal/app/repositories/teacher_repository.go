package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/db"
)

// TeacherRepository handles database operations for teachers and their
// teaching assignments
type TeacherRepository struct {
	db *db.PostgresDB
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(database *db.PostgresDB) *TeacherRepository {
	return &TeacherRepository{
		db: database,
	}
}

const teacherSelect = `
	SELECT t.id, t.user_id, t.designation, u.name, u.email, u.role
	FROM teachers t
	JOIN users u ON t.user_id = u.id
`

func scanTeacher(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	err := row.Scan(
		&teacher.ID,
		&teacher.UserID,
		&teacher.Designation,
		&teacher.Name,
		&teacher.Email,
		&teacher.Role,
	)
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// Create inserts a new teacher record and fills in its generated ID
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, designation)
		VALUES ($1, $2)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query, teacher.UserID, teacher.Designation).Scan(&teacher.ID)
}

// GetByID retrieves a teacher with their account details. Returns
// (nil, nil) when no row exists.
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := teacherSelect + ` WHERE t.id = $1`

	teacher, err := scanTeacher(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return teacher, nil
}

// GetAll retrieves all teachers with their account details
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	query := teacherSelect + ` ORDER BY u.name`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	return teachers, rows.Err()
}

// ExistsByUserID reports whether a teacher record already exists for
// the given user account.
func (r *TeacherRepository) ExistsByUserID(ctx context.Context, userID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM teachers WHERE user_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(&exists)
	return exists, err
}

// Update writes the teacher's mutable fields. Returns false when no
// row matched.
func (r *TeacherRepository) Update(ctx context.Context, id int64, designation string) (bool, error) {
	query := `
		UPDATE teachers
		SET designation = $1
		WHERE id = $2
	`

	tag, err := r.db.Pool.Exec(ctx, query, designation, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a teacher. Returns false when no row matched.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM teachers
		WHERE id = $1
	`

	tag, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// HasAssignments reports whether the teacher has any teaching
// assignments.
func (r *TeacherRepository) HasAssignments(ctx context.Context, teacherID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM teacher_batch_subjects WHERE teacher_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, teacherID).Scan(&exists)
	return exists, err
}

// AssignedSubjectIDs returns the subject IDs already assigned to the
// teacher for one batch.
func (r *TeacherRepository) AssignedSubjectIDs(ctx context.Context, teacherID, batchID int64) (map[int64]bool, error) {
	query := `
		SELECT subject_id
		FROM teacher_batch_subjects
		WHERE teacher_id = $1 AND batch_id = $2
	`

	rows, err := r.db.Pool.Query(ctx, query, teacherID, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assigned := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		assigned[id] = true
	}

	return assigned, rows.Err()
}

// CreateAssignmentTx inserts one teaching assignment within an open
// transaction and returns its generated ID.
func (r *TeacherRepository) CreateAssignmentTx(ctx context.Context, tx pgx.Tx, teacherID, batchID, subjectID int64) (int64, error) {
	query := `
		INSERT INTO teacher_batch_subjects (teacher_id, batch_id, subject_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query, teacherID, batchID, subjectID).Scan(&id)
	return id, err
}

// GetSubjects retrieves the subjects assigned to a teacher, enriched
// with the batch, division, and year each assignment belongs to.
func (r *TeacherRepository) GetSubjects(ctx context.Context, teacherID int64) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, s.is_practical,
		       b.batch_name, d.division_name, ay.year_name
		FROM teacher_batch_subjects tbs
		JOIN subjects s ON tbs.subject_id = s.id
		JOIN batches b ON tbs.batch_id = b.id
		JOIN divisions d ON b.division_id = d.id
		JOIN academic_years ay ON d.academic_year_id = ay.id
		WHERE tbs.teacher_id = $1
		ORDER BY ay.year_name, d.division_name, b.batch_name, s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, teacherID)
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
			&subject.BatchName,
			&subject.DivisionName,
			&subject.YearName,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	return subjects, rows.Err()
}
