package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/db"
)

// AttendanceRepository handles database operations for monthly
// attendance records
type AttendanceRepository struct {
	db *db.PostgresDB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(database *db.PostgresDB) *AttendanceRepository {
	return &AttendanceRepository{
		db: database,
	}
}

// Create inserts a new attendance record and fills in its generated ID
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	query := `
		INSERT INTO attendance (student_id, subject_id, month, year, total_lectures, attended_lectures)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	return r.db.Pool.QueryRow(ctx, query,
		attendance.StudentID,
		attendance.SubjectID,
		attendance.Month,
		attendance.Year,
		attendance.TotalLectures,
		attendance.AttendedLectures,
	).Scan(&attendance.ID)
}

// GetByID retrieves an attendance record by ID. Returns (nil, nil)
// when no row exists.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := `
		SELECT id, student_id, subject_id, month, year, total_lectures, attended_lectures
		FROM attendance
		WHERE id = $1
	`

	var attendance models.Attendance
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&attendance.ID,
		&attendance.StudentID,
		&attendance.SubjectID,
		&attendance.Month,
		&attendance.Year,
		&attendance.TotalLectures,
		&attendance.AttendedLectures,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &attendance, nil
}

// GetAll retrieves attendance records matching the optional equality
// filters.
func (r *AttendanceRepository) GetAll(ctx context.Context, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	query := `
		SELECT id, student_id, subject_id, month, year, total_lectures, attended_lectures
		FROM attendance
		WHERE 1=1
	`
	var args []any

	appendFilter := func(column string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(" AND %s = $%d", column, len(args))
	}
	if filter.StudentID != nil {
		appendFilter("student_id", *filter.StudentID)
	}
	if filter.SubjectID != nil {
		appendFilter("subject_id", *filter.SubjectID)
	}
	if filter.Month != nil {
		appendFilter("month", *filter.Month)
	}
	if filter.Year != nil {
		appendFilter("year", *filter.Year)
	}
	query += " ORDER BY year, month, student_id, subject_id"

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		if err := rows.Scan(
			&attendance.ID,
			&attendance.StudentID,
			&attendance.SubjectID,
			&attendance.Month,
			&attendance.Year,
			&attendance.TotalLectures,
			&attendance.AttendedLectures,
		); err != nil {
			return nil, err
		}
		records = append(records, &attendance)
	}

	return records, rows.Err()
}

// GetByStudent retrieves one student's attendance across subjects,
// enriched with subject names and codes.
func (r *AttendanceRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.subject_id, a.month, a.year,
		       a.total_lectures, a.attended_lectures, s.name, s.code
		FROM attendance a
		JOIN subjects s ON a.subject_id = s.id
		WHERE a.student_id = $1
		ORDER BY a.year, a.month, s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var attendance models.Attendance
		if err := rows.Scan(
			&attendance.ID,
			&attendance.StudentID,
			&attendance.SubjectID,
			&attendance.Month,
			&attendance.Year,
			&attendance.TotalLectures,
			&attendance.AttendedLectures,
			&attendance.SubjectName,
			&attendance.SubjectCode,
		); err != nil {
			return nil, err
		}
		records = append(records, &attendance)
	}

	return records, rows.Err()
}

// Exists reports whether an attendance record already exists for the
// (student, subject, month, year) combination.
func (r *AttendanceRepository) Exists(ctx context.Context, studentID, subjectID int64, month, year int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance
			WHERE student_id = $1 AND subject_id = $2 AND month = $3 AND year = $4
		)
	`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, studentID, subjectID, month, year).Scan(&exists)
	return exists, err
}

// ExistsForStudent reports whether the student has any attendance
// records.
func (r *AttendanceRepository) ExistsForStudent(ctx context.Context, studentID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM attendance WHERE student_id = $1)`

	var exists bool
	err := r.db.Pool.QueryRow(ctx, query, studentID).Scan(&exists)
	return exists, err
}

// Update writes the record's lecture counts. Returns false when no row
// matched.
func (r *AttendanceRepository) Update(ctx context.Context, attendance *models.Attendance) (bool, error) {
	query := `
		UPDATE attendance
		SET total_lectures = $1, attended_lectures = $2
		WHERE id = $3
	`

	tag, err := r.db.Pool.Exec(ctx, query,
		attendance.TotalLectures,
		attendance.AttendedLectures,
		attendance.ID,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

// GetDefaulters returns the attendance rows for the given month whose
// computed percentage falls strictly below the threshold, joined with
// student and subject details for letter generation.
func (r *AttendanceRepository) GetDefaulters(ctx context.Context, month, year int, threshold float64) ([]*models.Defaulter, error) {
	query := `
		SELECT s.id, s.prn, s.name, s.email,
		       sub.id, sub.name, sub.code,
		       a.attended_lectures, a.total_lectures,
		       ROUND(a.attended_lectures::numeric / a.total_lectures * 100, 2)
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		JOIN subjects sub ON a.subject_id = sub.id
		WHERE a.month = $1 AND a.year = $2
		  AND ROUND(a.attended_lectures::numeric / a.total_lectures * 100, 2) < $3
		ORDER BY s.name, sub.name
	`

	rows, err := r.db.Pool.Query(ctx, query, month, year, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defaulters []*models.Defaulter
	for rows.Next() {
		var d models.Defaulter
		if err := rows.Scan(
			&d.StudentID,
			&d.PRN,
			&d.StudentName,
			&d.StudentEmail,
			&d.SubjectID,
			&d.SubjectName,
			&d.SubjectCode,
			&d.AttendedLectures,
			&d.TotalLectures,
			&d.AttendancePercentage,
		); err != nil {
			return nil, err
		}
		defaulters = append(defaulters, &d)
	}

	return defaulters, rows.Err()
}
