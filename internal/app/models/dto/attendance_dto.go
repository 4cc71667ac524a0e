package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateAttendanceRequest represents a monthly attendance record
type CreateAttendanceRequest struct {
	StudentID        int64 `json:"student_id" binding:"required,min=1"`
	SubjectID        int64 `json:"subject_id" binding:"required,min=1"`
	Month            int   `json:"month" binding:"required,min=1,max=12"`
	Year             int   `json:"year" binding:"required,min=2000"`
	TotalLectures    int   `json:"total_lectures" binding:"required,min=1"`
	AttendedLectures int   `json:"attended_lectures" binding:"min=0"`
}

// UpdateAttendanceRequest carries optional lecture counts for a
// partial update; the identifying fields are immutable.
type UpdateAttendanceRequest struct {
	TotalLectures    *int `json:"total_lectures,omitempty"`
	AttendedLectures *int `json:"attended_lectures,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateAttendanceRequest) ApplyTo(record *models.Attendance) {
	if r.TotalLectures != nil {
		record.TotalLectures = *r.TotalLectures
	}
	if r.AttendedLectures != nil {
		record.AttendedLectures = *r.AttendedLectures
	}
}

// AttendanceFilter holds optional equality filters for listing
type AttendanceFilter struct {
	StudentID *int64
	SubjectID *int64
	Month     *int
	Year      *int
}
