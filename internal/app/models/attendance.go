package models

import (
	"math"
	"time"
)

// Attendance is one student's monthly attendance for one subject
type Attendance struct {
	ID               int64 `json:"id"`
	StudentID        int64 `json:"student_id"`
	SubjectID        int64 `json:"subject_id"`
	Month            int   `json:"month" example:"8"`
	Year             int   `json:"year" example:"2026"`
	TotalLectures    int   `json:"total_lectures"`
	AttendedLectures int   `json:"attended_lectures"`
	// Joined from subjects
	SubjectName string `json:"subject_name,omitempty"`
	SubjectCode string `json:"subject_code,omitempty"`
}

// Percentage computes attended/total*100 rounded to two decimals.
// The percentage is always derived, never stored.
func (a Attendance) Percentage() float64 {
	if a.TotalLectures <= 0 {
		return 0
	}
	pct := float64(a.AttendedLectures) / float64(a.TotalLectures) * 100
	return math.Round(pct*100) / 100
}

// IsDefaulter reports whether the computed percentage falls strictly
// below the threshold. A student exactly at the threshold is not a
// defaulter.
func (a Attendance) IsDefaulter(threshold float64) bool {
	return a.Percentage() < threshold
}

// DefaulterLetter records one generated defaulter notice
type DefaulterLetter struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	SubjectID   int64     `json:"subject_id"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	GeneratedBy int64     `json:"generated_by"`
	FilePath    string    `json:"file_path" example:"/letters/defaulter_72230045B_CS201_3_2026.pdf"`
	GeneratedAt time.Time `json:"generated_at"`
	// Joined from students / subjects / users
	StudentName     string `json:"student_name,omitempty"`
	PRN             string `json:"prn,omitempty"`
	SubjectName     string `json:"subject_name,omitempty"`
	SubjectCode     string `json:"subject_code,omitempty"`
	GeneratedByName string `json:"generated_by_name,omitempty"`
}

// Defaulter is one row of the below-threshold attendance report used
// to drive letter generation.
type Defaulter struct {
	StudentID            int64   `json:"student_id"`
	PRN                  string  `json:"prn"`
	StudentName          string  `json:"student_name"`
	StudentEmail         string  `json:"student_email"`
	SubjectID            int64   `json:"subject_id"`
	SubjectName          string  `json:"subject_name"`
	SubjectCode          string  `json:"subject_code"`
	AttendedLectures     int     `json:"attended_lectures"`
	TotalLectures        int     `json:"total_lectures"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}
