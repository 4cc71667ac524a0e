package models

import "time"

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"A. P. Kulkarni"`
	Email     string    `json:"email" example:"apk@college.edu"`
	Password  string    `json:"-"` // hashed, excluded from JSON
	Role      RoleType  `json:"role" example:"coordinator"`
	CreatedAt time.Time `json:"created_at"`
}

// Teacher represents a teaching staff record linked to a user account
type Teacher struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Designation string `json:"designation" example:"Assistant Professor"`
	// Joined from users
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Role  RoleType `json:"role,omitempty"`
}

// TeacherBatchSubject is a (teacher, batch, subject) teaching assignment
type TeacherBatchSubject struct {
	ID        int64 `json:"id"`
	TeacherID int64 `json:"teacher_id"`
	BatchID   int64 `json:"batch_id"`
	SubjectID int64 `json:"subject_id"`
}
