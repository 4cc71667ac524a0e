package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateTeacherRequest represents teacher creation data. The referenced
// user must already exist and carry the teacher role.
type CreateTeacherRequest struct {
	UserID      int64  `json:"user_id" binding:"required,min=1"`
	Designation string `json:"designation" binding:"required" example:"Assistant Professor"`
}

// UpdateTeacherRequest carries optional fields for a partial update.
type UpdateTeacherRequest struct {
	Designation *string `json:"designation,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateTeacherRequest) ApplyTo(teacher *models.Teacher) {
	if r.Designation != nil {
		teacher.Designation = *r.Designation
	}
}

// AssignSubjectsRequest assigns subjects to a teacher for one batch
type AssignSubjectsRequest struct {
	BatchID    int64   `json:"batch_id" binding:"required,min=1"`
	SubjectIDs []int64 `json:"subject_ids" binding:"required,min=1"`
}
