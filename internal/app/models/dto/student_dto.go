package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	PRN        string `json:"prn" binding:"required" example:"72230045B"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	RollNumber string `json:"roll_number" binding:"required"`
	BatchID    *int64 `json:"batch_id,omitempty"`
}

// UpdateStudentRequest carries optional fields for a partial update;
// nil fields keep the existing value.
type UpdateStudentRequest struct {
	PRN        *string `json:"prn,omitempty"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	RollNumber *string `json:"roll_number,omitempty"`
	BatchID    *int64  `json:"batch_id,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateStudentRequest) ApplyTo(student *models.Student) {
	if r.PRN != nil {
		student.PRN = *r.PRN
	}
	if r.Name != nil {
		student.Name = *r.Name
	}
	if r.Email != nil {
		student.Email = *r.Email
	}
	if r.RollNumber != nil {
		student.RollNumber = *r.RollNumber
	}
	if r.BatchID != nil {
		student.BatchID = r.BatchID
	}
}

// AssignBatchRequest assigns a batch to a list of students
type AssignBatchRequest struct {
	BatchID    int64   `json:"batch_id" binding:"required,min=1"`
	StudentIDs []int64 `json:"student_ids" binding:"required,min=1"`
}
