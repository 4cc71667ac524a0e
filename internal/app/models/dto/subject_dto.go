package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateSubjectRequest represents subject creation data
type CreateSubjectRequest struct {
	Name        string `json:"name" binding:"required" example:"Data Structures"`
	Code        string `json:"code" binding:"required" example:"CS201"`
	IsPractical bool   `json:"is_practical"`
}

// UpdateSubjectRequest carries optional fields for a partial update.
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	IsPractical *bool   `json:"is_practical,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateSubjectRequest) ApplyTo(subject *models.Subject) {
	if r.Name != nil {
		subject.Name = *r.Name
	}
	if r.Code != nil {
		subject.Code = *r.Code
	}
	if r.IsPractical != nil {
		subject.IsPractical = *r.IsPractical
	}
}
