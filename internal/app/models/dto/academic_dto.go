package dto

import "github.com/swapnilk/acadesk/internal/app/models"

// CreateAcademicYearRequest represents academic year creation data
type CreateAcademicYearRequest struct {
	YearName string `json:"year_name" binding:"required,min=2" example:"FY"`
}

// UpdateAcademicYearRequest carries optional fields for a partial
// update; nil fields keep the existing value.
type UpdateAcademicYearRequest struct {
	YearName *string `json:"year_name,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateAcademicYearRequest) ApplyTo(year *models.AcademicYear) {
	if r.YearName != nil {
		year.YearName = *r.YearName
	}
}

// CreateDivisionRequest represents division creation data
type CreateDivisionRequest struct {
	AcademicYearID int64  `json:"academic_year_id" binding:"required,min=1"`
	DivisionName   string `json:"division_name" binding:"required" example:"A"`
}

// UpdateDivisionRequest carries optional fields for a partial update.
type UpdateDivisionRequest struct {
	AcademicYearID *int64  `json:"academic_year_id,omitempty"`
	DivisionName   *string `json:"division_name,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateDivisionRequest) ApplyTo(division *models.Division) {
	if r.AcademicYearID != nil {
		division.AcademicYearID = *r.AcademicYearID
	}
	if r.DivisionName != nil {
		division.DivisionName = *r.DivisionName
	}
}

// CreateBatchRequest represents batch creation data
type CreateBatchRequest struct {
	DivisionID int64  `json:"division_id" binding:"required,min=1"`
	BatchName  string `json:"batch_name" binding:"required" example:"B1"`
}

// UpdateBatchRequest carries optional fields for a partial update.
type UpdateBatchRequest struct {
	DivisionID *int64  `json:"division_id,omitempty"`
	BatchName  *string `json:"batch_name,omitempty"`
}

// ApplyTo merges the provided fields over the existing row.
func (r UpdateBatchRequest) ApplyTo(batch *models.Batch) {
	if r.DivisionID != nil {
		batch.DivisionID = *r.DivisionID
	}
	if r.BatchName != nil {
		batch.BatchName = *r.BatchName
	}
}
