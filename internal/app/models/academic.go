package models

// AcademicYear represents a year of study (FY, SY, TY, ...)
type AcademicYear struct {
	ID       int64  `json:"id"`
	YearName string `json:"year_name" example:"FY"`
}

// Division represents a division within an academic year
type Division struct {
	ID             int64  `json:"id"`
	AcademicYearID int64  `json:"academic_year_id"`
	DivisionName   string `json:"division_name" example:"A"`
	// Joined from academic_years
	YearName string `json:"year_name,omitempty"`
}

// Batch is the smallest teaching subgroup, nested under a division
type Batch struct {
	ID         int64  `json:"id"`
	DivisionID int64  `json:"division_id"`
	BatchName  string `json:"batch_name" example:"B1"`
	// Joined from divisions / academic_years
	DivisionName string `json:"division_name,omitempty"`
	YearName     string `json:"year_name,omitempty"`
}
