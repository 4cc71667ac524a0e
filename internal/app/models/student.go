package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID         int64  `json:"id"`
	PRN        string `json:"prn" example:"72230045B"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
	BatchID    *int64 `json:"batch_id"` // nullable, student may be unassigned
	// Joined from batches / divisions / academic_years (left joins)
	BatchName    *string `json:"batch_name,omitempty"`
	DivisionName *string `json:"division_name,omitempty"`
	YearName     *string `json:"year_name,omitempty"`
}

// Subject defines the subject model based on the 'subjects' table
type Subject struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" example:"Data Structures"`
	Code        string `json:"code" example:"CS201"`
	IsPractical bool   `json:"is_practical"`
	// Joined from batches / divisions / academic_years when listing a
	// teacher's assignments
	BatchName    string `json:"batch_name,omitempty"`
	DivisionName string `json:"division_name,omitempty"`
	YearName     string `json:"year_name,omitempty"`
}
