package dto

// GenerateLettersRequest asks for defaulter letters for one period.
// Threshold defaults to 75 when omitted.
type GenerateLettersRequest struct {
	Month     int      `json:"month" binding:"required,min=1,max=12"`
	Year      int      `json:"year" binding:"required,min=2000"`
	Threshold *float64 `json:"threshold,omitempty" binding:"omitempty,gt=0,lte=100"`
}

// GeneratedLetter is one entry of the generation response
type GeneratedLetter struct {
	StudentID            int64   `json:"student_id"`
	StudentName          string  `json:"student_name"`
	Subject              string  `json:"subject"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	LetterPath           string  `json:"letter_path"`
}

// DefaulterLetterFilter holds optional equality filters for listing
type DefaulterLetterFilter struct {
	StudentID *int64
	SubjectID *int64
	Month     *int
	Year      *int
}
