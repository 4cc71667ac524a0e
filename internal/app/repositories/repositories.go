package repositories

import (
	"github.com/swapnilk/acadesk/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository            *UserRepository
	AcademicYearRepository    *AcademicYearRepository
	DivisionRepository        *DivisionRepository
	BatchRepository           *BatchRepository
	StudentRepository         *StudentRepository
	SubjectRepository         *SubjectRepository
	TeacherRepository         *TeacherRepository
	AttendanceRepository      *AttendanceRepository
	DefaulterLetterRepository *DefaulterLetterRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:            NewUserRepository(database),
		AcademicYearRepository:    NewAcademicYearRepository(database),
		DivisionRepository:        NewDivisionRepository(database),
		BatchRepository:           NewBatchRepository(database),
		StudentRepository:         NewStudentRepository(database),
		SubjectRepository:         NewSubjectRepository(database),
		TeacherRepository:         NewTeacherRepository(database),
		AttendanceRepository:      NewAttendanceRepository(database),
		DefaulterLetterRepository: NewDefaulterLetterRepository(database),
	}
}
