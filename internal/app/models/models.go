package models

// RoleType defines the user role type
type RoleType string

const (
	RoleHOD         RoleType = "hod"
	RoleCoordinator RoleType = "coordinator"
	RoleTeacher     RoleType = "teacher"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r RoleType) bool {
	switch r {
	case RoleHOD, RoleCoordinator, RoleTeacher:
		return true
	}
	return false
}
