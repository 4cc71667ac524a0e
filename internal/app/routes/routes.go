package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swapnilk/acadesk/internal/app/controllers"
	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth            *controllers.AuthController
	AcademicYear    *controllers.AcademicYearController
	Division        *controllers.DivisionController
	Batch           *controllers.BatchController
	Student         *controllers.StudentController
	Subject         *controllers.SubjectController
	Teacher         *controllers.TeacherController
	User            *controllers.UserController
	Attendance      *controllers.AttendanceController
	DefaulterLetter *controllers.DefaulterLetterController
}

// SetupRouter configures all application routes. Each entity group
// carries the role restrictions of its operations; a handful of reads
// additionally open up to teachers.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Handler())

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.Protect())

	office := authMiddleware.RestrictTo(models.RoleHOD, models.RoleCoordinator)
	staff := authMiddleware.RestrictTo(models.RoleHOD, models.RoleCoordinator, models.RoleTeacher)

	years := authenticated.Group("/academic-years", office)
	{
		years.GET("", ctrl.AcademicYear.GetAllAcademicYears)
		years.POST("", ctrl.AcademicYear.CreateAcademicYear)
		years.GET("/:id", ctrl.AcademicYear.GetAcademicYear)
		years.PATCH("/:id", ctrl.AcademicYear.UpdateAcademicYear)
		years.DELETE("/:id", ctrl.AcademicYear.DeleteAcademicYear)
	}

	divisions := authenticated.Group("/divisions", office)
	{
		divisions.GET("", ctrl.Division.GetAllDivisions)
		divisions.POST("", ctrl.Division.CreateDivision)
		divisions.GET("/by-year/:yearId", ctrl.Division.GetDivisionsByYear)
		divisions.GET("/:id", ctrl.Division.GetDivision)
		divisions.PATCH("/:id", ctrl.Division.UpdateDivision)
		divisions.DELETE("/:id", ctrl.Division.DeleteDivision)
	}

	batches := authenticated.Group("/batches", office)
	{
		batches.GET("", ctrl.Batch.GetAllBatches)
		batches.POST("", ctrl.Batch.CreateBatch)
		batches.GET("/by-division/:divisionId", ctrl.Batch.GetBatchesByDivision)
		batches.GET("/:id", ctrl.Batch.GetBatch)
		batches.GET("/:id/students", ctrl.Batch.GetBatchStudents)
		batches.PATCH("/:id", ctrl.Batch.UpdateBatch)
		batches.DELETE("/:id", ctrl.Batch.DeleteBatch)
	}

	students := authenticated.Group("/students")
	{
		// Teachers may read a student's attendance; everything else is
		// office-only
		students.GET("/:id/attendance", staff, ctrl.Student.GetStudentAttendance)

		students.GET("", office, ctrl.Student.GetAllStudents)
		students.POST("", office, ctrl.Student.CreateStudent)
		students.POST("/assign-batch", office, ctrl.Student.AssignBatch)
		students.GET("/:id", office, ctrl.Student.GetStudent)
		students.PATCH("/:id", office, ctrl.Student.UpdateStudent)
		students.DELETE("/:id", office, ctrl.Student.DeleteStudent)
	}

	subjects := authenticated.Group("/subjects")
	{
		subjects.GET("/class/:classId", staff, ctrl.Subject.GetSubjectsByClass)

		subjects.GET("", office, ctrl.Subject.GetAllSubjects)
		subjects.POST("", office, ctrl.Subject.CreateSubject)
		subjects.GET("/:id", office, ctrl.Subject.GetSubject)
		subjects.PATCH("/:id", office, ctrl.Subject.UpdateSubject)
		subjects.DELETE("/:id", office, ctrl.Subject.DeleteSubject)
	}

	hodOnly := authMiddleware.RestrictTo(models.RoleHOD)
	teachers := authenticated.Group("/teachers")
	{
		teachers.GET("/:id/subjects", authMiddleware.RestrictTo(models.RoleHOD, models.RoleTeacher), ctrl.Teacher.GetTeacherSubjects)

		teachers.GET("", hodOnly, ctrl.Teacher.GetAllTeachers)
		teachers.POST("", hodOnly, ctrl.Teacher.CreateTeacher)
		teachers.POST("/:id/assign-subjects", hodOnly, ctrl.Teacher.AssignSubjects)
		teachers.GET("/:id", hodOnly, ctrl.Teacher.GetTeacher)
		teachers.PATCH("/:id", hodOnly, ctrl.Teacher.UpdateTeacher)
		teachers.DELETE("/:id", hodOnly, ctrl.Teacher.DeleteTeacher)
	}

	users := authenticated.Group("/users", hodOnly)
	{
		users.GET("", ctrl.User.GetAllUsers)
		users.POST("", ctrl.User.CreateUser)
		users.GET("/:id", ctrl.User.GetUser)
		users.PATCH("/:id", ctrl.User.UpdateUser)
		users.DELETE("/:id", ctrl.User.DeleteUser)
	}

	attendance := authenticated.Group("/attendance", staff)
	{
		attendance.GET("", ctrl.Attendance.GetAttendance)
		attendance.POST("", ctrl.Attendance.CreateAttendance)
		attendance.PATCH("/:id", ctrl.Attendance.UpdateAttendance)
	}

	letters := authenticated.Group("/defaulter-letters")
	{
		// Generation is restricted; any authenticated user may list
		letters.POST("", staff, ctrl.DefaulterLetter.GenerateDefaulterLetters)
		letters.GET("", ctrl.DefaulterLetter.GetDefaulterLetters)
	}
}
