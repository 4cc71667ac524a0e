package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
)

type mockStudentService struct {
	createResult     *models.Student
	createErr        error
	getResult        *models.Student
	getErr           error
	listResult       []*models.Student
	listErr          error
	listBatchID      *int64
	attendanceResult []*models.Attendance
	attendanceErr    error
	updateResult     *models.Student
	updateErr        error
	deleteErr        error
	assignResult     []*models.Student
	assignErr        error
	assignReq        dto.AssignBatchRequest
}

func (m *mockStudentService) CreateStudent(_ context.Context, _ dto.CreateStudentRequest) (*models.Student, error) {
	return m.createResult, m.createErr
}
func (m *mockStudentService) GetStudentByID(_ context.Context, _ int64) (*models.Student, error) {
	return m.getResult, m.getErr
}
func (m *mockStudentService) GetAllStudents(_ context.Context, batchID *int64) ([]*models.Student, error) {
	m.listBatchID = batchID
	return m.listResult, m.listErr
}
func (m *mockStudentService) GetStudentAttendance(_ context.Context, _ int64) ([]*models.Attendance, error) {
	return m.attendanceResult, m.attendanceErr
}
func (m *mockStudentService) UpdateStudent(_ context.Context, _ int64, _ dto.UpdateStudentRequest) (*models.Student, error) {
	return m.updateResult, m.updateErr
}
func (m *mockStudentService) DeleteStudent(_ context.Context, _ int64) error {
	return m.deleteErr
}
func (m *mockStudentService) AssignBatch(_ context.Context, req dto.AssignBatchRequest) ([]*models.Student, error) {
	m.assignReq = req
	return m.assignResult, m.assignErr
}

func studentRouter(mock *mockStudentService) *gin.Engine {
	c := NewStudentController(mock)
	r := gin.New()
	r.GET("/students", c.GetAllStudents)
	r.POST("/students", c.CreateStudent)
	r.POST("/students/assign-batch", c.AssignBatch)
	r.GET("/students/:id/attendance", c.GetStudentAttendance)
	r.DELETE("/students/:id", c.DeleteStudent)
	return r
}

func TestGetAllStudentsBatchFilter(t *testing.T) {
	mock := &mockStudentService{listResult: []*models.Student{{ID: 1, PRN: "72230045B"}}}
	r := studentRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/students?batch_id=3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.listBatchID == nil || *mock.listBatchID != 3 {
		t.Errorf("expected batch filter 3 to reach the service, got %v", mock.listBatchID)
	}
}

func TestGetAllStudentsInvalidBatchFilter(t *testing.T) {
	r := studentRouter(&mockStudentService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/students?batch_id=abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAssignBatch(t *testing.T) {
	mock := &mockStudentService{
		assignResult: []*models.Student{{ID: 1}, {ID: 2}},
	}
	r := studentRouter(mock)

	req := httptest.NewRequest("POST", "/students/assign-batch",
		jsonBody(t, dto.AssignBatchRequest{BatchID: 5, StudentIDs: []int64{1, 2}}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Results == nil || *env.Results != 2 {
		t.Errorf("expected results 2, got %v", env.Results)
	}
	if mock.assignReq.BatchID != 5 {
		t.Errorf("expected batch 5 to reach the service, got %d", mock.assignReq.BatchID)
	}
}

func TestAssignBatchUnknownStudent(t *testing.T) {
	r := studentRouter(&mockStudentService{
		assignErr: apperrors.NewNotFoundError("No student found with ID 42"),
	})

	req := httptest.NewRequest("POST", "/students/assign-batch",
		jsonBody(t, dto.AssignBatchRequest{BatchID: 5, StudentIDs: []int64{42}}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "No student found with ID 42" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestAssignBatchBindFailure(t *testing.T) {
	r := studentRouter(&mockStudentService{})

	req := httptest.NewRequest("POST", "/students/assign-batch",
		jsonBody(t, gin.H{"batch_id": 5}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Please provide batch ID and student IDs" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetStudentAttendance(t *testing.T) {
	r := studentRouter(&mockStudentService{
		attendanceResult: []*models.Attendance{
			{ID: 1, StudentID: 7, SubjectID: 2, Month: 3, Year: 2026, TotalLectures: 40, AttendedLectures: 30},
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/students/7/attendance", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if _, ok := env.Data["attendance"]; !ok {
		t.Error("expected data to carry the attendance key")
	}
}

func TestDeleteStudentWithAttendance(t *testing.T) {
	r := studentRouter(&mockStudentService{
		deleteErr: apperrors.NewDependencyError("Cannot delete student with attendance records"),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/students/1", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Cannot delete student with attendance records" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
