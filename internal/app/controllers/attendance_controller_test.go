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

type mockAttendanceService struct {
	createResult *models.Attendance
	createErr    error
	listResult   []*models.Attendance
	listErr      error
	listFilter   dto.AttendanceFilter
	updateResult *models.Attendance
	updateErr    error
	updateReq    dto.UpdateAttendanceRequest
}

func (m *mockAttendanceService) CreateAttendance(_ context.Context, _ dto.CreateAttendanceRequest) (*models.Attendance, error) {
	return m.createResult, m.createErr
}
func (m *mockAttendanceService) GetAttendance(_ context.Context, filter dto.AttendanceFilter) ([]*models.Attendance, error) {
	m.listFilter = filter
	return m.listResult, m.listErr
}
func (m *mockAttendanceService) UpdateAttendance(_ context.Context, _ int64, req dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	m.updateReq = req
	return m.updateResult, m.updateErr
}

func attendanceRouter(mock *mockAttendanceService) *gin.Engine {
	c := NewAttendanceController(mock)
	r := gin.New()
	r.GET("/attendance", c.GetAttendance)
	r.POST("/attendance", c.CreateAttendance)
	r.PATCH("/attendance/:id", c.UpdateAttendance)
	return r
}

func TestCreateAttendance(t *testing.T) {
	r := attendanceRouter(&mockAttendanceService{
		createResult: &models.Attendance{ID: 1, StudentID: 7, SubjectID: 2, Month: 3, Year: 2026, TotalLectures: 40, AttendedLectures: 30},
	})

	req := httptest.NewRequest("POST", "/attendance",
		jsonBody(t, dto.CreateAttendanceRequest{
			StudentID: 7, SubjectID: 2, Month: 3, Year: 2026,
			TotalLectures: 40, AttendedLectures: 30,
		}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if _, ok := env.Data["attendance"]; !ok {
		t.Error("expected data to carry the attendance key")
	}
}

func TestCreateAttendanceCountExceedsTotal(t *testing.T) {
	r := attendanceRouter(&mockAttendanceService{
		createErr: apperrors.NewValidationError("Attended lectures cannot exceed total lectures"),
	})

	req := httptest.NewRequest("POST", "/attendance",
		jsonBody(t, dto.CreateAttendanceRequest{
			StudentID: 7, SubjectID: 2, Month: 3, Year: 2026,
			TotalLectures: 40, AttendedLectures: 45,
		}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Attended lectures cannot exceed total lectures" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestCreateAttendanceDuplicatePeriod(t *testing.T) {
	r := attendanceRouter(&mockAttendanceService{
		createErr: apperrors.NewConflictError("Attendance record already exists for this student, subject, and month"),
	})

	req := httptest.NewRequest("POST", "/attendance",
		jsonBody(t, dto.CreateAttendanceRequest{
			StudentID: 7, SubjectID: 2, Month: 3, Year: 2026,
			TotalLectures: 40, AttendedLectures: 30,
		}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Attendance record already exists for this student, subject, and month" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetAttendanceFilters(t *testing.T) {
	mock := &mockAttendanceService{listResult: []*models.Attendance{{ID: 1}}}
	r := attendanceRouter(mock)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/attendance?subjectId=2&year=2026", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.listFilter.SubjectID == nil || *mock.listFilter.SubjectID != 2 {
		t.Errorf("expected subject filter 2, got %v", mock.listFilter.SubjectID)
	}
	if mock.listFilter.Year == nil || *mock.listFilter.Year != 2026 {
		t.Errorf("expected year filter 2026, got %v", mock.listFilter.Year)
	}
	if mock.listFilter.StudentID != nil {
		t.Errorf("expected no student filter, got %v", mock.listFilter.StudentID)
	}
}

func TestUpdateAttendancePartial(t *testing.T) {
	mock := &mockAttendanceService{
		updateResult: &models.Attendance{ID: 1, TotalLectures: 40, AttendedLectures: 35},
	}
	r := attendanceRouter(mock)

	attended := 35
	req := httptest.NewRequest("PATCH", "/attendance/1",
		jsonBody(t, dto.UpdateAttendanceRequest{AttendedLectures: &attended}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.updateReq.TotalLectures != nil {
		t.Error("total lectures must stay unset on a partial update")
	}
	if mock.updateReq.AttendedLectures == nil || *mock.updateReq.AttendedLectures != 35 {
		t.Errorf("expected attended 35 to reach the service, got %v", mock.updateReq.AttendedLectures)
	}
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	r := attendanceRouter(&mockAttendanceService{
		updateErr: apperrors.NewNotFoundError("No attendance record found with that ID"),
	})

	attended := 35
	req := httptest.NewRequest("PATCH", "/attendance/99",
		jsonBody(t, dto.UpdateAttendanceRequest{AttendedLectures: &attended}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
