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

type mockAcademicYearService struct {
	createResult *models.AcademicYear
	createErr    error
	getResult    *models.AcademicYear
	getErr       error
	listResult   []*models.AcademicYear
	listErr      error
	updateResult *models.AcademicYear
	updateErr    error
	deleteErr    error
}

func (m *mockAcademicYearService) CreateAcademicYear(_ context.Context, _ dto.CreateAcademicYearRequest) (*models.AcademicYear, error) {
	return m.createResult, m.createErr
}
func (m *mockAcademicYearService) GetAcademicYearByID(_ context.Context, _ int64) (*models.AcademicYear, error) {
	return m.getResult, m.getErr
}
func (m *mockAcademicYearService) GetAllAcademicYears(_ context.Context) ([]*models.AcademicYear, error) {
	return m.listResult, m.listErr
}
func (m *mockAcademicYearService) UpdateAcademicYear(_ context.Context, _ int64, _ dto.UpdateAcademicYearRequest) (*models.AcademicYear, error) {
	return m.updateResult, m.updateErr
}
func (m *mockAcademicYearService) DeleteAcademicYear(_ context.Context, _ int64) error {
	return m.deleteErr
}

func academicYearRouter(mock *mockAcademicYearService) *gin.Engine {
	c := NewAcademicYearController(mock)
	r := gin.New()
	r.GET("/academic-years", c.GetAllAcademicYears)
	r.POST("/academic-years", c.CreateAcademicYear)
	r.GET("/academic-years/:id", c.GetAcademicYear)
	r.PATCH("/academic-years/:id", c.UpdateAcademicYear)
	r.DELETE("/academic-years/:id", c.DeleteAcademicYear)
	return r
}

func TestGetAllAcademicYears(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{
		listResult: []*models.AcademicYear{
			{ID: 1, YearName: "FY"},
			{ID: 2, YearName: "SY"},
		},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/academic-years", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Status != "success" {
		t.Errorf("expected status success, got %s", env.Status)
	}
	if env.Results == nil || *env.Results != 2 {
		t.Errorf("expected results 2, got %v", env.Results)
	}
	if _, ok := env.Data["years"]; !ok {
		t.Error("expected data to carry the years key")
	}
}

func TestCreateAcademicYear(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{
		createResult: &models.AcademicYear{ID: 1, YearName: "FY"},
	})

	req := httptest.NewRequest("POST", "/academic-years",
		jsonBody(t, dto.CreateAcademicYearRequest{YearName: "FY"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if _, ok := env.Data["year"]; !ok {
		t.Error("expected data to carry the year key")
	}
}

func TestCreateAcademicYearBindFailure(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{})

	req := httptest.NewRequest("POST", "/academic-years",
		jsonBody(t, gin.H{"year_name": ""}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Please provide a valid year name (e.g., FY, SY, TY)" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestCreateAcademicYearConflict(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{
		createErr: apperrors.NewConflictError("Academic year already exists"),
	})

	req := httptest.NewRequest("POST", "/academic-years",
		jsonBody(t, dto.CreateAcademicYearRequest{YearName: "FY"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Status != "fail" {
		t.Errorf("expected status fail, got %s", env.Status)
	}
	if env.Message != "Academic year already exists" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetAcademicYearNotFound(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{
		getErr: apperrors.NewNotFoundError("No academic year found with that ID"),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/academic-years/99", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "No academic year found with that ID" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetAcademicYearInvalidID(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/academic-years/abc", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Invalid ID" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestDeleteAcademicYear(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/academic-years/1", nil))

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", w.Body.String())
	}
}

func TestDeleteAcademicYearWithDivisions(t *testing.T) {
	r := academicYearRouter(&mockAcademicYearService{
		deleteErr: apperrors.NewDependencyError("Cannot delete academic year with existing divisions"),
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/academic-years/1", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Cannot delete academic year with existing divisions" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
