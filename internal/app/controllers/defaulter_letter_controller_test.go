package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/middleware"
)

type mockDefaulterService struct {
	generateResult []dto.GeneratedLetter
	generateErr    error
	generatedBy    int64
	generateReq    dto.GenerateLettersRequest
	listResult     []*models.DefaulterLetter
	listErr        error
	listFilter     dto.DefaulterLetterFilter
}

func (m *mockDefaulterService) GenerateLetters(_ context.Context, generatedBy int64, req dto.GenerateLettersRequest) ([]dto.GeneratedLetter, error) {
	m.generatedBy = generatedBy
	m.generateReq = req
	return m.generateResult, m.generateErr
}
func (m *mockDefaulterService) GetLetters(_ context.Context, filter dto.DefaulterLetterFilter) ([]*models.DefaulterLetter, error) {
	m.listFilter = filter
	return m.listResult, m.listErr
}

func defaulterRouter(mock *mockDefaulterService, user *models.User) *gin.Engine {
	c := NewDefaulterLetterController(mock)
	r := gin.New()
	inject := func(ctx *gin.Context) {
		if user != nil {
			ctx.Set(middleware.CurrentUserKey, user)
		}
		ctx.Next()
	}
	r.POST("/defaulter-letters", inject, c.GenerateDefaulterLetters)
	r.GET("/defaulter-letters", inject, c.GetDefaulterLetters)
	return r
}

func TestGenerateDefaulterLetters(t *testing.T) {
	mock := &mockDefaulterService{
		generateResult: []dto.GeneratedLetter{
			{
				StudentID:            7,
				StudentName:          "R. S. Patil",
				Subject:              "Data Structures",
				AttendancePercentage: 62.50,
				LetterPath:           "/letters/defaulter_72230045B_CS201_3_2026.pdf",
			},
		},
	}
	r := defaulterRouter(mock, &models.User{ID: 11, Role: models.RoleCoordinator})

	req := httptest.NewRequest("POST", "/defaulter-letters",
		jsonBody(t, dto.GenerateLettersRequest{Month: 3, Year: 2026}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Results == nil || *env.Results != 1 {
		t.Errorf("expected results 1, got %v", env.Results)
	}
	if _, ok := env.Data["letters"]; !ok {
		t.Error("expected data to carry the letters key")
	}
	if mock.generatedBy != 11 {
		t.Errorf("expected the requesting user's id 11, got %d", mock.generatedBy)
	}
	if mock.generateReq.Month != 3 || mock.generateReq.Year != 2026 {
		t.Errorf("unexpected request forwarded to service: %+v", mock.generateReq)
	}
}

func TestGenerateDefaulterLettersNobodyBelowThreshold(t *testing.T) {
	r := defaulterRouter(&mockDefaulterService{}, &models.User{ID: 11, Role: models.RoleHOD})

	req := httptest.NewRequest("POST", "/defaulter-letters",
		jsonBody(t, dto.GenerateLettersRequest{Month: 3, Year: 2026}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "No defaulters found for the given criteria" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGenerateDefaulterLettersBindFailure(t *testing.T) {
	r := defaulterRouter(&mockDefaulterService{}, &models.User{ID: 11, Role: models.RoleHOD})

	req := httptest.NewRequest("POST", "/defaulter-letters",
		jsonBody(t, gin.H{"month": 13, "year": 2026}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Please provide month and year" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetDefaulterLettersFilters(t *testing.T) {
	mock := &mockDefaulterService{
		listResult: []*models.DefaulterLetter{{ID: 1, StudentID: 7}},
	}
	r := defaulterRouter(mock, &models.User{ID: 11, Role: models.RoleTeacher})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/defaulter-letters?studentId=7&month=3&year=2026", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if mock.listFilter.StudentID == nil || *mock.listFilter.StudentID != 7 {
		t.Errorf("expected student filter 7, got %v", mock.listFilter.StudentID)
	}
	if mock.listFilter.Month == nil || *mock.listFilter.Month != 3 {
		t.Errorf("expected month filter 3, got %v", mock.listFilter.Month)
	}
	if mock.listFilter.SubjectID != nil {
		t.Errorf("expected no subject filter, got %v", mock.listFilter.SubjectID)
	}
}

func TestGetDefaulterLettersInvalidFilter(t *testing.T) {
	r := defaulterRouter(&mockDefaulterService{}, &models.User{ID: 11, Role: models.RoleTeacher})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/defaulter-letters?month=march", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Invalid query parameter: month" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
