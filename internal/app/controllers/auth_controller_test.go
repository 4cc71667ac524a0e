package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/swapnilk/acadesk/internal/app/models"
	"github.com/swapnilk/acadesk/internal/app/models/dto"
	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
)

type mockAuthService struct {
	token string
	user  *models.User
	err   error
}

func (m *mockAuthService) Login(_ context.Context, _ dto.LoginRequest) (string, *models.User, error) {
	return m.token, m.user, m.err
}

func loginRouter(mock *mockAuthService) *gin.Engine {
	c := NewAuthController(mock)
	r := gin.New()
	r.POST("/auth/login", c.Login)
	return r
}

func TestLoginSuccess(t *testing.T) {
	r := loginRouter(&mockAuthService{
		token: "signed-jwt",
		user:  &models.User{ID: 1, Name: "HOD", Email: "hod@college.edu", Role: models.RoleHOD},
	})

	req := httptest.NewRequest("POST", "/auth/login",
		jsonBody(t, dto.LoginRequest{Email: "hod@college.edu", Password: "secret"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Status != "success" {
		t.Errorf("expected status success, got %s", env.Status)
	}
	if env.Token != "signed-jwt" {
		t.Errorf("expected token in envelope, got %q", env.Token)
	}

	var user struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(env.Data["user"], &user); err != nil {
		t.Fatalf("expected user in data: %v", err)
	}
	if user.Email != "hod@college.edu" {
		t.Errorf("unexpected user email %q", user.Email)
	}
	if user.Password != "" {
		t.Error("password hash must never be serialized")
	}
}

func TestLoginMissingFields(t *testing.T) {
	r := loginRouter(&mockAuthService{})

	req := httptest.NewRequest("POST", "/auth/login",
		jsonBody(t, gin.H{"email": "hod@college.edu"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Please provide email and password!" {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	// Unknown email and wrong password produce the identical response,
	// so the endpoint leaks nothing about which accounts exist.
	r := loginRouter(&mockAuthService{err: apperrors.ErrInvalidCredentials})

	req := httptest.NewRequest("POST", "/auth/login",
		jsonBody(t, dto.LoginRequest{Email: "nobody@college.edu", Password: "wrong"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	env := parseEnvelope(t, w)
	if env.Message != "Incorrect email or password" {
		t.Errorf("unexpected message %q", env.Message)
	}
}
