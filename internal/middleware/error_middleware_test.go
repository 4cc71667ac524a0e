package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/swapnilk/acadesk/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func handleError(t *testing.T, err error) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return w.Code, body
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	code, body := handleError(t, apperrors.NewNotFoundError("No academic year found with that ID"))
	if code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if body.Status != "fail" {
		t.Errorf("expected status fail, got %s", body.Status)
	}
	if body.Message != "No academic year found with that ID" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHandleAPIErrorConflictAndDependency(t *testing.T) {
	code, body := handleError(t, apperrors.NewConflictError("Subject code already in use"))
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for conflict, got %d", code)
	}
	if body.Message != "Subject code already in use" {
		t.Errorf("unexpected message %q", body.Message)
	}

	code, body = handleError(t, apperrors.NewDependencyError("Cannot delete batch with existing students"))
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for dependency, got %d", code)
	}
	if body.Message != "Cannot delete batch with existing students" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	code, body := handleError(t, apperrors.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
	if body.Message != "Incorrect email or password" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHandleAPIErrorPermissionDenied(t *testing.T) {
	code, body := handleError(t, apperrors.ErrPermissionDenied)
	if code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
	if body.Message != "You do not have permission to perform this action" {
		t.Errorf("unexpected message %q", body.Message)
	}
}

func TestHandleAPIErrorUnknownStaysGeneric(t *testing.T) {
	code, body := handleError(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	if body.Status != "error" {
		t.Errorf("expected status error, got %s", body.Status)
	}
	if body.Message != "Something went wrong!" {
		t.Errorf("internal error detail leaked: %q", body.Message)
	}
}
