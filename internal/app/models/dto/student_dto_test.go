package dto

import (
	"testing"

	"github.com/swapnilk/acadesk/internal/app/models"
)

func strPtr(s string) *string { return &s }

func TestUpdateStudentRequestApplyTo(t *testing.T) {
	batchID := int64(3)
	student := &models.Student{
		ID:         1,
		PRN:        "72230045B",
		Name:       "Old Name",
		Email:      "old@college.edu",
		RollNumber: "45",
		BatchID:    &batchID,
	}

	// Only the name is provided; everything else must survive the merge.
	req := UpdateStudentRequest{Name: strPtr("New Name")}
	req.ApplyTo(student)

	if student.Name != "New Name" {
		t.Errorf("expected name to change, got %q", student.Name)
	}
	if student.PRN != "72230045B" {
		t.Errorf("PRN must not change on a partial update, got %q", student.PRN)
	}
	if student.Email != "old@college.edu" {
		t.Errorf("email must not change, got %q", student.Email)
	}
	if student.BatchID == nil || *student.BatchID != 3 {
		t.Errorf("batch must not change, got %v", student.BatchID)
	}
}

func TestUpdateStudentRequestApplyToMovesBatch(t *testing.T) {
	student := &models.Student{ID: 1, PRN: "72230045B", Name: "S"}

	newBatch := int64(7)
	req := UpdateStudentRequest{BatchID: &newBatch}
	req.ApplyTo(student)

	if student.BatchID == nil || *student.BatchID != 7 {
		t.Errorf("expected batch 7, got %v", student.BatchID)
	}
}

func TestUpdateDivisionRequestApplyTo(t *testing.T) {
	division := &models.Division{ID: 2, AcademicYearID: 1, DivisionName: "A"}

	req := UpdateDivisionRequest{DivisionName: strPtr("B")}
	req.ApplyTo(division)

	if division.DivisionName != "B" {
		t.Errorf("expected division name B, got %q", division.DivisionName)
	}
	if division.AcademicYearID != 1 {
		t.Errorf("academic year must not change, got %d", division.AcademicYearID)
	}
}
