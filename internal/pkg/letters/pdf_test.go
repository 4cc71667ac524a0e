package letters

import (
	"bytes"
	"testing"
)

func TestFileName(t *testing.T) {
	got := FileName("72230045B", "CS201", 3, 2026)
	want := "defaulter_72230045B_CS201_3_2026.pdf"
	if got != want {
		t.Errorf("FileName() = %q, want %q", got, want)
	}
}

func TestRender(t *testing.T) {
	data, err := Render(Letter{
		StudentName: "R. S. Patil",
		PRN:         "72230045B",
		SubjectName: "Data Structures",
		SubjectCode: "CS201",
		Month:       3,
		Year:        2026,
		Percentage:  62.50,
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PDF output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF magic header, got %q", data[:4])
	}
}
