package letters

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Letter holds everything printed on a one-page defaulter notice.
type Letter struct {
	StudentName string
	PRN         string
	SubjectName string
	SubjectCode string
	Month       int
	Year        int
	Percentage  float64
}

// NoticeLine is the fixed closing line of every defaulter letter.
const NoticeLine = "This is to inform you that your attendance is below the required threshold."

// FileName builds the content-addressed file name for a letter, so
// regenerating for the same student/subject/period overwrites the
// prior file.
func FileName(prn, subjectCode string, month, year int) string {
	return fmt.Sprintf("defaulter_%s_%s_%d_%d.pdf", prn, subjectCode, month, year)
}

// Render produces the PDF bytes for one defaulter notice.
func Render(l Letter) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 12, "DEFAULTER NOTICE", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 12)
	line := func(text string) {
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	}
	line(fmt.Sprintf("Name: %s", l.StudentName))
	line(fmt.Sprintf("PRN: %s", l.PRN))
	line(fmt.Sprintf("Subject: %s (%s)", l.SubjectName, l.SubjectCode))
	line(fmt.Sprintf("Month: %d/%d", l.Month, l.Year))
	line(fmt.Sprintf("Attendance Percentage: %.2f%%", l.Percentage))

	pdf.Ln(8)
	pdf.MultiCell(0, 8, NoticeLine, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render letter: %w", err)
	}
	return buf.Bytes(), nil
}
