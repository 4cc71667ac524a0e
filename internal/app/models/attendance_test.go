package models

import "testing"

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name     string
		attended int
		total    int
		want     float64
	}{
		{"three quarters", 30, 40, 75.00},
		{"rounds to two decimals", 7, 30, 23.33},
		{"rounds up", 2, 3, 66.67},
		{"full attendance", 40, 40, 100.00},
		{"zero attended", 0, 40, 0},
		{"zero total lectures", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attendance{TotalLectures: tt.total, AttendedLectures: tt.attended}
			if got := a.Percentage(); got != tt.want {
				t.Errorf("Percentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAttendanceIsDefaulter(t *testing.T) {
	// 30/40 = exactly 75.00
	exact := Attendance{TotalLectures: 40, AttendedLectures: 30}
	if exact.IsDefaulter(75) {
		t.Error("student exactly at the threshold must not be a defaulter")
	}

	below := Attendance{TotalLectures: 40, AttendedLectures: 29}
	if !below.IsDefaulter(75) {
		t.Error("student below the threshold must be a defaulter")
	}

	above := Attendance{TotalLectures: 40, AttendedLectures: 31}
	if above.IsDefaulter(75) {
		t.Error("student above the threshold must not be a defaulter")
	}
}
