package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

func TestRows(t *testing.T) {
	in := time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC)
	out := time.Date(2026, 3, 2, 17, 15, 0, 0, time.UTC)
	hours := 8.5

	records := []domain.AttendanceWithUser{
		{
			Attendance: domain.Attendance{
				UserID:       "u1",
				Date:         "2026-03-02",
				CheckInTime:  in,
				CheckOutTime: &out,
				TotalHours:   &hours,
			},
			UserName:  "Asha",
			UserEmail: "asha@corp.com",
		},
		{
			Attendance: domain.Attendance{
				UserID:      "u2",
				Date:        "2026-03-02",
				CheckInTime: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			},
			UserName:  "Ravi",
			UserEmail: "ravi@corp.com",
		},
	}

	rows := Rows(records, time.UTC)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"u1", "Asha", "asha@corp.com", "2026-03-02", "2026-03-02 08:45:00", "2026-03-02 17:15:00", "8.50"}, rows[0])
	// open session: no check-out timestamp, hours default to 0.00
	assert.Equal(t, []string{"u2", "Ravi", "ravi@corp.com", "2026-03-02", "2026-03-02 09:30:00", "", "0.00"}, rows[1])
}

func TestRowsRendersInLocation(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2026, 3, 2, 3, 15, 0, 0, time.UTC) // 08:45 IST

	rows := Rows([]domain.AttendanceWithUser{
		{Attendance: domain.Attendance{UserID: "u1", Date: "2026-03-02", CheckInTime: in}},
	}, ist)
	require.Len(t, rows, 1)
	assert.Equal(t, "2026-03-02 08:45:00", rows[0][4])
}

func TestCSV(t *testing.T) {
	hours := 7.25
	out := time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC)
	data, err := CSV([]domain.AttendanceWithUser{
		{
			Attendance: domain.Attendance{
				UserID:       "u1",
				Date:         "2026-03-02",
				CheckInTime:  time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC),
				CheckOutTime: &out,
				TotalHours:   &hours,
			},
			UserName:  "Asha, A.",
			UserEmail: "asha@corp.com",
		},
	}, time.UTC)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "User ID,Name,Email,Date,Check In Time,Check Out Time,Total Hours", lines[0])
	// comma in the name forces quoting
	assert.Contains(t, lines[1], `"Asha, A."`)
	assert.Contains(t, lines[1], "7.25")
}

func TestCSVEmpty(t *testing.T) {
	data, err := CSV(nil, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "User ID,Name,Email,Date,Check In Time,Check Out Time,Total Hours\n", string(data))
}
