// Package export flattens the joined attendance dataset into the tabular
// form handed to downstream serializers.
package export

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// Header is the fixed column set of the attendance export.
var Header = []string{"User ID", "Name", "Email", "Date", "Check In Time", "Check Out Time", "Total Hours"}

const timestampLayout = "2006-01-02 15:04:05"

// Rows shapes joined records into export rows. Missing total hours render
// as "0.00", missing timestamps as empty strings.
func Rows(records []domain.AttendanceWithUser, loc *time.Location) [][]string {
	rows := make([][]string, 0, len(records))
	for i := range records {
		r := &records[i]
		checkOut := ""
		if r.CheckOutTime != nil {
			checkOut = r.CheckOutTime.In(loc).Format(timestampLayout)
		}
		rows = append(rows, []string{
			r.UserID,
			r.UserName,
			r.UserEmail,
			r.Date,
			r.CheckInTime.In(loc).Format(timestampLayout),
			checkOut,
			attendance.FormatHours(r.TotalHours),
		})
	}
	return rows
}

// CSV serializes header plus rows.
func CSV(records []domain.AttendanceWithUser, loc *time.Location) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(Rows(records, loc)); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
