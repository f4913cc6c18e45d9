package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

func newAttendanceService(records domain.AttendanceRepository) *AttendanceService {
	return NewAttendanceService(records, nil, time.UTC, zap.NewNop())
}

func at(s *AttendanceService, t time.Time) {
	s.now = func() time.Time { return t }
}

func TestCheckInClassifiesOnArrival(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newAttendanceService(repo)

	at(svc, time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC))
	rec, err := svc.CheckIn("u1")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", rec.Date)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Nil(t, rec.CheckOutTime)

	at(svc, time.Date(2026, 3, 3, 9, 30, 0, 0, time.UTC))
	rec, err = svc.CheckIn("u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, rec.Status)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})
	at(svc, time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC))

	_, err := svc.CheckIn("u1")
	require.NoError(t, err)

	at(svc, time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC))
	_, err = svc.CheckIn("u1")
	assert.ErrorIs(t, err, domain.ErrAlreadyCheckedIn)
}

func TestCheckOutComputesHours(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	at(svc, time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC))
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)

	at(svc, time.Date(2026, 3, 2, 17, 15, 0, 0, time.UTC))
	rec, err := svc.CheckOut("u1")
	require.NoError(t, err)
	require.NotNil(t, rec.TotalHours)
	assert.Equal(t, 8.5, *rec.TotalHours)
	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestCheckOutPreservesLateStatus(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	at(svc, time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC))
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)

	at(svc, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	rec, err := svc.CheckOut("u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, rec.Status)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})
	at(svc, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut("u1")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestCheckOutTwice(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	at(svc, time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC))
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)

	at(svc, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))
	_, err = svc.CheckOut("u1")
	require.NoError(t, err)

	at(svc, time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	_, err = svc.CheckOut("u1")
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestCheckOutBeforeCheckIn(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	checkIn := time.Date(2026, 3, 2, 8, 45, 0, 0, time.UTC)
	at(svc, checkIn)
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)

	// same instant: not strictly after check-in
	_, err = svc.CheckOut("u1")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// The full week-one flow: two on-time days, one late day, closed out with
// real hours, then summarized.
func TestWorkWeekEndToEnd(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	day := func(d, h, m int) time.Time {
		return time.Date(2026, 3, d, h, m, 0, 0, time.UTC)
	}

	at(svc, day(2, 8, 45))
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)
	at(svc, day(2, 17, 15))
	rec, err := svc.CheckOut("u1")
	require.NoError(t, err)
	assert.Equal(t, 8.5, *rec.TotalHours)

	at(svc, day(3, 9, 30))
	_, err = svc.CheckIn("u1")
	require.NoError(t, err)
	at(svc, day(3, 17, 0))
	_, err = svc.CheckOut("u1")
	require.NoError(t, err)

	at(svc, day(4, 8, 0))
	_, err = svc.CheckIn("u1")
	require.NoError(t, err)
	at(svc, day(4, 16, 0))
	_, err = svc.CheckOut("u1")
	require.NoError(t, err)

	at(svc, day(4, 18, 0))
	sum, err := svc.MonthlySummary("u1")
	require.NoError(t, err)
	assert.Equal(t, "March", sum.Month)
	assert.Equal(t, 2026, sum.Year)
	assert.Equal(t, 3, sum.TotalPresent)
	assert.Equal(t, 1, sum.TotalLate)
	assert.Equal(t, 1, sum.TotalAbsent) // March 1 elapsed with no record
	assert.Equal(t, 4, sum.TotalDays)
	assert.Equal(t, "24.00", sum.TotalWorkHours)
}

func TestHistoryAnnotatesHalfDay(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})

	at(svc, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	_, err := svc.CheckIn("u1")
	require.NoError(t, err)
	at(svc, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	_, err = svc.CheckOut("u1")
	require.NoError(t, err)

	entries, err := svc.History("u1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, attendance.StatusLate, entries[0].Status)
	assert.Equal(t, attendance.StatusHalfDay, entries[0].DisplayStatus)
	assert.Equal(t, "2.00", entries[0].WorkDuration)
}

func TestTodayNilWhenAbsent(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})
	at(svc, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))

	rec, err := svc.Today("u1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCheckInRequiresUser(t *testing.T) {
	svc := newAttendanceService(&fakeAttendanceRepo{})
	_, err := svc.CheckIn("")
	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
}
