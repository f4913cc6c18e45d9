package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

func newDashboardService(users *fakeUserRepo, records *fakeAttendanceRepo, now time.Time) *DashboardService {
	svc := NewDashboardService(users, records, nil, 0, time.UTC, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}

func TestEmployeeDashboardNotCheckedIn(t *testing.T) {
	users, records := seedTeam(t)
	svc := newDashboardService(users, records, time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC))

	dash, err := svc.EmployeeDashboard("u1")
	require.NoError(t, err)
	assert.Equal(t, todayNotCheckedIn, dash.TodayStatus)
	assert.Nil(t, dash.Today)
	assert.Empty(t, dash.AttendanceHistory)
}

func TestEmployeeDashboardCheckedIn(t *testing.T) {
	users, records := seedTeam(t)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	records.records = []domain.Attendance{
		{ID: "a1", UserID: "u1", Date: "2026-03-04",
			CheckInTime: time.Date(2026, 3, 4, 8, 45, 0, 0, time.UTC),
			Status:      attendance.StatusPresent},
	}

	svc := newDashboardService(users, records, now)
	dash, err := svc.EmployeeDashboard("u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.RosterCheckedIn, dash.TodayStatus)
	require.NotNil(t, dash.Today)
	assert.Equal(t, attendance.StatusPresent, dash.Today.DisplayStatus)
	assert.Equal(t, "0.00", dash.Today.WorkDuration)
	assert.Equal(t, 1, dash.MonthSummary.TotalPresent)
}

func TestEmployeeDashboardOpenSessionTakesPrecedence(t *testing.T) {
	users, records := seedTeam(t)
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	// yesterday's record never closed; nothing yet today
	records.records = []domain.Attendance{
		{ID: "a1", UserID: "u1", Date: "2026-03-03",
			CheckInTime: time.Date(2026, 3, 3, 8, 45, 0, 0, time.UTC),
			CreatedAt:   time.Date(2026, 3, 3, 8, 45, 0, 0, time.UTC),
			Status:      attendance.StatusPresent},
	}

	svc := newDashboardService(users, records, now)
	dash, err := svc.EmployeeDashboard("u1")
	require.NoError(t, err)
	assert.Equal(t, attendance.RosterCheckedIn, dash.TodayStatus)
	require.NotNil(t, dash.Today)
	assert.Equal(t, "2026-03-03", dash.Today.Date)
}

func TestEmployeeDashboardHistoryNewestFirst(t *testing.T) {
	users, records := seedTeam(t)
	now := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)
	records.records = []domain.Attendance{
		closed("a1", "u1", time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC), 8),
		closed("a2", "u1", time.Date(2026, 3, 3, 8, 30, 0, 0, time.UTC), 7.5),
	}

	svc := newDashboardService(users, records, now)
	dash, err := svc.EmployeeDashboard("u1")
	require.NoError(t, err)
	require.Len(t, dash.AttendanceHistory, 2)
	assert.Equal(t, "2026-03-03", dash.AttendanceHistory[0].Date)
	assert.Equal(t, "2026-03-02", dash.AttendanceHistory[1].Date)
	assert.Equal(t, "7.50", dash.AttendanceHistory[0].WorkDuration)
}

func TestManagerDashboardCounts(t *testing.T) {
	users, records := seedTeam(t)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	records.records = []domain.Attendance{
		{ID: "a1", UserID: "u1", Date: "2026-03-04",
			CheckInTime: time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC),
			Status:      attendance.StatusLate},
		closed("a2", "u1", time.Date(2026, 3, 3, 8, 30, 0, 0, time.UTC), 8),
		closed("a3", "u2", time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC), 6),
	}

	svc := newDashboardService(users, records, now)
	dash, err := svc.ManagerDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, dash.Summary.TotalEmployees)
	assert.Equal(t, 1, dash.Summary.PresentToday)
	assert.Equal(t, 1, dash.Summary.AbsentToday)
	assert.Equal(t, 1, dash.Summary.LateToday)

	require.Len(t, dash.AbsentEmployeesToday, 1)
	assert.Equal(t, "u2", dash.AbsentEmployeesToday[0].ID)

	require.Len(t, dash.TeamWorkDuration, 2)
	totals := map[string]string{}
	for _, d := range dash.TeamWorkDuration {
		totals[d.ID] = d.TotalWorkDuration
	}
	assert.Equal(t, "8.00", totals["u1"])
	assert.Equal(t, "6.00", totals["u2"])
}

func TestManagerDashboardEmptyOrg(t *testing.T) {
	users := &fakeUserRepo{}
	records := &fakeAttendanceRepo{users: users}
	svc := newDashboardService(users, records, time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC))

	dash, err := svc.ManagerDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, dash.Summary.TotalEmployees)
	assert.Equal(t, 0, dash.Summary.AbsentToday)
	assert.Empty(t, dash.AbsentEmployeesToday)
}
