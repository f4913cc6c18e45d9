package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/cache"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// DashboardService composes engine outputs into the two role-specific
// views. The manager view is an org-wide scan, so it goes through the
// read-through cache when one is configured.
type DashboardService struct {
	users    domain.UserRepository
	records  domain.AttendanceRepository
	cache    *cache.Cache // nil disables caching
	cacheTTL time.Duration
	loc      *time.Location
	log      *zap.Logger

	now func() time.Time
}

func NewDashboardService(users domain.UserRepository, records domain.AttendanceRepository, c *cache.Cache, ttl time.Duration, loc *time.Location, log *zap.Logger) *DashboardService {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &DashboardService{users: users, records: records, cache: c, cacheTTL: ttl, loc: loc, log: log, now: time.Now}
}

const (
	todayNotCheckedIn = "Not Checked-in"

	// managerDashboardKey caches the org-wide dashboard; attendance writes
	// invalidate it.
	managerDashboardKey = "dashboard:manager"
)

type EmployeeDashboard struct {
	TodayStatus       string                    `json:"todayStatus"`
	Today             *HistoryEntry             `json:"today"`
	MonthSummary      attendance.MonthlySummary `json:"monthSummary"`
	AttendanceHistory []HistoryEntry            `json:"attendanceHistory"`
}

func (s *DashboardService) EmployeeDashboard(userID string) (*EmployeeDashboard, error) {
	now := s.now()
	today := attendance.DateOf(now, s.loc)

	// an open session from a missed check-out takes precedence over
	// today's record, so the user is prompted to close it
	current, err := s.records.FindOpen(userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		if current, err = s.records.FindByUserAndDate(userID, today); err != nil {
			return nil, err
		}
	}

	status := todayNotCheckedIn
	var todayEntry *HistoryEntry
	if current != nil {
		if current.CheckOutTime != nil {
			status = attendance.RosterCheckedOut
		} else {
			status = attendance.RosterCheckedIn
		}
		todayEntry = &HistoryEntry{
			Attendance:    *current,
			DisplayStatus: attendance.DisplayStatus(current, s.loc),
			WorkDuration:  attendance.FormatHours(current.TotalHours),
		}
	}

	first, last := attendance.MonthWindow(now, s.loc)
	monthRecs, err := s.records.ListByUserBetween(userID,
		attendance.DateOf(first, s.loc), attendance.DateOf(last, s.loc))
	if err != nil {
		return nil, err
	}

	thirtyAgo := attendance.DateOf(now.AddDate(0, 0, -30), s.loc)
	recent, err := s.records.ListByUserBetween(userID, thirtyAgo, today)
	if err != nil {
		return nil, err
	}
	history := make([]HistoryEntry, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- { // newest first
		history = append(history, HistoryEntry{
			Attendance:    recent[i],
			DisplayStatus: attendance.DisplayStatus(&recent[i], s.loc),
			WorkDuration:  attendance.FormatHours(recent[i].TotalHours),
		})
	}

	return &EmployeeDashboard{
		TodayStatus:       status,
		Today:             todayEntry,
		MonthSummary:      attendance.Monthly(monthRecs, now, s.loc),
		AttendanceHistory: history,
	}, nil
}

type ManagerDashboardSummary struct {
	TotalEmployees int `json:"totalEmployees"`
	PresentToday   int `json:"presentToday"`
	AbsentToday    int `json:"absentToday"`
	LateToday      int `json:"lateToday"`
}

type TeamWorkDuration struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	TotalWorkDuration string `json:"totalWorkDuration"`
}

type AbsentEmployee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ManagerDashboard struct {
	Summary              ManagerDashboardSummary     `json:"summary"`
	AllAttendance        []domain.AttendanceWithUser `json:"allAttendance"`
	TeamWorkDuration     []TeamWorkDuration          `json:"teamWorkDuration"`
	AbsentEmployeesToday []AbsentEmployee            `json:"absentEmployeesToday"`
}

func (s *DashboardService) ManagerDashboard(ctx context.Context) (*ManagerDashboard, error) {
	if s.cache == nil {
		return s.buildManagerDashboard()
	}
	return cache.GetOrLoadJSON(s.cache, ctx, managerDashboardKey, s.cacheTTL,
		func(context.Context) (*ManagerDashboard, error) {
			return s.buildManagerDashboard()
		})
}

func (s *DashboardService) buildManagerDashboard() (*ManagerDashboard, error) {
	now := s.now()
	today := attendance.DateOf(now, s.loc)

	employees, err := s.users.ListByRole(domain.RoleEmployee)
	if err != nil {
		return nil, err
	}
	todays, err := s.records.ListByDate(today)
	if err != nil {
		return nil, err
	}

	employeeIDs := make(map[string]domain.User, len(employees))
	for i := range employees {
		employeeIDs[employees[i].ID] = employees[i]
	}

	present, late := 0, 0
	presentIDs := make(map[string]struct{}, len(todays))
	for i := range todays {
		if _, ok := employeeIDs[todays[i].UserID]; !ok {
			continue
		}
		present++
		presentIDs[todays[i].UserID] = struct{}{}
		if attendance.IsLate(todays[i].CheckInTime, s.loc) {
			late++
		}
	}
	absent := len(employees) - present
	if absent < 0 {
		absent = 0
	}

	recentJoined, err := s.records.ListWithUsers("", 50)
	if err != nil {
		return nil, err
	}

	sevenAgo := attendance.DateOf(now.AddDate(0, 0, -7), s.loc)
	weekRows, err := s.records.ListWithUsers(sevenAgo, 0)
	if err != nil {
		return nil, err
	}
	totals := map[string]float64{}
	order := []string{}
	names := map[string]string{}
	for i := range weekRows {
		uid := weekRows[i].UserID
		if _, seen := totals[uid]; !seen {
			order = append(order, uid)
			names[uid] = weekRows[i].UserName
		}
		if weekRows[i].TotalHours != nil {
			totals[uid] += *weekRows[i].TotalHours
		}
	}
	durations := make([]TeamWorkDuration, 0, len(order))
	for _, uid := range order {
		rounded := attendance.Round2(totals[uid])
		durations = append(durations, TeamWorkDuration{
			ID:                uid,
			Name:              names[uid],
			TotalWorkDuration: attendance.FormatHours(&rounded),
		})
	}

	absentees := make([]AbsentEmployee, 0)
	for i := range employees {
		if _, ok := presentIDs[employees[i].ID]; ok {
			continue
		}
		absentees = append(absentees, AbsentEmployee{
			ID:    employees[i].ID,
			Name:  employees[i].Name,
			Email: employees[i].Email,
		})
	}

	return &ManagerDashboard{
		Summary: ManagerDashboardSummary{
			TotalEmployees: len(employees),
			PresentToday:   present,
			AbsentToday:    absent,
			LateToday:      late,
		},
		AllAttendance:        recentJoined,
		TeamWorkDuration:     durations,
		AbsentEmployeesToday: absentees,
	}, nil
}
