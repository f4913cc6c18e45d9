package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/cache"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/pkg/utils"
)

// AttendanceService owns the per-user check-in/check-out state machine and
// the employee-facing reads. It is stateless apart from its dependencies;
// every call is one synchronous unit of work.
type AttendanceService struct {
	records domain.AttendanceRepository
	cache   *cache.Cache // nil disables invalidation
	loc     *time.Location
	log     *zap.Logger

	// now is the clock; tests pin it.
	now func() time.Time
}

func NewAttendanceService(records domain.AttendanceRepository, c *cache.Cache, loc *time.Location, log *zap.Logger) *AttendanceService {
	return &AttendanceService{records: records, cache: c, loc: loc, log: log, now: time.Now}
}

// invalidateDashboards drops cached aggregates made stale by a write.
func (s *AttendanceService) invalidateDashboards() {
	if s.cache != nil {
		s.cache.Invalidate(context.Background(), managerDashboardKey)
	}
}

// CheckIn opens today's record. Lateness is decided here, once, from the
// check-in hour; the unique (user, date) index rejects a second check-in.
func (s *AttendanceService) CheckIn(userID string) (*domain.Attendance, error) {
	if userID == "" {
		return nil, domain.Validation("user id is required")
	}
	now := s.now()
	rec := &domain.Attendance{
		ID:          utils.NewID(),
		UserID:      userID,
		Date:        attendance.DateOf(now, s.loc),
		CheckInTime: now,
		Status:      attendance.Classify(now, s.loc),
	}
	if err := s.records.Create(rec); err != nil {
		return nil, err
	}
	s.invalidateDashboards()
	s.log.Info("check-in",
		zap.String("user_id", userID),
		zap.String("date", rec.Date),
		zap.String("status", rec.Status),
	)
	return rec, nil
}

// CheckOut closes today's open record, computing total hours. The status
// assigned at check-in is preserved: lateness describes the arrival and is
// not forgiven by leaving.
func (s *AttendanceService) CheckOut(userID string) (*domain.Attendance, error) {
	if userID == "" {
		return nil, domain.Validation("user id is required")
	}
	now := s.now()
	date := attendance.DateOf(now, s.loc)
	rec, err := s.records.FindByUserAndDate(userID, date)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNoActiveSession
	}
	if !now.After(rec.CheckInTime) {
		return nil, domain.Validation("check-out must be after check-in")
	}
	hours := attendance.Hours(rec.CheckInTime, now)
	updated, err := s.records.CloseOut(userID, date, now, hours, rec.Status)
	if err != nil {
		return nil, err
	}
	s.invalidateDashboards()
	s.log.Info("check-out",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.Float64("total_hours", hours),
	)
	return updated, nil
}

// HistoryEntry is a record plus its display status, which folds the
// half-day refinement in.
type HistoryEntry struct {
	domain.Attendance
	DisplayStatus string `json:"displayStatus"`
	WorkDuration  string `json:"workDuration"`
}

func (s *AttendanceService) History(userID string) ([]HistoryEntry, error) {
	recs, err := s.records.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.annotate(recs), nil
}

// Today returns the user's record for today, nil when absent so far.
func (s *AttendanceService) Today(userID string) (*domain.Attendance, error) {
	return s.records.FindByUserAndDate(userID, attendance.DateOf(s.now(), s.loc))
}

// MonthlySummary aggregates the current month window [first, today].
func (s *AttendanceService) MonthlySummary(userID string) (attendance.MonthlySummary, error) {
	now := s.now()
	first, last := attendance.MonthWindow(now, s.loc)
	recs, err := s.records.ListByUserBetween(userID,
		attendance.DateOf(first, s.loc), attendance.DateOf(last, s.loc))
	if err != nil {
		return attendance.MonthlySummary{}, err
	}
	return attendance.Monthly(recs, now, s.loc), nil
}

func (s *AttendanceService) annotate(recs []domain.Attendance) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(recs))
	for i := range recs {
		out = append(out, HistoryEntry{
			Attendance:    recs[i],
			DisplayStatus: attendance.DisplayStatus(&recs[i], s.loc),
			WorkDuration:  attendance.FormatHours(recs[i].TotalHours),
		})
	}
	return out
}
