package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/attendance"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// ManagerService serves the organization-wide views. Authorization (manager
// role) is the transport middleware's job; the service trusts its caller.
type ManagerService struct {
	users   domain.UserRepository
	records domain.AttendanceRepository
	loc     *time.Location
	log     *zap.Logger

	now func() time.Time
}

func NewManagerService(users domain.UserRepository, records domain.AttendanceRepository, loc *time.Location, log *zap.Logger) *ManagerService {
	return &ManagerService{users: users, records: records, loc: loc, log: log, now: time.Now}
}

// AllAttendance returns the joined attendance-with-user dataset, employees
// only, newest first.
func (s *ManagerService) AllAttendance() ([]domain.AttendanceWithUser, error) {
	return s.records.ListWithUsers("", 0)
}

// EmployeeAttendance returns one employee's joined records; an unknown id
// is ErrNotFound.
func (s *ManagerService) EmployeeAttendance(userID string) ([]domain.AttendanceWithUser, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return s.records.ListByUserWithUser(userID)
}

// TeamSummaryResult is the team summary plus the per-department presence
// breakdown.
type TeamSummaryResult struct {
	attendance.TeamSummary
	Departments []attendance.DepartmentCount `json:"departments"`
}

func (s *ManagerService) TeamSummary() (*TeamSummaryResult, error) {
	employees, todays, err := s.todayState()
	if err != nil {
		return nil, err
	}
	byUser := make(map[string][]domain.Attendance, len(employees))
	for i := range employees {
		recs, err := s.records.ListByUser(employees[i].ID)
		if err != nil {
			return nil, err
		}
		byUser[employees[i].ID] = recs
	}
	return &TeamSummaryResult{
		TeamSummary: attendance.Team(employees, todays, byUser, s.loc),
		Departments: attendance.ByDepartment(employees, todays),
	}, nil
}

// TodayStatus is the roster view: every employee with today's state,
// absentees included.
func (s *ManagerService) TodayStatus() ([]attendance.RosterEntry, error) {
	employees, todays, err := s.todayState()
	if err != nil {
		return nil, err
	}
	return attendance.Roster(employees, todays), nil
}

func (s *ManagerService) Departments() ([]string, error) {
	return s.users.ListDepartments()
}

func (s *ManagerService) todayState() ([]domain.User, []domain.Attendance, error) {
	employees, err := s.users.ListByRole(domain.RoleEmployee)
	if err != nil {
		return nil, nil, err
	}
	todays, err := s.records.ListByDate(attendance.DateOf(s.now(), s.loc))
	if err != nil {
		return nil, nil, err
	}
	return employees, todays, nil
}
