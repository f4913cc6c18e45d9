package attendance

import (
	"sort"
	"time"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// MonthlySummary aggregates one user's records for the current month.
// TotalDays counts every elapsed calendar day including weekends, so
// TotalAbsent charges weekends too; that simplification is deliberate.
type MonthlySummary struct {
	Month          string `json:"month"`
	Year           int    `json:"year"`
	TotalPresent   int    `json:"totalPresent"`
	TotalAbsent    int    `json:"totalAbsent"`
	TotalLate      int    `json:"totalLate"`
	TotalDays      int    `json:"totalDays"`
	TotalWorkHours string `json:"totalWorkHours"`
}

// Monthly computes the summary from the user's records inside the month
// window. Records outside the window are the caller's bug, not filtered
// here.
func Monthly(records []domain.Attendance, now time.Time, loc *time.Location) MonthlySummary {
	present := len(records)
	late := 0
	hours := 0.0
	for i := range records {
		if IsLate(records[i].CheckInTime, loc) {
			late++
		}
		if records[i].TotalHours != nil {
			hours += *records[i].TotalHours
		}
	}
	elapsed := ElapsedDays(now, loc)
	absent := elapsed - present
	if absent < 0 {
		absent = 0
	}
	n := now.In(loc)
	return MonthlySummary{
		Month:          n.Month().String(),
		Year:           n.Year(),
		TotalPresent:   present,
		TotalAbsent:    absent,
		TotalLate:      late,
		TotalDays:      elapsed,
		TotalWorkHours: formatFloat(Round2(hours)),
	}
}

// TeamMember is the per-employee rollup inside the team summary.
type TeamMember struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	EmployeeID   *string `json:"employeeId"`
	Department   string  `json:"department"`
	TotalDays    int     `json:"totalDays"`
	TotalHours   string  `json:"totalHours"`
	AverageHours string  `json:"averageHours"`
}

// TeamSummary is the org-wide manager view. Managers are excluded from the
// headcount and from every rollup.
type TeamSummary struct {
	TotalEmployees int          `json:"totalEmployees"`
	PresentToday   int          `json:"presentToday"`
	AbsentToday    int          `json:"absentToday"`
	LateToday      int          `json:"lateToday"`
	TeamMembers    []TeamMember `json:"teamMembers"`
}

// Team computes the team summary. employees is the full employee roster,
// todays their records dated today, recordsByUser each employee's complete
// history keyed by user id.
func Team(employees []domain.User, todays []domain.Attendance, recordsByUser map[string][]domain.Attendance, loc *time.Location) TeamSummary {
	present := 0
	late := 0
	employeeIDs := make(map[string]struct{}, len(employees))
	for i := range employees {
		employeeIDs[employees[i].ID] = struct{}{}
	}
	for i := range todays {
		if _, ok := employeeIDs[todays[i].UserID]; !ok {
			continue
		}
		present++
		if IsLate(todays[i].CheckInTime, loc) {
			late++
		}
	}
	absent := len(employees) - present
	if absent < 0 {
		absent = 0
	}

	members := make([]TeamMember, 0, len(employees))
	for i := range employees {
		u := &employees[i]
		recs := recordsByUser[u.ID]
		total := 0.0
		for j := range recs {
			if recs[j].TotalHours != nil {
				total += *recs[j].TotalHours
			}
		}
		avg := 0.0
		if len(recs) > 0 {
			avg = total / float64(len(recs))
		}
		members = append(members, TeamMember{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			EmployeeID:   u.EmployeeID,
			Department:   u.Department,
			TotalDays:    len(recs),
			TotalHours:   formatFloat(Round2(total)),
			AverageHours: formatFloat(Round2(avg)),
		})
	}
	return TeamSummary{
		TotalEmployees: len(employees),
		PresentToday:   present,
		AbsentToday:    absent,
		LateToday:      late,
		TeamMembers:    members,
	}
}

// RosterEntry is one employee's state for today: absentees still appear,
// with null times.
type RosterEntry struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Status     string     `json:"status"`
	CheckIn    *time.Time `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	TotalHours *float64   `json:"totalHours"`
}

// Roster resolves each employee to Absent / Checked-in / Checked-out from
// today's records.
func Roster(employees []domain.User, todays []domain.Attendance) []RosterEntry {
	byUser := make(map[string]*domain.Attendance, len(todays))
	for i := range todays {
		byUser[todays[i].UserID] = &todays[i]
	}
	out := make([]RosterEntry, 0, len(employees))
	for i := range employees {
		u := &employees[i]
		e := RosterEntry{ID: u.ID, Name: u.Name, Email: u.Email, Status: RosterAbsent}
		if rec, ok := byUser[u.ID]; ok {
			in := rec.CheckInTime
			e.CheckIn = &in
			e.CheckOut = rec.CheckOutTime
			e.TotalHours = rec.TotalHours
			if rec.CheckOutTime != nil {
				e.Status = RosterCheckedOut
			} else {
				e.Status = RosterCheckedIn
			}
		}
		out = append(out, e)
	}
	return out
}

// DepartmentCount is today's presence split for one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
}

// ByDepartment groups today's present/absent employee counts by normalized
// department; employees without one land in "Unknown".
func ByDepartment(employees []domain.User, todays []domain.Attendance) []DepartmentCount {
	presentUsers := make(map[string]struct{}, len(todays))
	for i := range todays {
		presentUsers[todays[i].UserID] = struct{}{}
	}
	counts := map[string]*DepartmentCount{}
	for i := range employees {
		dept := employees[i].Department
		if dept == "" {
			dept = "Unknown"
		}
		c, ok := counts[dept]
		if !ok {
			c = &DepartmentCount{Department: dept}
			counts[dept] = c
		}
		if _, ok := presentUsers[employees[i].ID]; ok {
			c.Present++
		} else {
			c.Absent++
		}
	}
	out := make([]DepartmentCount, 0, len(counts))
	for _, c := range counts {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out
}
