package service

import (
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

// In-memory repository fakes. They enforce the same uniqueness rules the
// gorm repositories get from the database, so the services see identical
// error behavior.

type fakeUserRepo struct {
	users []domain.User
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	for i := range r.users {
		if r.users[i].Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ListByRole(role string) ([]domain.User, error) {
	var out []domain.User
	for i := range r.users {
		if r.users[i].Role == role {
			out = append(out, r.users[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeUserRepo) CountByRole(role string) (int64, error) {
	var n int64
	for i := range r.users {
		if r.users[i].Role == role {
			n++
		}
	}
	return n, nil
}

var fakeEmpIDPattern = regexp.MustCompile(`^EMP(\d+)$`)

func (r *fakeUserRepo) MaxEmployeeNumber() (int, error) {
	maxN := 0
	for i := range r.users {
		if r.users[i].EmployeeID == nil {
			continue
		}
		if m := fakeEmpIDPattern.FindStringSubmatch(*r.users[i].EmployeeID); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > maxN {
				maxN = n
			}
		}
	}
	return maxN, nil
}

func (r *fakeUserRepo) ListDepartments() ([]string, error) {
	seen := map[string]struct{}{}
	var out []string
	for i := range r.users {
		d := r.users[i].Department
		if d == "" {
			continue
		}
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (r *fakeUserRepo) DeleteAll() error {
	r.users = nil
	return nil
}

type fakeAttendanceRepo struct {
	records []domain.Attendance
	users   *fakeUserRepo // for the joined views
}

func (r *fakeAttendanceRepo) Create(a *domain.Attendance) error {
	for i := range r.records {
		if r.records[i].UserID == a.UserID && r.records[i].Date == a.Date {
			return domain.ErrAlreadyCheckedIn
		}
	}
	a.CreatedAt = time.Now()
	r.records = append(r.records, *a)
	return nil
}

func (r *fakeAttendanceRepo) FindByUserAndDate(userID, date string) (*domain.Attendance, error) {
	for i := range r.records {
		if r.records[i].UserID == userID && r.records[i].Date == date {
			a := r.records[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) CloseOut(userID, date string, checkOut time.Time, totalHours float64, status string) (*domain.Attendance, error) {
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID == userID && rec.Date == date && rec.CheckOutTime == nil {
			out := checkOut
			rec.CheckOutTime = &out
			rec.TotalHours = &totalHours
			rec.Status = status
			a := *rec
			return &a, nil
		}
	}
	return nil, domain.ErrNoActiveSession
}

func (r *fakeAttendanceRepo) FindOpen(userID string) (*domain.Attendance, error) {
	var latest *domain.Attendance
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID == userID && rec.CheckOutTime == nil {
			if latest == nil || rec.CreatedAt.After(latest.CreatedAt) {
				latest = rec
			}
		}
	}
	if latest == nil {
		return nil, nil
	}
	a := *latest
	return &a, nil
}

func (r *fakeAttendanceRepo) ListByUser(userID string) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for i := range r.records {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeAttendanceRepo) ListByUserBetween(userID, from, to string) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID == userID && rec.Date >= from && rec.Date <= to {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeAttendanceRepo) ListByDate(date string) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for i := range r.records {
		if r.records[i].Date == date {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListWithUsers(from string, limit int) ([]domain.AttendanceWithUser, error) {
	var out []domain.AttendanceWithUser
	for i := range r.records {
		rec := &r.records[i]
		if from != "" && rec.Date < from {
			continue
		}
		u, _ := r.users.FindByID(rec.UserID)
		if u == nil || u.Role != domain.RoleEmployee {
			continue
		}
		out = append(out, domain.AttendanceWithUser{
			Attendance:     *rec,
			UserName:       u.Name,
			UserEmail:      u.Email,
			UserEmployeeID: u.EmployeeID,
			UserDepartment: u.Department,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeAttendanceRepo) ListByUserWithUser(userID string) ([]domain.AttendanceWithUser, error) {
	var out []domain.AttendanceWithUser
	for i := range r.records {
		rec := &r.records[i]
		if rec.UserID != userID {
			continue
		}
		u, _ := r.users.FindByID(rec.UserID)
		if u == nil {
			continue
		}
		out = append(out, domain.AttendanceWithUser{
			Attendance:     *rec,
			UserName:       u.Name,
			UserEmail:      u.Email,
			UserEmployeeID: u.EmployeeID,
			UserDepartment: u.Department,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (r *fakeAttendanceRepo) DeleteAll() error {
	r.records = nil
	return nil
}
