package repo

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

type AttendanceRepo struct{ db *gorm.DB }

func NewAttendanceRepo(db *gorm.DB) *AttendanceRepo { return &AttendanceRepo{db: db} }

// Create inserts a new day record. The (user_id, date) unique index is the
// authority on daily uniqueness; a duplicate-key failure maps to
// ErrAlreadyCheckedIn so two racing check-ins resolve without a re-read.
func (r *AttendanceRepo) Create(a *domain.Attendance) error {
	err := r.db.Create(a).Error
	if err != nil && isDupKey(err) {
		return domain.ErrAlreadyCheckedIn
	}
	return err
}

func (r *AttendanceRepo) FindByUserAndDate(userID, date string) (*domain.Attendance, error) {
	var a domain.Attendance
	err := r.db.First(&a, "user_id = ? AND date = ?", userID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

// CloseOut finalizes the day's open record in a single guarded UPDATE; the
// check_out_time IS NULL predicate makes double check-out lose the race
// instead of overwriting.
func (r *AttendanceRepo) CloseOut(userID, date string, checkOut time.Time, totalHours float64, status string) (*domain.Attendance, error) {
	res := r.db.Model(&domain.Attendance{}).
		Where("user_id = ? AND date = ? AND check_out_time IS NULL", userID, date).
		Updates(map[string]any{
			"check_out_time": checkOut,
			"total_hours":    totalHours,
			"status":         status,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNoActiveSession
	}
	return r.FindByUserAndDate(userID, date)
}

func (r *AttendanceRepo) FindOpen(userID string) (*domain.Attendance, error) {
	var a domain.Attendance
	err := r.db.
		Where("user_id = ? AND check_out_time IS NULL", userID).
		Order("created_at desc").
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *AttendanceRepo) ListByUser(userID string) ([]domain.Attendance, error) {
	var recs []domain.Attendance
	err := r.db.Where("user_id = ?", userID).Order("date desc").Find(&recs).Error
	return recs, err
}

func (r *AttendanceRepo) ListByUserBetween(userID, from, to string) ([]domain.Attendance, error) {
	var recs []domain.Attendance
	err := r.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date asc").
		Find(&recs).Error
	return recs, err
}

func (r *AttendanceRepo) ListByDate(date string) ([]domain.Attendance, error) {
	var recs []domain.Attendance
	err := r.db.Where("date = ?", date).Find(&recs).Error
	return recs, err
}

const joinSelect = "attendances.*, users.name AS user_name, users.email AS user_email, " +
	"users.employee_id AS user_employee_id, users.department AS user_department"

func (r *AttendanceRepo) ListWithUsers(from string, limit int) ([]domain.AttendanceWithUser, error) {
	q := r.db.Model(&domain.Attendance{}).
		Select(joinSelect).
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("users.role = ?", domain.RoleEmployee).
		Order("attendances.date desc")
	if from != "" {
		q = q.Where("attendances.date >= ?", from)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []domain.AttendanceWithUser
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *AttendanceRepo) ListByUserWithUser(userID string) ([]domain.AttendanceWithUser, error) {
	var rows []domain.AttendanceWithUser
	err := r.db.Model(&domain.Attendance{}).
		Select(joinSelect).
		Joins("JOIN users ON users.id = attendances.user_id").
		Where("attendances.user_id = ?", userID).
		Order("attendances.date desc").
		Scan(&rows).Error
	return rows, err
}

func (r *AttendanceRepo) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Attendance{}).Error
}

// isDupKey recognizes unique violations across drivers without depending on
// driver error types; gorm's TranslateError covers the common case and the
// string check backstops older drivers.
func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
