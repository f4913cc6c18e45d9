package repo

import (
	"errors"
	"regexp"
	"sort"
	"strconv"

	"gorm.io/gorm"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error {
	err := r.db.Create(u).Error
	if err != nil && isDupKey(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *UserRepo) ListByRole(role string) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("role = ?", role).Order("name asc").Find(&users).Error
	return users, err
}

func (r *UserRepo) CountByRole(role string) (int64, error) {
	var n int64
	err := r.db.Model(&domain.User{}).Where("role = ?", role).Count(&n).Error
	return n, err
}

var empIDPattern = regexp.MustCompile(`^EMP(\d+)$`)

func (r *UserRepo) MaxEmployeeNumber() (int, error) {
	var ids []string
	err := r.db.Model(&domain.User{}).
		Where("employee_id IS NOT NULL").
		Pluck("employee_id", &ids).Error
	if err != nil {
		return 0, err
	}
	maxN := 0
	for _, id := range ids {
		if m := empIDPattern.FindStringSubmatch(id); m != nil {
			if n, e := strconv.Atoi(m[1]); e == nil && n > maxN {
				maxN = n
			}
		}
	}
	return maxN, nil
}

func (r *UserRepo) ListDepartments() ([]string, error) {
	var depts []string
	err := r.db.Model(&domain.User{}).
		Where("department <> ''").
		Distinct("department").
		Pluck("department", &depts).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(depts)
	return depts, nil
}

func (r *UserRepo) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.User{}).Error
}
