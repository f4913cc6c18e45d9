package domain

import (
	"strings"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string    `gorm:"size:191;not null" json:"-"`
	Role         string    `gorm:"size:16;not null;default:employee" json:"role"`
	EmployeeID   *string   `gorm:"uniqueIndex;size:16" json:"employeeId"`
	Department   string    `gorm:"size:64" json:"department"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	ListByRole(role string) ([]User, error)
	CountByRole(role string) (int64, error)
	// MaxEmployeeNumber returns the highest numeric suffix among assigned
	// EMP### ids, 0 when none exist yet.
	MaxEmployeeNumber() (int, error)
	ListDepartments() ([]string, error)
	DeleteAll() error
}

// departmentAbbrevs are stored fully uppercased instead of Title Cased.
var departmentAbbrevs = map[string]struct{}{
	"it": {}, "hr": {}, "qa": {}, "ui": {}, "ux": {}, "ai": {},
	"ml": {}, "dev": {}, "ops": {}, "devops": {}, "r&d": {},
}

// NormalizeDepartment canonicalizes free-text department names so that
// "it", "IT" and "It" land on one spelling ("IT"), and multi-word names
// come out Title Cased ("human resources" -> "Human Resources").
func NormalizeDepartment(department string) string {
	trimmed := strings.ToLower(strings.TrimSpace(department))
	if trimmed == "" {
		return ""
	}
	if _, ok := departmentAbbrevs[trimmed]; ok {
		return strings.ToUpper(trimmed)
	}
	words := strings.Fields(trimmed)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
