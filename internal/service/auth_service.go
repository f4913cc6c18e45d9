package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/core/auth"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
	"github.com/Jai-Phiranesh/Employee-Attendance-System/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log}
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

// Register creates a user with a sequentially assigned EMP### employee id
// and a normalized department. Role defaults to employee; only the two
// known roles are accepted.
func (s *AuthService) Register(in RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" {
		return nil, domain.Validation("name, email and password are required")
	}
	role := in.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if role != domain.RoleEmployee && role != domain.RoleManager {
		return nil, domain.Validation("role must be employee or manager")
	}

	if existing, err := s.users.FindByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	maxN, err := s.users.MaxEmployeeNumber()
	if err != nil {
		return nil, err
	}
	empID := fmt.Sprintf("EMP%03d", maxN+1)

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		Role:         role,
		EmployeeID:   &empID,
		Department:   domain.NormalizeDepartment(in.Department),
	}
	if err := s.users.Create(u); err != nil {
		// the FindByEmail pre-check can race; the unique index settles it
		return nil, err
	}
	s.log.Info("user registered",
		zap.String("user_id", u.ID),
		zap.String("employee_id", empID),
		zap.String("role", role),
	)
	return u, nil
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.Validation("email and password are required")
	}
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.jwter.Issue(u.ID, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Me(userID string) (*domain.User, error) {
	u, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}
