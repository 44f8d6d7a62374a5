package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pos-system/internal/hash"
	"pos-system/internal/models"
	"pos-system/internal/repo"
)

const AccessTokenTTL = 15 * time.Minute

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Login checks employee credentials and issues a short-lived access
// token carrying the employee id and role.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.Employee, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	employee, err := s.Repo.FindEmployeeByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if employee == nil || !hash.CheckPassword(employee.PasswordHash, password) {
		return "", nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.signAccessToken(employee)
	if err != nil {
		return "", nil, err
	}
	return token, employee, nil
}

func (s *AuthService) signAccessToken(employee *models.Employee) (string, error) {
	claims := jwt.MapClaims{
		"sub":  employee.ID,
		"role": employee.Role,
		"name": employee.Name,
		"exp":  time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTSecret)
}
