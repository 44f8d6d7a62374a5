package service

import (
	"context"
	"fmt"
	"time"

	"pos-system/internal/hash"
	"pos-system/internal/models"
	"pos-system/internal/repo"
	"pos-system/internal/validation"
)

type CreateEmployeeRequest struct {
	Name     string
	Phone    string
	Position string
	Salary   float64
	Username string
	Password string
	Role     string
}

type EmployeeService struct {
	Repo *repo.GormRepo
}

func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error) {
	if res := validation.ValidateEmployeeName(req.Name); !res.Successful {
		return nil, fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	if res := validation.ValidateEmployeePhone(req.Phone); !res.Successful {
		return nil, fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	existing, err := s.Repo.FindEmployeeByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", ErrConflict, req.Username)
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "staff"
	}
	employee := models.Employee{
		Name:         req.Name,
		Phone:        req.Phone,
		Position:     req.Position,
		Salary:       req.Salary,
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.Repo.CreateEmployee(ctx, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*models.Employee, error) {
	employee, err := s.Repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: employee %d", ErrNotFound, id)
	}
	return employee, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.Repo.ListEmployees(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, employee *models.Employee) error {
	if res := validation.ValidateEmployeeName(employee.Name); !res.Successful {
		return fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}
	if res := validation.ValidateEmployeePhone(employee.Phone); !res.Successful {
		return fmt.Errorf("%w: %s", ErrValidation, res.Message)
	}

	existing, err := s.Repo.GetEmployee(ctx, employee.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: employee %d", ErrNotFound, employee.ID)
	}

	employee.Username = existing.Username
	employee.PasswordHash = existing.PasswordHash
	return s.Repo.UpdateEmployee(ctx, employee)
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	rows, err := s.Repo.DeleteEmployee(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: employee %d", ErrNotFound, id)
	}
	return nil
}

// MarkAttendance upserts the attendance row for (employee, date).
func (s *EmployeeService) MarkAttendance(ctx context.Context, employeeID uint, date string, present bool, note string) (*models.Attendance, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	employee, err := s.Repo.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: employee %d", ErrNotFound, employeeID)
	}

	attendance := models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Present:    present,
		Note:       note,
	}
	if err := s.Repo.UpsertAttendance(ctx, &attendance); err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (s *EmployeeService) ListAttendance(ctx context.Context, employeeID uint, from, to string) ([]models.Attendance, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return s.Repo.ListAttendance(ctx, employeeID, from, to)
}

func validateRange(from, to string) error {
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
	}
	return nil
}
