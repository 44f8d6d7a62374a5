package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pos-system/internal/models"
)

func (r *GormRepo) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return r.DB.WithContext(ctx).Create(employee).Error
}

func (r *GormRepo) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.DB.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *GormRepo) FindEmployeeByUsername(ctx context.Context, username string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.DB.WithContext(ctx).
		Where("username = ?", username).
		First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *GormRepo) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *GormRepo) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	return r.DB.WithContext(ctx).Save(employee).Error
}

func (r *GormRepo) DeleteEmployee(ctx context.Context, id uint) (int64, error) {
	res := r.DB.WithContext(ctx).Delete(&models.Employee{}, id)
	return res.RowsAffected, res.Error
}

// UpsertAttendance records attendance once per employee per day; a second
// mark on the same day overwrites the first.
func (r *GormRepo) UpsertAttendance(ctx context.Context, attendance *models.Attendance) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"present", "note"}),
		}).
		Create(attendance).Error
}

func (r *GormRepo) ListAttendance(ctx context.Context, employeeID uint, from, to string) ([]models.Attendance, error) {
	q := r.DB.WithContext(ctx).Model(&models.Attendance{})
	if employeeID != 0 {
		q = q.Where("employee_id = ?", employeeID)
	}
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}

	var rows []models.Attendance
	if err := q.Order("date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
