package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"employee-directory/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrEmployeeNotFound is returned when no row has the requested emp_id.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrDuplicateEmployee is returned when the emp_id is already taken.
	ErrDuplicateEmployee = errors.New("employee already exists")
	// ErrDatabase wraps every other failure reported by the database.
	ErrDatabase = errors.New("database error")
)

// EmployeeRepository reads and writes rows of the employee table. Rows are
// never updated or deleted.
type EmployeeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEmployeeRepository returns a repository backed by the given pool.
func NewEmployeeRepository(db *gorm.DB, logger *zap.Logger) *EmployeeRepository {
	return &EmployeeRepository{
		db:     db,
		logger: logger,
	}
}

// Insert writes one employee and commits immediately. It returns the display
// name ("first last") on success.
func (r *EmployeeRepository) Insert(ctx context.Context, employee *models.Employee) (string, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(employee).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return "", fmt.Errorf("%w: emp_id %q", ErrDuplicateEmployee, employee.EmpID)
		}
		return "", fmt.Errorf("%w: failed to insert employee %q: %w", ErrDatabase, employee.EmpID, err)
	}

	r.logger.Debug("inserted employee", zap.String("emp_id", employee.EmpID))
	return employee.FullName(), nil
}

// FetchByID returns the employee with the given id. If several rows ever
// share the id, whichever the database returns first wins.
func (r *EmployeeRepository) FetchByID(ctx context.Context, empID string) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.WithContext(ctx).Where("emp_id = ?", empID).Take(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: emp_id %q", ErrEmployeeNotFound, empID)
		}
		return nil, fmt.Errorf("%w: failed to fetch employee %q: %w", ErrDatabase, empID, err)
	}

	r.logger.Debug("fetched employee", zap.String("emp_id", empID))
	return &employee, nil
}

// isDuplicateKey reports a primary-key violation. Dialectors that translate
// errors return gorm.ErrDuplicatedKey; the message checks cover the rest.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
