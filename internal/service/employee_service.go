package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// EmployeeService implements the employee use cases on top of a repository.
type EmployeeService struct {
	employees repository.EmployeeRepository
	logger    *zap.Logger
	metrics   *observability.Metrics
}

// EmployeeCreateInput is the client payload for a new employee. A nil field
// was absent from the request.
type EmployeeCreateInput struct {
	Name       *string
	Position   *string
	Department *string
	Salary     *float64
}

// EmployeeDependencies encapsulates collaborators of the employee service.
type EmployeeDependencies struct {
	EmployeeRepo repository.EmployeeRepository
	Logger       *zap.Logger
	Metrics      *observability.Metrics
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{
		employees: deps.EmployeeRepo,
		logger:    logger,
		metrics:   deps.Metrics,
	}
}

// Create validates input and persists a new employee.
func (s *EmployeeService) Create(ctx context.Context, in EmployeeCreateInput) (*domain.Employee, error) {
	emp, err := domain.NewEmployee(in.Name, in.Position, in.Department, in.Salary)
	if err != nil {
		return nil, mapError(err)
	}
	if err := s.employees.Create(ctx, emp); err != nil {
		return nil, mapError(err)
	}
	return emp, nil
}

// List returns every employee.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	emps, err := s.employees.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	if emps == nil {
		emps = []domain.Employee{}
	}
	return emps, nil
}

// Get fetches an employee by id.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return emp, nil
}

// Update applies the submitted fields to an employee.
func (s *EmployeeService) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	if err := patch.Validate(); err != nil {
		return nil, mapError(err)
	}
	emp, err := s.employees.Update(ctx, id, patch)
	if err != nil {
		return nil, mapError(err)
	}
	return emp, nil
}

// Delete removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		return mapError(err)
	}
	return nil
}

func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidEmployee), errors.Is(err, domain.ErrInvalidEmployeeID):
		return apperrors.NewValidationError(err.Error())
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return apperrors.NewNotFound("Employee")
	default:
		return apperrors.NewInternalError(err)
	}
}
