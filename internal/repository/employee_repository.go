package repository

import (
	"context"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EmployeeRepository manages employee persistence. Lookups by an id that does
// not parse for the backing store fail with domain.ErrInvalidEmployeeID; ids
// that parse but resolve to nothing fail with domain.ErrEmployeeNotFound.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	CreateMany(ctx context.Context, emps []domain.Employee) error
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, id string) error
}
