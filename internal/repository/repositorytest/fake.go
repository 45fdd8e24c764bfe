// Package repositorytest provides an in-memory EmployeeRepository for tests.
package repositorytest

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-service/internal/domain"
)

// FakeEmployeeRepository keeps employees in insertion order. Setting Err
// makes every call fail with it.
type FakeEmployeeRepository struct {
	mu    sync.Mutex
	items map[string]domain.Employee
	order []string
	Err   error
}

// NewFakeEmployeeRepository returns an empty fake.
func NewFakeEmployeeRepository() *FakeEmployeeRepository {
	return &FakeEmployeeRepository{items: make(map[string]domain.Employee)}
}

func (r *FakeEmployeeRepository) Create(_ context.Context, emp *domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.insert(emp)
	return nil
}

func (r *FakeEmployeeRepository) CreateMany(_ context.Context, emps []domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for i := range emps {
		emp := emps[i]
		r.insert(&emp)
	}
	return nil
}

func (r *FakeEmployeeRepository) insert(emp *domain.Employee) {
	emp.ID = uuid.NewString()
	r.items[emp.ID] = *emp
	r.order = append(r.order, emp.ID)
}

func (r *FakeEmployeeRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	return int64(len(r.items)), nil
}

func (r *FakeEmployeeRepository) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	result := make([]domain.Employee, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result, nil
}

func (r *FakeEmployeeRepository) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *FakeEmployeeRepository) Update(_ context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	emp, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	emp = patch.Apply(emp)
	r.items[emp.ID] = emp
	return &emp, nil
}

func (r *FakeEmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.lookup(id); err != nil {
		return err
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *FakeEmployeeRepository) lookup(id string) (domain.Employee, error) {
	if r.Err != nil {
		return domain.Employee{}, r.Err
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.Employee{}, fmt.Errorf("%w: %q", domain.ErrInvalidEmployeeID, id)
	}
	emp, ok := r.items[id]
	if !ok {
		return domain.Employee{}, domain.ErrEmployeeNotFound
	}
	return emp, nil
}
