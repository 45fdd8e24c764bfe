package repository

import (
	"context"
	"errors"
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/observability"
)

type instrumentedEmployeeRepository struct {
	next    EmployeeRepository
	metrics *observability.Metrics
}

// NewInstrumentedEmployeeRepository wraps next and records the latency and
// outcome of every call.
func NewInstrumentedEmployeeRepository(next EmployeeRepository, metrics *observability.Metrics) EmployeeRepository {
	if metrics == nil {
		return next
	}
	return &instrumentedEmployeeRepository{next: next, metrics: metrics}
}

func (r *instrumentedEmployeeRepository) observe(op string, start time.Time, err error) {
	r.metrics.RecordStoreOp(op, outcome(err), time.Since(start))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidEmployeeID), errors.Is(err, domain.ErrInvalidEmployee):
		return "invalid"
	default:
		return "error"
	}
}

func (r *instrumentedEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) (err error) {
	start := time.Now()
	defer func() { r.observe("create", start, err) }()
	return r.next.Create(ctx, emp)
}

func (r *instrumentedEmployeeRepository) CreateMany(ctx context.Context, emps []domain.Employee) (err error) {
	start := time.Now()
	defer func() { r.observe("create_many", start, err) }()
	return r.next.CreateMany(ctx, emps)
}

func (r *instrumentedEmployeeRepository) Count(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() { r.observe("count", start, err) }()
	return r.next.Count(ctx)
}

func (r *instrumentedEmployeeRepository) List(ctx context.Context) (emps []domain.Employee, err error) {
	start := time.Now()
	defer func() { r.observe("list", start, err) }()
	return r.next.List(ctx)
}

func (r *instrumentedEmployeeRepository) GetByID(ctx context.Context, id string) (emp *domain.Employee, err error) {
	start := time.Now()
	defer func() { r.observe("get", start, err) }()
	return r.next.GetByID(ctx, id)
}

func (r *instrumentedEmployeeRepository) Update(ctx context.Context, id string, patch domain.EmployeePatch) (emp *domain.Employee, err error) {
	start := time.Now()
	defer func() { r.observe("update", start, err) }()
	return r.next.Update(ctx, id, patch)
}

func (r *instrumentedEmployeeRepository) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { r.observe("delete", start, err) }()
	return r.next.Delete(ctx, id)
}
