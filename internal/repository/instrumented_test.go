package repository_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/observability"
	"github.com/spec-kit/employee-service/internal/repository"
	"github.com/spec-kit/employee-service/internal/repository/repositorytest"
)

func TestInstrumentedRepositoryRecordsOutcomes(t *testing.T) {
	t.Parallel()

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	fake := repositorytest.NewFakeEmployeeRepository()
	repo := repository.NewInstrumentedEmployeeRepository(fake, metrics)
	ctx := context.Background()

	emp := &domain.Employee{Name: "Ada", Position: "Engineer", Department: "IT", Salary: 1}
	require.NoError(t, repo.Create(ctx, emp))
	_, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	_, err = repo.GetByID(ctx, missingUUID)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	_, err = repo.GetByID(ctx, "bad")
	require.ErrorIs(t, err, domain.ErrInvalidEmployeeID)

	fake.Err = assert.AnError
	_, err = repo.List(ctx)
	require.ErrorIs(t, err, assert.AnError)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.StoreOps.WithLabelValues("create", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.StoreOps.WithLabelValues("get", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.StoreOps.WithLabelValues("get", "not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.StoreOps.WithLabelValues("get", "invalid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.StoreOps.WithLabelValues("list", "error")), 0)
}

func TestInstrumentedRepositoryWithoutMetrics(t *testing.T) {
	t.Parallel()

	fake := repositorytest.NewFakeEmployeeRepository()
	assert.Same(t, fake, repository.NewInstrumentedEmployeeRepository(fake, nil))
}
