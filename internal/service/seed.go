package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
)

// Seed inserts the sample employees when the store holds no employees at all.
// It returns the number of records inserted.
func (s *EmployeeService) Seed(ctx context.Context) (int, error) {
	n, err := s.employees.Count(ctx)
	if err != nil {
		return 0, mapError(err)
	}
	if n > 0 {
		s.logger.Info("store already contains employee data", zap.Int64("count", n))
		return 0, nil
	}

	samples := domain.SampleEmployees()
	if err := s.employees.CreateMany(ctx, samples); err != nil {
		return 0, mapError(err)
	}
	s.metrics.RecordSeeded(len(samples))
	s.logger.Info("sample employees added", zap.Int("count", len(samples)))
	return len(samples), nil
}
