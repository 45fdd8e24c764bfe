package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/employee-service/internal/domain"
)

// updateEmployeeScript applies HSET only when the record exists, so an
// update never recreates a deleted employee. It returns the full hash.
var updateEmployeeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return false
end
redis.call('HSET', KEYS[1], unpack(ARGV))
return redis.call('HGETALL', KEYS[1])
`)

type employeeRedisRepository struct {
	client redis.UniversalClient
	prefix string
}

// NewEmployeeRedisRepository stores each employee as a hash under
// "<prefix>:<id>" and tracks ids in the "<prefix>" set.
func NewEmployeeRedisRepository(client redis.UniversalClient, prefix string) EmployeeRepository {
	if prefix == "" {
		prefix = "employees"
	}
	return &employeeRedisRepository{client: client, prefix: prefix}
}

func (r *employeeRedisRepository) key(id string) string {
	return r.prefix + ":" + id
}

func (r *employeeRedisRepository) Create(ctx context.Context, emp *domain.Employee) error {
	id := uuid.NewString()
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.key(id), employeeFields(*emp))
		pipe.SAdd(ctx, r.prefix, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	emp.ID = id
	return nil
}

func (r *employeeRedisRepository) CreateMany(ctx context.Context, emps []domain.Employee) error {
	if len(emps) == 0 {
		return nil
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, emp := range emps {
			id := uuid.NewString()
			pipe.HSet(ctx, r.key(id), employeeFields(emp))
			pipe.SAdd(ctx, r.prefix, id)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("insert employees: %w", err)
	}
	return nil
}

func (r *employeeRedisRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.client.SCard(ctx, r.prefix).Result()
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *employeeRedisRepository) List(ctx context.Context) ([]domain.Employee, error) {
	ids, err := r.client.SMembers(ctx, r.prefix).Result()
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	result := make([]domain.Employee, 0, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, r.key(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	for i, cmd := range cmds {
		fields := cmd.Val()
		// the index may briefly reference a hash removed by a concurrent delete
		if len(fields) == 0 {
			continue
		}
		emp, err := employeeFromFields(ids[i], fields)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	return result, nil
}

func (r *employeeRedisRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	if err := parseUUID(id); err != nil {
		return nil, err
	}
	fields, err := r.client.HGetAll(ctx, r.key(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("find employee: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrEmployeeNotFound
	}
	return employeeFromFields(id, fields)
}

func (r *employeeRedisRepository) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	if err := parseUUID(id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var args []any
	if patch.Name != nil {
		args = append(args, "name", *patch.Name)
	}
	if patch.Position != nil {
		args = append(args, "position", *patch.Position)
	}
	if patch.Department != nil {
		args = append(args, "department", *patch.Department)
	}
	if patch.Salary != nil {
		args = append(args, "salary", formatSalary(*patch.Salary))
	}

	res, err := updateEmployeeScript.Run(ctx, r.client, []string{r.key(id)}, args...).StringSlice()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	fields := make(map[string]string, len(res)/2)
	for i := 0; i+1 < len(res); i += 2 {
		fields[res[i]] = res[i+1]
	}
	return employeeFromFields(id, fields)
}

func (r *employeeRedisRepository) Delete(ctx context.Context, id string) error {
	if err := parseUUID(id); err != nil {
		return err
	}
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.SRem(ctx, r.prefix, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if del.Val() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func employeeFields(emp domain.Employee) map[string]any {
	return map[string]any{
		"name":       emp.Name,
		"position":   emp.Position,
		"department": emp.Department,
		"salary":     formatSalary(emp.Salary),
	}
}

func employeeFromFields(id string, fields map[string]string) (*domain.Employee, error) {
	salary, err := strconv.ParseFloat(fields["salary"], 64)
	if err != nil {
		return nil, fmt.Errorf("decode employee %s salary: %w", id, err)
	}
	return &domain.Employee{
		ID:         id,
		Name:       fields["name"],
		Position:   fields["position"],
		Department: fields["department"],
		Salary:     salary,
	}, nil
}

func formatSalary(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
