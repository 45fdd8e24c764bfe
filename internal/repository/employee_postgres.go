package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/employee-service/internal/domain"
)

// Database is the subset of pgxpool.Pool used by the Postgres repository.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// employeeJSON is the JSONB body of a row. Pointer fields let a patch encode
// only the submitted keys.
type employeeJSON struct {
	Name       *string  `json:"name,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Department *string  `json:"department,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
}

type employeePostgresRepository struct {
	db Database
}

// NewEmployeePostgresRepository stores employees as JSONB documents in the
// employees table.
func NewEmployeePostgresRepository(db Database) EmployeeRepository {
	return &employeePostgresRepository{db: db}
}

func (r *employeePostgresRepository) Create(ctx context.Context, emp *domain.Employee) error {
	return insertEmployee(ctx, r.db, emp)
}

// CreateMany inserts all employees in one transaction.
func (r *employeePostgresRepository) CreateMany(ctx context.Context, emps []domain.Employee) error {
	if len(emps) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for i := range emps {
			emp := emps[i]
			if err := insertEmployee(ctx, tx, &emp); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertEmployee(ctx context.Context, db execer, emp *domain.Employee) error {
	const query = `INSERT INTO employees (id, doc) VALUES ($1, $2)`
	id := uuid.NewString()
	doc, err := json.Marshal(employeeJSON{
		Name:       &emp.Name,
		Position:   &emp.Position,
		Department: &emp.Department,
		Salary:     &emp.Salary,
	})
	if err != nil {
		return fmt.Errorf("encode employee: %w", err)
	}
	if _, err := db.Exec(ctx, query, id, doc); err != nil {
		return postgresError("insert employee", err)
	}
	emp.ID = id
	return nil
}

func (r *employeePostgresRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM employees`
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *employeePostgresRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `SELECT id::text, doc FROM employees ORDER BY created_at`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		var (
			id  string
			doc []byte
		)
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		emp, err := decodeEmployeeJSON(id, doc)
		if err != nil {
			return nil, err
		}
		result = append(result, *emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return result, nil
}

func (r *employeePostgresRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `SELECT id::text, doc FROM employees WHERE id = $1`
	if err := parseUUID(id); err != nil {
		return nil, err
	}
	return r.fetchSingle(ctx, query, id)
}

func (r *employeePostgresRepository) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	const query = `UPDATE employees SET doc = doc || $2::jsonb WHERE id = $1 RETURNING id::text, doc`
	if err := parseUUID(id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	body, err := json.Marshal(employeeJSON{
		Name:       patch.Name,
		Position:   patch.Position,
		Department: patch.Department,
		Salary:     patch.Salary,
	})
	if err != nil {
		return nil, fmt.Errorf("encode patch: %w", err)
	}
	return r.fetchSingle(ctx, query, id, body)
}

func (r *employeePostgresRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM employees WHERE id = $1`
	if err := parseUUID(id); err != nil {
		return err
	}
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return postgresError("delete employee", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeePostgresRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.Employee, error) {
	var (
		id  string
		doc []byte
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id, &doc); err != nil {
		return nil, postgresError("find employee", err)
	}
	return decodeEmployeeJSON(id, doc)
}

func decodeEmployeeJSON(id string, doc []byte) (*domain.Employee, error) {
	var body employeeJSON
	if err := json.Unmarshal(doc, &body); err != nil {
		return nil, fmt.Errorf("decode employee %s: %w", id, err)
	}
	emp := &domain.Employee{ID: id}
	if body.Name != nil {
		emp.Name = *body.Name
	}
	if body.Position != nil {
		emp.Position = *body.Position
	}
	if body.Department != nil {
		emp.Department = *body.Department
	}
	if body.Salary != nil {
		emp.Salary = *body.Salary
	}
	return emp, nil
}

// postgresError classifies data exceptions (class 22) and integrity
// violations (class 23) as rejected writes.
func postgresError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrEmployeeNotFound
	case errors.As(err, &pgErr) && (strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")):
		return fmt.Errorf("%w: %s", domain.ErrInvalidEmployee, pgErr.Message)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func parseUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidEmployeeID, id)
	}
	return nil
}
