package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrInvalidEmployeeID = errors.New("invalid employee id")
	ErrInvalidEmployee   = errors.New("employee validation failed")
)

// Employee is the only record type kept in the store.
type Employee struct {
	ID         string
	Name       string
	Position   string
	Department string
	Salary     float64
}

// EmployeePatch carries the fields submitted for an update. A nil field was
// not submitted and is left untouched.
type EmployeePatch struct {
	Name       *string
	Position   *string
	Department *string
	Salary     *float64
}

// IsEmpty reports whether no field was submitted.
func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Position == nil && p.Department == nil && p.Salary == nil
}

// Apply returns a copy of e with the submitted fields replaced.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Salary != nil {
		e.Salary = *p.Salary
	}
	return e
}

// Validate checks that submitted text fields are non-empty.
func (p EmployeePatch) Validate() error {
	var problems []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", p.Name},
		{"position", p.Position},
		{"department", p.Department},
	} {
		if f.value != nil && strings.TrimSpace(*f.value) == "" {
			problems = append(problems, f.name+" cannot be empty")
		}
	}
	return validationError(problems)
}

// NewEmployee builds a candidate record from client input. Every field is
// required; the id is assigned by the store.
func NewEmployee(name, position, department *string, salary *float64) (*Employee, error) {
	var problems []string
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", name},
		{"position", position},
		{"department", department},
	} {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			problems = append(problems, f.name+" is required")
		}
	}
	if salary == nil {
		problems = append(problems, "salary is required")
	}
	if err := validationError(problems); err != nil {
		return nil, err
	}
	return &Employee{
		Name:       *name,
		Position:   *position,
		Department: *department,
		Salary:     *salary,
	}, nil
}

func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidEmployee, strings.Join(problems, ", "))
}

// SampleEmployees returns the records inserted by the seed step.
func SampleEmployees() []Employee {
	return []Employee{
		{Name: "Siva1", Position: "Software Engineer", Department: "IT", Salary: 70000},
		{Name: "Siva2", Position: "Project Manager", Department: "Operations", Salary: 85000},
		{Name: "Siva3", Position: "HR Specialist", Department: "Human Resources", Salary: 65000},
		{Name: "Siva4", Position: "Accountant", Department: "Finance", Salary: 60000},
		{Name: "Siva5", Position: "Marketing Manager", Department: "Marketing", Salary: 78000},
	}
}
