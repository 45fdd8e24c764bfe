package dto

import "github.com/spec-kit/employee-service/internal/domain"

// CreateEmployeeRequest payload. Absent and null fields decode to nil.
type CreateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
}

// UpdateEmployeeRequest payload for partial updates.
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Salary     *float64 `json:"salary"`
}

// Patch converts the request into a domain patch.
func (r UpdateEmployeeRequest) Patch() domain.EmployeePatch {
	return domain.EmployeePatch{
		Name:       r.Name,
		Position:   r.Position,
		Department: r.Department,
		Salary:     r.Salary,
	}
}

// EmployeeResponse is the wire shape of an employee.
type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// NewEmployeeResponse maps a domain employee.
func NewEmployeeResponse(e domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
	}
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}
