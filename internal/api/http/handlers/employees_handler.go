package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// EmployeesHandler serves the employee CRUD endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// CreateEmployee POST /api/employees.
func (h *EmployeesHandler) CreateEmployee(c *fiber.Ctx) error {
	var req dto.CreateEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	emp, err := h.service.Create(c.UserContext(), service.EmployeeCreateInput{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Salary:     req.Salary,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewEmployeeResponse(*emp))
}

// ListEmployees GET /api/employees.
func (h *EmployeesHandler) ListEmployees(c *fiber.Ctx) error {
	emps, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		items = append(items, dto.NewEmployeeResponse(emps[i]))
	}
	return c.JSON(items)
}

// GetEmployee GET /api/employees/:id.
func (h *EmployeesHandler) GetEmployee(c *fiber.Ctx) error {
	emp, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(*emp))
}

// UpdateEmployee PUT /api/employees/:id.
func (h *EmployeesHandler) UpdateEmployee(c *fiber.Ctx) error {
	var req dto.UpdateEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	emp, err := h.service.Update(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(*emp))
}

// DeleteEmployee DELETE /api/employees/:id.
func (h *EmployeesHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Employee deleted"})
}

// parseBody decodes the request body into out. An empty body leaves out
// untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	return nil
}
