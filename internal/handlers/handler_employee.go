package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	portssvc "github.com/lilad25/intranet-portal/internal/core/ports/services"
	"github.com/lilad25/intranet-portal/internal/dto"
	"github.com/lilad25/intranet-portal/internal/middleware"
)

// employeeHandler handles HTTP requests for admin employee management.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers all employee admin routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.saveEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Returns all employees with department names resolved at render time.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, departmentNames, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list employees"})
		return
	}

	rows := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		rows[i] = dto.ToEmployeeResponse(&employees[i], departmentNames[employees[i].DepartmentID])
	}
	c.JSON(http.StatusOK, dto.ListEmployeesResponse{Employees: rows})
}

// saveEmployee godoc
// @Summary Create or edit an employee
// @Description Creates when no id is given; edits in place otherwise. The user e-mail must match an existing account or nothing is persisted.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.SaveEmployeeRequest true "Employee form"
// @Success 200 {object} dto.SaveEmployeeResponse "Edited"
// @Success 201 {object} dto.SaveEmployeeResponse "Created"
// @Failure 400 {object} dto.ErrorResponse "Unknown user e-mail"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) saveEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	employee, departmentName, err := h.employeeService.SaveEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReference):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "User email does not match any account"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Employee not found"})
		default:
			logger.Error("Failed to save employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save employee"})
		}
		return
	}

	status := http.StatusOK
	if req.ID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, dto.SaveEmployeeResponse{
		Employee: dto.ToEmployeeResponse(employee, departmentName),
		Notice:   dto.Notice("Employee saved successfully", dto.SeveritySuccess),
	})
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes the employee record unconditionally.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.SaveEmployeeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to delete employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice": dto.Notice("Employee deleted", dto.SeveritySuccess),
	})
}
