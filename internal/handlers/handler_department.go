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

// departmentHandler handles HTTP requests for admin department management.
type departmentHandler struct {
	departmentService portssvc.DepartmentSvcFacade
}

func newDepartmentHandler(ds portssvc.DepartmentSvcFacade) *departmentHandler {
	return &departmentHandler{departmentService: ds}
}

// registerDepartmentRoutes registers all department admin routes.
func registerDepartmentRoutes(rg *gin.RouterGroup, departmentService portssvc.DepartmentSvcFacade) {
	h := newDepartmentHandler(departmentService)

	departments := rg.Group("/departments")
	{
		departments.GET("", h.listDepartments)
		departments.POST("", h.saveDepartment)
		departments.DELETE("/:id", h.deleteDepartment)
	}
}

// listDepartments godoc
// @Summary List departments
// @Description Returns all departments with their referencing-employee counts.
// @Tags departments
// @Produce json
// @Success 200 {object} dto.ListDepartmentsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [get]
func (h *departmentHandler) listDepartments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	departments, counts, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list departments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list departments"})
		return
	}

	rows := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		rows[i] = dto.ToDepartmentResponse(&departments[i], counts[departments[i].ID])
	}
	c.JSON(http.StatusOK, dto.ListDepartmentsResponse{Departments: rows})
}

// saveDepartment godoc
// @Summary Create or edit a department
// @Description Creates when no id is given; edits in place otherwise.
// @Tags departments
// @Accept json
// @Produce json
// @Param department body dto.SaveDepartmentRequest true "Department form"
// @Success 200 {object} dto.SaveDepartmentResponse "Edited"
// @Success 201 {object} dto.SaveDepartmentResponse "Created"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /departments [post]
func (h *departmentHandler) saveDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	department, err := h.departmentService.SaveDepartment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Department not found"})
			return
		}
		logger.Error("Failed to save department", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to save department"})
		return
	}

	status := http.StatusOK
	message := "Department updated successfully"
	if req.ID == "" {
		status = http.StatusCreated
		message = "Department added successfully"
	}
	c.JSON(status, dto.SaveDepartmentResponse{
		Department: dto.ToDepartmentResponse(department, 0),
		Notice:     dto.Notice(message, dto.SeveritySuccess),
	})
}

// deleteDepartment godoc
// @Summary Delete a department
// @Description Refused while any employee references the department.
// @Tags departments
// @Produce json
// @Param id path string true "Department ID"
// @Success 200 {object} dto.SaveDepartmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Employees still reference it"
// @Security BearerAuth
// @Router /departments/{id} [delete]
func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrReference):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Cannot delete department with employees"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Department not found"})
		default:
			logger.Error("Failed to delete department", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete department"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notice": dto.Notice("Department deleted", dto.SeveritySuccess),
	})
}
