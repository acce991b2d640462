package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"effi-track-backend/internal/database/models"
	apperrors "effi-track-backend/internal/errors"
	"effi-track-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// CreateEmployee handles POST /employees
// @Summary Create a new employee
// @Description Create a new employee with the provided details
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee data"
// @Success 201 {object} service.EmployeeResponse "Successfully created employee"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Employee email already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// GetEmployee handles GET /employees/:id
// @Summary Get employee by ID
// @Description Get a specific employee by its UUID
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Success 200 {object} service.EmployeeResponse "Successfully retrieved employee"
// @Failure 400 {object} map[string]interface{} "Invalid employee ID"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	employee, err := h.employeeService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// ListEmployees handles GET /employees
// @Summary List employees
// @Description Get all employees with optional status filtering and pagination
// @Tags employees
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (active|inactive)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EmployeeListResponse "Successfully retrieved employees"
// @Failure 400 {object} map[string]interface{} "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	var status *models.EmployeeStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.EmployeeStatus(statusStr)
		if s != models.EmployeeStatusActive && s != models.EmployeeStatusInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		status = &s
	}

	employees, err := h.employeeService.List(status, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// UpdateEmployee handles PUT /employees/:id
// @Summary Update an employee
// @Description Update an employee's details or flip its status. Employees are never hard-deleted.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (UUID)"
// @Param employee body service.UpdateEmployeeRequest true "Employee data"
// @Success 200 {object} service.EmployeeResponse "Successfully updated employee"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Employee email already in use"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee ID"})
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employeeService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrEmployeeEmailExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employee)
}
