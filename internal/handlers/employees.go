package handlers

import (
	"context"
	"errors"
	"net/http"

	"employee-directory/internal/config"
	"employee-directory/internal/models"
	"employee-directory/internal/repository"
	"employee-directory/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// --- Structs for Request Binding ---

// Fields are pointers so that "required" means present: an empty value is
// accepted, an absent field is not.
type AddEmployeeRequest struct {
	EmpID        *string `form:"emp_id" binding:"required"`
	FirstName    *string `form:"first_name" binding:"required"`
	LastName     *string `form:"last_name" binding:"required"`
	PrimarySkill *string `form:"primary_skill" binding:"required"`
	Location     *string `form:"location" binding:"required"`
}

type FetchEmployeeRequest struct {
	EmpID *string `form:"emp_id" binding:"required"`
}

func (r AddEmployeeRequest) toModel() *models.Employee {
	return &models.Employee{
		EmpID:        *r.EmpID,
		FirstName:    *r.FirstName,
		LastName:     *r.LastName,
		PrimarySkill: *r.PrimarySkill,
		Location:     *r.Location,
	}
}

// User-facing messages.
const (
	msgMissingFields    = "Missing required field(s)"
	msgEmployeeNotFound = "Employee not found"
	msgEmployeeExists   = "Employee already exists"
	msgDatabaseError    = "Database error"
)

// EmployeeStore is the data access the handlers need.
type EmployeeStore interface {
	Insert(ctx context.Context, employee *models.Employee) (string, error)
	FetchByID(ctx context.Context, empID string) (*models.Employee, error)
}

// PingFunc reports whether the database is reachable.
type PingFunc func(ctx context.Context) error

// Handler serves every route. All of its fields are set once in NewHandler.
type Handler struct {
	store  EmployeeStore
	ping   PingFunc
	theme  gin.H
	logger *zap.Logger
}

func NewHandler(store EmployeeStore, ping PingFunc, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		store: store,
		ping:  ping,
		theme: gin.H{
			"color":        cfg.ColorHex(),
			"student_name": cfg.Theme.StudentName,
			"bg_image":     cfg.Theme.BackgroundImage(),
		},
		logger: logger,
	}
}

// --- Handler Functions ---

func (h *Handler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("rejected add employee request", zap.Error(err))
		h.render(c, http.StatusBadRequest, views.Error, gin.H{"error": msgMissingFields})
		return
	}

	employee := req.toModel()
	name, err := h.store.Insert(c.Request.Context(), employee)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmployee) {
			h.render(c, http.StatusConflict, views.Error, gin.H{"error": msgEmployeeExists})
			return
		}
		h.logger.Error("failed to insert employee",
			zap.String("emp_id", employee.EmpID),
			zap.Error(err))
		_ = c.Error(err)
		h.render(c, http.StatusInternalServerError, views.Error, gin.H{"error": msgDatabaseError})
		return
	}

	h.render(c, http.StatusOK, views.AddEmployeeOutput, gin.H{"name": name})
}

// FetchData looks up one employee. Lookup failures are reported on the page
// itself; the response status stays 200.
func (h *Handler) FetchData(c *gin.Context) {
	var req FetchEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.logger.Warn("rejected fetch employee request", zap.Error(err))
		h.render(c, http.StatusBadRequest, views.Error, gin.H{"error": msgMissingFields})
		return
	}

	employee, err := h.store.FetchByID(c.Request.Context(), *req.EmpID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			h.render(c, http.StatusOK, views.GetEmployeeOutput, gin.H{"error": msgEmployeeNotFound})
			return
		}
		h.logger.Error("failed to fetch employee",
			zap.String("emp_id", *req.EmpID),
			zap.Error(err))
		h.render(c, http.StatusOK, views.GetEmployeeOutput, gin.H{"error": msgDatabaseError})
		return
	}

	h.render(c, http.StatusOK, views.GetEmployeeOutput, gin.H{
		"id":       employee.EmpID,
		"fname":    employee.FirstName,
		"lname":    employee.LastName,
		"interest": employee.PrimarySkill,
		"location": employee.Location,
	})
}

// render merges the theme values into data and renders the named page.
func (h *Handler) render(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	for k, v := range h.theme {
		data[k] = v
	}
	c.HTML(status, page, data)
}
