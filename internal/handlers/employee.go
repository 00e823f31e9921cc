package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"employee-admin/internal/models"
	"employee-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EmployeeHandler serves the employee list and form views. It needs the
// department store as well to fill the department select box.
type EmployeeHandler struct {
	employees   *store.EmployeeStore
	departments *store.DepartmentStore
	log         zerolog.Logger
}

func NewEmployeeHandler(employees *store.EmployeeStore, departments *store.DepartmentStore, log zerolog.Logger) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, departments: departments, log: log}
}

// GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	if c.Query("retry") != "" {
		h.employees.ClearError()
	}
	h.employees.FetchAll(c.Request.Context())
	h.renderList(c, http.StatusOK, "")
}

func (h *EmployeeHandler) renderList(c *gin.Context, status int, deleteErr string) {
	listErr := h.employees.Err()
	if deleteErr != "" {
		// A failed delete must not hide the (unchanged) list.
		listErr = ""
	}
	c.HTML(status, "employees/list", gin.H{
		"Title":       "Employees",
		"Employees":   h.employees.Items(),
		"Error":       listErr,
		"DeleteError": deleteErr,
	})
}

// GET /add-employee
func (h *EmployeeHandler) NewForm(c *gin.Context) {
	h.employees.ClearCurrent()
	h.departments.FetchAll(c.Request.Context())
	h.renderForm(c, http.StatusOK, false, models.EmployeePayload{}, "")
}

// GET /edit-employee/:id
func (h *EmployeeHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	// Fresh edit flow: never show a stale record while fetching.
	h.employees.ClearCurrent()
	h.departments.FetchAll(c.Request.Context())

	emp, err := h.employees.FetchOne(c.Request.Context(), id)
	if err != nil {
		h.renderForm(c, http.StatusOK, true, models.EmployeePayload{}, err.Error())
		return
	}
	draft := models.EmployeePayload{
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
	}
	h.renderForm(c, http.StatusOK, true, draft, "")
}

// POST /add-employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	form := h.bindForm(c)
	if err := form.Validate(); err != nil {
		h.rerenderForm(c, false, form, err.Error())
		return
	}
	if _, err := h.employees.CreateOne(c.Request.Context(), form); err != nil {
		h.rerenderForm(c, false, form, err.Error())
		return
	}
	h.employees.ClearCurrent()
	c.Redirect(http.StatusSeeOther, "/employees")
}

// POST /edit-employee/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	form := h.bindForm(c)
	if err := form.Validate(); err != nil {
		h.rerenderForm(c, true, form, err.Error())
		return
	}
	if _, err := h.employees.UpdateOne(c.Request.Context(), id, form); err != nil {
		h.rerenderForm(c, true, form, err.Error())
		return
	}
	h.employees.ClearCurrent()
	c.Redirect(http.StatusSeeOther, "/employees")
}

// GET /delete-employee/:id
func (h *EmployeeHandler) ConfirmDelete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	subject := fmt.Sprintf("employee %d", id)
	for _, e := range h.employees.Items() {
		if e.ID == id {
			subject = fmt.Sprintf("%s %s", e.FirstName, e.LastName)
			break
		}
	}
	c.HTML(http.StatusOK, "confirm_delete", gin.H{
		"Title":     "Delete Employee",
		"Subject":   subject,
		"Action":    fmt.Sprintf("/delete-employee/%d", id),
		"CancelURL": "/employees",
	})
}

// POST /delete-employee/:id
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/employees")
		return
	}
	if err := h.employees.DeleteOne(c.Request.Context(), id); err != nil {
		h.log.Warn().Int64("id", id).Str("error", err.Error()).Msg("employee delete failed")
		h.renderList(c, http.StatusOK, "Failed to delete employee: "+err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/employees")
}

func (h *EmployeeHandler) bindForm(c *gin.Context) models.EmployeePayload {
	deptID, _ := strconv.ParseInt(c.PostForm("departmentId"), 10, 64)
	return models.EmployeePayload{
		FirstName:    c.PostForm("firstName"),
		LastName:     c.PostForm("lastName"),
		Email:        c.PostForm("email"),
		DepartmentID: deptID,
	}
}

func (h *EmployeeHandler) renderForm(c *gin.Context, status int, isEdit bool, form models.EmployeePayload, errMsg string) {
	title := "Add Employee"
	if isEdit {
		title = "Edit Employee"
	}
	c.HTML(status, "employees/form", gin.H{
		"Title":       title,
		"IsEdit":      isEdit,
		"Form":        form,
		"Departments": h.departments.Items(),
		"Error":       errMsg,
	})
}

// rerenderForm keeps the entered values on the page after a failed
// submit. The department list may not be loaded on a direct POST, so
// refresh it.
func (h *EmployeeHandler) rerenderForm(c *gin.Context, isEdit bool, form models.EmployeePayload, errMsg string) {
	h.departments.FetchAll(c.Request.Context())
	h.renderForm(c, http.StatusOK, isEdit, form, errMsg)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
