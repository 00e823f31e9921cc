package handlers

import (
	"fmt"
	"net/http"

	"employee-admin/internal/models"
	"employee-admin/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type DepartmentHandler struct {
	departments *store.DepartmentStore
	log         zerolog.Logger
}

func NewDepartmentHandler(departments *store.DepartmentStore, log zerolog.Logger) *DepartmentHandler {
	return &DepartmentHandler{departments: departments, log: log}
}

// GET /departments
func (h *DepartmentHandler) List(c *gin.Context) {
	if c.Query("retry") != "" {
		h.departments.ClearError()
	}
	h.departments.FetchAll(c.Request.Context())
	h.renderList(c, http.StatusOK, "")
}

func (h *DepartmentHandler) renderList(c *gin.Context, status int, deleteErr string) {
	listErr := h.departments.Err()
	if deleteErr != "" {
		listErr = ""
	}
	c.HTML(status, "departments/list", gin.H{
		"Title":       "Departments",
		"Departments": h.departments.Items(),
		"Error":       listErr,
		"DeleteError": deleteErr,
	})
}

// GET /add-department
func (h *DepartmentHandler) NewForm(c *gin.Context) {
	h.departments.ClearCurrent()
	h.renderForm(c, http.StatusOK, false, models.DepartmentPayload{}, "")
}

// GET /edit-department/:id
func (h *DepartmentHandler) EditForm(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	h.departments.ClearCurrent()

	dept, err := h.departments.FetchOne(c.Request.Context(), id)
	if err != nil {
		h.renderForm(c, http.StatusOK, true, models.DepartmentPayload{}, err.Error())
		return
	}
	draft := models.DepartmentPayload{
		DepartmentName:        dept.DepartmentName,
		DepartmentDescription: dept.DepartmentDescription,
	}
	h.renderForm(c, http.StatusOK, true, draft, "")
}

// POST /add-department
func (h *DepartmentHandler) Create(c *gin.Context) {
	form := bindDepartmentForm(c)
	if err := form.Validate(); err != nil {
		h.renderForm(c, http.StatusOK, false, form, err.Error())
		return
	}
	if _, err := h.departments.CreateOne(c.Request.Context(), form); err != nil {
		h.renderForm(c, http.StatusOK, false, form, err.Error())
		return
	}
	h.departments.ClearCurrent()
	c.Redirect(http.StatusSeeOther, "/departments")
}

// POST /edit-department/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	form := bindDepartmentForm(c)
	if err := form.Validate(); err != nil {
		h.renderForm(c, http.StatusOK, true, form, err.Error())
		return
	}
	if _, err := h.departments.UpdateOne(c.Request.Context(), id, form); err != nil {
		h.renderForm(c, http.StatusOK, true, form, err.Error())
		return
	}
	h.departments.ClearCurrent()
	c.Redirect(http.StatusSeeOther, "/departments")
}

// GET /delete-department/:id
func (h *DepartmentHandler) ConfirmDelete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	subject := fmt.Sprintf("department %d", id)
	for _, d := range h.departments.Items() {
		if d.ID == id {
			subject = "the " + d.DepartmentName + " department"
			break
		}
	}
	c.HTML(http.StatusOK, "confirm_delete", gin.H{
		"Title":     "Delete Department",
		"Subject":   subject,
		"Action":    fmt.Sprintf("/delete-department/%d", id),
		"CancelURL": "/departments",
	})
}

// POST /delete-department/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/departments")
		return
	}
	if err := h.departments.DeleteOne(c.Request.Context(), id); err != nil {
		h.log.Warn().Int64("id", id).Str("error", err.Error()).Msg("department delete failed")
		h.renderList(c, http.StatusOK, "Failed to delete department: "+err.Error())
		return
	}
	c.Redirect(http.StatusSeeOther, "/departments")
}

func bindDepartmentForm(c *gin.Context) models.DepartmentPayload {
	return models.DepartmentPayload{
		DepartmentName:        c.PostForm("departmentName"),
		DepartmentDescription: c.PostForm("departmentDescription"),
	}
}

func (h *DepartmentHandler) renderForm(c *gin.Context, status int, isEdit bool, form models.DepartmentPayload, errMsg string) {
	title := "Add Department"
	if isEdit {
		title = "Edit Department"
	}
	c.HTML(status, "departments/form", gin.H{
		"Title":  title,
		"IsEdit": isEdit,
		"Form":   form,
		"Error":  errMsg,
	})
}
