package models

import (
	"regexp"
	"strings"
)

// Employee mirrors the remote API's employee resource. DepartmentDto is
// a read-only denormalized copy of the owning department; the API only
// populates it on the list-with-departments endpoint.
type Employee struct {
	ID            int64       `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Email         string      `json:"email"`
	DepartmentID  int64       `json:"departmentId"`
	DepartmentDto *Department `json:"departmentDto,omitempty"`
}

func (e Employee) EntityID() int64 { return e.ID }

// EmployeePayload is the request body for creating or updating an
// employee. Updates are full-replace (PUT) on the remote API.
type EmployeePayload struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the payload before any request is sent. Department
// membership is only checked for presence; referential integrity is the
// server's job.
func (p EmployeePayload) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return &ValidationError{Field: "firstName", Message: "first name is required"}
	}
	if strings.TrimSpace(p.LastName) == "" {
		return &ValidationError{Field: "lastName", Message: "last name is required"}
	}
	email := strings.TrimSpace(p.Email)
	if email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "email address is not valid"}
	}
	if p.DepartmentID == 0 {
		return &ValidationError{Field: "departmentId", Message: "please select a department"}
	}
	return nil
}
