package models

import (
	"strings"
	"unicode/utf8"
)

// Department mirrors the remote API's department resource. IDs are
// assigned server-side and never reassigned by this application.
type Department struct {
	ID                    int64  `json:"id"`
	DepartmentName        string `json:"departmentName"`
	DepartmentDescription string `json:"departmentDescription"`
}

func (d Department) EntityID() int64 { return d.ID }

// DepartmentPayload is the request body for creating or updating a
// department. The remote API patches departments partially, but this
// client always sends both fields.
type DepartmentPayload struct {
	DepartmentName        string `json:"departmentName"`
	DepartmentDescription string `json:"departmentDescription"`
}

// Normalized returns the payload with surrounding whitespace stripped,
// the exact form that goes on the wire.
func (p DepartmentPayload) Normalized() DepartmentPayload {
	return DepartmentPayload{
		DepartmentName:        strings.TrimSpace(p.DepartmentName),
		DepartmentDescription: strings.TrimSpace(p.DepartmentDescription),
	}
}

// Validate checks the payload before any request is sent.
func (p DepartmentPayload) Validate() error {
	name := strings.TrimSpace(p.DepartmentName)
	if name == "" {
		return &ValidationError{Field: "departmentName", Message: "department name is required"}
	}
	// Length limits count characters, not bytes.
	if utf8.RuneCountInString(name) < 2 {
		return &ValidationError{Field: "departmentName", Message: "department name must be at least 2 characters"}
	}
	if utf8.RuneCountInString(name) > 100 {
		return &ValidationError{Field: "departmentName", Message: "department name cannot exceed 100 characters"}
	}
	if utf8.RuneCountInString(p.DepartmentDescription) > 500 {
		return &ValidationError{Field: "departmentDescription", Message: "department description cannot exceed 500 characters"}
	}
	return nil
}
