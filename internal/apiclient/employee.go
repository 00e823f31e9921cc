package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"employee-admin/internal/models"
)

// EmployeeClient talks to /employees on the remote API. ListAll hits
// the /employees/departments endpoint so every row carries its
// denormalized departmentDto. Updates use PUT (full replace), unlike
// departments.
type EmployeeClient struct {
	api   *Client
	scope errScope
}

func NewEmployeeClient(api *Client) *EmployeeClient {
	return &EmployeeClient{
		api: api,
		scope: errScope{
			entity:      "employee",
			conflictMsg: "data conflict occurred",
		},
	}
}

func (c *EmployeeClient) ListAll(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	if err := c.api.do(ctx, http.MethodGet, "/employees/departments", nil, &out, c.scope); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *EmployeeClient) GetByID(ctx context.Context, id int64) (models.Employee, error) {
	var out models.Employee
	if id <= 0 {
		return out, &models.ValidationError{Field: "id", Message: "employee id is required"}
	}
	err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &out, c.scope)
	return out, err
}

func (c *EmployeeClient) Create(ctx context.Context, payload models.EmployeePayload) (models.Employee, error) {
	var out models.Employee
	if err := payload.Validate(); err != nil {
		return out, err
	}
	err := c.api.do(ctx, http.MethodPost, "/employees", payload, &out, c.scope)
	return out, err
}

func (c *EmployeeClient) Update(ctx context.Context, id int64, payload models.EmployeePayload) (models.Employee, error) {
	var out models.Employee
	if id <= 0 {
		return out, &models.ValidationError{Field: "id", Message: "employee id is required"}
	}
	if err := payload.Validate(); err != nil {
		return out, err
	}
	err := c.api.do(ctx, http.MethodPut, fmt.Sprintf("/employees/%d", id), payload, &out, c.scope)
	return out, err
}

func (c *EmployeeClient) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &models.ValidationError{Field: "id", Message: "employee id is required"}
	}
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil, c.scope)
}
