package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"employee-admin/internal/models"
)

// DepartmentClient talks to /departments on the remote API. Updates use
// PATCH: the remote API treats department updates as partial.
type DepartmentClient struct {
	api   *Client
	scope errScope
}

func NewDepartmentClient(api *Client) *DepartmentClient {
	return &DepartmentClient{
		api: api,
		scope: errScope{
			entity:      "department",
			conflictMsg: "department name already exists",
		},
	}
}

func (c *DepartmentClient) ListAll(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := c.api.do(ctx, http.MethodGet, "/departments", nil, &out, c.scope); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *DepartmentClient) GetByID(ctx context.Context, id int64) (models.Department, error) {
	var out models.Department
	if id <= 0 {
		return out, &models.ValidationError{Field: "id", Message: "department id is required"}
	}
	err := c.api.do(ctx, http.MethodGet, fmt.Sprintf("/departments/%d", id), nil, &out, c.scope)
	return out, err
}

func (c *DepartmentClient) Create(ctx context.Context, payload models.DepartmentPayload) (models.Department, error) {
	var out models.Department
	if err := payload.Validate(); err != nil {
		return out, err
	}
	err := c.api.do(ctx, http.MethodPost, "/departments", payload.Normalized(), &out, c.scope)
	return out, err
}

func (c *DepartmentClient) Update(ctx context.Context, id int64, payload models.DepartmentPayload) (models.Department, error) {
	var out models.Department
	if id <= 0 {
		return out, &models.ValidationError{Field: "id", Message: "department id is required"}
	}
	if err := payload.Validate(); err != nil {
		return out, err
	}
	err := c.api.do(ctx, http.MethodPatch, fmt.Sprintf("/departments/%d", id), payload.Normalized(), &out, c.scope)
	return out, err
}

func (c *DepartmentClient) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &models.ValidationError{Field: "id", Message: "department id is required"}
	}
	return c.api.do(ctx, http.MethodDelete, fmt.Sprintf("/departments/%d", id), nil, nil, c.scope)
}
