package store

import "employee-admin/internal/models"

// The two entities are near-duplicates, so they share the generic Store
// and differ only in their type parameters.
type (
	DepartmentStore = Store[models.Department, models.DepartmentPayload]
	EmployeeStore   = Store[models.Employee, models.EmployeePayload]
)
