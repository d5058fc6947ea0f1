package dto

// CreateDepartmentRequest carries the department name for create/update.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}
