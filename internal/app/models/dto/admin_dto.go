package dto

// UpdateAdminRequest updates the admin's display name.
type UpdateAdminRequest struct {
	Name string `json:"name" binding:"required"`
}

