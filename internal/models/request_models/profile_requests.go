package request_models

type UpdateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"omitempty,email"`
	NewPassword string `json:"new_password" binding:"omitempty,min=6"`
}
