package request_models

type UpdateShopRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// Uploads are handled by the file service; only the resulting URL lands here.
	LogoURL string `json:"logo_url" binding:"omitempty,url"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}
