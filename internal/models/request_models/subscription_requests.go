package request_models

type SubscribeRequest struct {
	PlanID        string `json:"plan_id" binding:"required,uuid4"`
	Duration      string `json:"duration" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	AutoRenew     bool   `json:"auto_renew"`
}
