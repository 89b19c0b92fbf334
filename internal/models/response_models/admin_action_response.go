package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type AdminActionResponse struct {
	ID         uuid.UUID       `json:"id"`
	AdminID    uuid.UUID       `json:"admin_id"`
	ActionType string          `json:"action_type"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  int64           `json:"created_at"`
}
