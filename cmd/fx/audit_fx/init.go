package audit_fx

import (
	"go.uber.org/fx"

	"shopkeeper/internal/services"
)

var Module = fx.Provide(
	services.NewAuditLogger)
