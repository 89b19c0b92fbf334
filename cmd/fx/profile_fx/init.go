package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopkeeper/internal/services"
)

var Module = fx.Provide(
	provideProfileService)

func provideProfileService(db *gorm.DB, audit services.AuditLogger) services.ProfileServiceInterface {
	return services.NewProfileService(db, audit)
}
