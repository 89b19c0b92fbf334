package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopkeeper/internal/repositories"
	"shopkeeper/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.ISubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	db *gorm.DB,
	subscriptionRepo repositories.ISubscriptionRepository,
	audit services.AuditLogger) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(db, subscriptionRepo, audit)
}
