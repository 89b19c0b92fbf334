package shop_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopkeeper/internal/repositories"
	"shopkeeper/internal/services"
)

var Module = fx.Provide(
	provideShopService, provideShopRepo, provideActionRepo, provideUserRepo)

func provideShopRepo(db *gorm.DB) repositories.IShopRepository {
	return repositories.NewShopRepository(db)
}

func provideActionRepo(db *gorm.DB) repositories.IAdminActionRepository {
	return repositories.NewAdminActionRepository(db)
}

func provideUserRepo(db *gorm.DB) repositories.IUserRepository {
	return repositories.NewUserRepository(db)
}

func provideShopService(
	db *gorm.DB,
	shopRepo repositories.IShopRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	actionRepo repositories.IAdminActionRepository,
	userRepo repositories.IUserRepository,
	audit services.AuditLogger) services.ShopServiceInterface {
	return services.NewShopService(db, shopRepo, subscriptionRepo, actionRepo, userRepo, audit)
}
