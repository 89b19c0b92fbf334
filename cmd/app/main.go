package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"shopkeeper/cmd/fx/audit_fx"
	"shopkeeper/cmd/fx/controllers_fx"
	"shopkeeper/cmd/fx/db_fx"
	"shopkeeper/cmd/fx/plan_fx"
	"shopkeeper/cmd/fx/profile_fx"
	"shopkeeper/cmd/fx/shop_fx"
	"shopkeeper/cmd/fx/subscription_fx"
	"shopkeeper/internal/api/controllers"
	"shopkeeper/internal/models/db_models"
	"shopkeeper/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		audit_fx.Module,
		plan_fx.Module,
		shop_fx.Module,
		subscription_fx.Module,
		profile_fx.Module,
		controllers_fx.Module,

		fx.Invoke(MigrateModels),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func MigrateModels(db *gorm.DB) {
	err := db.AutoMigrate(
		&db_models.Shop{},
		&db_models.User{},
		&db_models.PricingPlan{},
		&db_models.Subscription{},
		&db_models.AdminAction{},
		&db_models.Backup{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate models: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	shopController *controllers.ShopController,
	subscriptionController *controllers.SubscriptionController,
	planController *controllers.PlanController,
	profileController *controllers.ProfileController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, shopController, subscriptionController, planController, profileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	shopController *controllers.ShopController,
	subscriptionController *controllers.SubscriptionController,
	planController *controllers.PlanController,
	profileController *controllers.ProfileController) {

	plansGroup := r.Group("/plans")
	plansGroup.GET("", planController.ListPlans)
	plansGroup.GET("/:id", planController.GetPlanById)

	shopGroup := r.Group("/shops/me")
	shopGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	shopGroup.GET("", shopController.GetShop)
	shopGroup.PUT("", shopController.UpdateShop)
	shopGroup.PATCH("/status", shopController.SetStatus)
	shopGroup.POST("/backups", shopController.RequestBackup)
	shopGroup.GET("/actions", shopController.ListActions)
	shopGroup.GET("/users", shopController.ListUsers)
	shopGroup.POST("/subscription", subscriptionController.Subscribe)
	shopGroup.DELETE("/subscription", subscriptionController.Cancel)
	shopGroup.GET("/subscription", subscriptionController.GetCurrent)

	profileGroup := r.Group("/profile")
	profileGroup.Use(middleware.JWTAuthMiddleware())
	profileGroup.PUT("", profileController.UpdateProfile)
}
