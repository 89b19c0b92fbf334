package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopkeeper/internal/infra"
	"shopkeeper/internal/models/db_models"
	"shopkeeper/internal/models/request_models"
	"shopkeeper/internal/models/response_models"
	"shopkeeper/internal/repositories"
	"shopkeeper/pkg/utils"
)

const defaultStatusReason = "No reason provided"

type ShopServiceInterface interface {
	GetShop(ctx context.Context, shopID uuid.UUID) (*response_models.ShopResponse, error)
	UpdateShop(ctx context.Context, shopID, adminID uuid.UUID, request request_models.UpdateShopRequest) error
	SetStatus(ctx context.Context, shopID, adminID uuid.UUID, status, reason string) error
	RequestBackup(ctx context.Context, shopID, adminID uuid.UUID) (*db_models.Backup, error)
	ListActions(ctx context.Context, shopID uuid.UUID, page, pageSize int) ([]response_models.AdminActionResponse, error)
	ListUsers(ctx context.Context, shopID uuid.UUID) ([]response_models.UserResponse, error)
}

type ShopService struct {
	db               *gorm.DB
	shopRepo         repositories.IShopRepository
	subscriptionRepo repositories.ISubscriptionRepository
	actionRepo       repositories.IAdminActionRepository
	userRepo         repositories.IUserRepository
	audit            AuditLogger
}

func NewShopService(
	db *gorm.DB,
	shopRepo repositories.IShopRepository,
	subscriptionRepo repositories.ISubscriptionRepository,
	actionRepo repositories.IAdminActionRepository,
	userRepo repositories.IUserRepository,
	audit AuditLogger) ShopServiceInterface {
	return &ShopService{
		db:               db,
		shopRepo:         shopRepo,
		subscriptionRepo: subscriptionRepo,
		actionRepo:       actionRepo,
		userRepo:         userRepo,
		audit:            audit,
	}
}

func (s *ShopService) GetShop(ctx context.Context, shopID uuid.UUID) (*response_models.ShopResponse, error) {

	shop, err := s.shopRepo.FindById(ctx, shopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if shop == nil {
		return nil, utils.ErrShopNotFound
	}

	result := response_models.ShopResponse{
		ID:      shop.ID,
		Name:    shop.Name,
		Email:   shop.Email,
		Phone:   shop.Phone,
		Address: shop.Address,
		LogoURL: shop.LogoURL,
		Plan:    shop.Plan,
		Status:  string(shop.Status),
	}

	sub, err := s.subscriptionRepo.GetCurrentActive(ctx, shopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub != nil {
		result.Subscription = &response_models.SubscriptionResponse{
			ID:            sub.ID,
			PlanName:      sub.PlanName,
			Price:         sub.Price,
			Duration:      string(sub.Duration),
			StartedAt:     sub.StartedAt,
			ExpiresAt:     sub.ExpiresAt,
			Status:        string(sub.Status),
			PaymentMethod: sub.PaymentMethod,
			AutoRenew:     sub.AutoRenew,
		}
	}

	return &result, nil
}

func (s *ShopService) UpdateShop(ctx context.Context, shopID, adminID uuid.UUID, request request_models.UpdateShopRequest) error {

	updates := map[string]interface{}{}
	if request.Name != "" {
		updates["name"] = request.Name
	}
	if request.Email != "" {
		updates["email"] = request.Email
	}
	if request.Phone != "" {
		updates["phone"] = request.Phone
	}
	if request.Address != "" {
		updates["address"] = request.Address
	}
	if request.LogoURL != "" {
		updates["logo_url"] = request.LogoURL
	}

	return infra.RunAtomic(ctx, s.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		if len(updates) > 0 {
			if err := tx.Model(shop).Updates(updates).Error; err != nil {
				return err
			}
		}

		fields := make([]string, 0, len(updates))
		for field := range updates {
			fields = append(fields, field)
		}

		return s.audit.Record(tx, adminID, shop.ID, db_models.ActionShopUpdate, map[string]any{
			"action": "Shop profile updated",
			"fields": fields,
		})
	})
}

func (s *ShopService) SetStatus(ctx context.Context, shopID, adminID uuid.UUID, status, reason string) error {

	newStatus := db_models.ShopStatus(status)
	switch newStatus {
	case db_models.ShopStatusActive, db_models.ShopStatusInactive, db_models.ShopStatusSuspended:
	default:
		// Rejected before any transaction opens.
		return utils.ErrInvalidStatus
	}

	if reason == "" {
		reason = defaultStatusReason
	}

	return infra.RunAtomic(ctx, s.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		if err := tx.Model(shop).Update("status", newStatus).Error; err != nil {
			return err
		}

		if newStatus != db_models.ShopStatusActive {
			// Deactivating a shop locks out its staff, but never the admin
			// performing the change. Reactivation cascades nothing; bringing
			// users back is a separate concern.
			if err := tx.Model(&db_models.User{}).
				Where("shop_id = ? AND id <> ?", shop.ID, adminID).
				Update("status", db_models.UserStatusInactive).Error; err != nil {
				return err
			}
		}

		return s.audit.Record(tx, adminID, shop.ID, db_models.ActionShopStatusUpdate, map[string]any{
			"action": fmt.Sprintf("Shop status changed to %s", newStatus),
			"reason": reason,
		})
	})
}

func (s *ShopService) RequestBackup(ctx context.Context, shopID, adminID uuid.UUID) (*db_models.Backup, error) {

	var backup *db_models.Backup

	err := infra.RunAtomic(ctx, s.db, shopID, func(tx *gorm.DB, shop *db_models.Shop) error {

		record := db_models.Backup{
			ShopID:      shop.ID,
			RequestedBy: adminID,
			Status:      db_models.BackupStatusPending,
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		backup = &record

		return s.audit.Record(tx, adminID, shop.ID, db_models.ActionBackupCreated, map[string]any{
			"action":    "Backup requested",
			"backup_id": record.ID,
		})
	})

	if err != nil {
		return nil, err
	}

	return backup, nil
}

func (s *ShopService) ListActions(ctx context.Context, shopID uuid.UUID, page, pageSize int) ([]response_models.AdminActionResponse, error) {

	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	actions, err := s.actionRepo.ListByShop(ctx, shopID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.AdminActionResponse, 0, len(actions))
	for _, action := range actions {
		results = append(results, response_models.AdminActionResponse{
			ID:         action.ID,
			AdminID:    action.AdminID,
			ActionType: string(action.ActionType),
			Details:    json.RawMessage(action.Details),
			CreatedAt:  action.CreatedAt,
		})
	}

	return results, nil
}

func (s *ShopService) ListUsers(ctx context.Context, shopID uuid.UUID) ([]response_models.UserResponse, error) {

	users, err := s.userRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := make([]response_models.UserResponse, 0, len(users))
	for _, user := range users {
		results = append(results, response_models.UserResponse{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   user.Role,
			Status: string(user.Status),
		})
	}

	return results, nil
}
