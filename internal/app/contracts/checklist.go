package contracts

import (
	"context"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
)

type ChecklistUsecase interface {
	ListItemsBySession(ctx context.Context, sessionData string) ([]responses.ChecklistItem, error)
	CreateItem(ctx context.Context, sessionData string, request *requests.CreateChecklistItem) (*responses.ChecklistItem, error)
	ToggleItem(ctx context.Context, sessionData, itemID string) (*responses.ChecklistItem, error)
	DeleteItem(ctx context.Context, sessionData, itemID string) error
}

type ChecklistRepository interface {
	CreateItem(ctx context.Context, item *models.ChecklistItem) (itemID string, err error)
	FindItemByID(ctx context.Context, itemID string) (*models.ChecklistItem, error)
	FindItemsByUserID(ctx context.Context, userID string) ([]models.ChecklistItem, error)
	UpdateItem(ctx context.Context, item *models.ChecklistItem) error
	DeleteItemByID(ctx context.Context, itemID string) error
}
