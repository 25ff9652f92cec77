package checklists

import (
	"context"
	"sync"
	"time"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/dto/requests"
	"vitaliv-service/internal/pkg/dto/responses"
	"vitaliv-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type checklistUsecase struct {
	ChecklistRepository contracts.ChecklistRepository
	SessionService      contracts.SessionService
	Log                 *zap.Logger
}

var (
	checklistUsecaseInstance contracts.ChecklistUsecase
	onceChecklistUsecase     sync.Once
)

func NewChecklistUsecase(
	checklistRepository contracts.ChecklistRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.ChecklistUsecase {
	onceChecklistUsecase.Do(func() {
		instance := &checklistUsecase{
			ChecklistRepository: checklistRepository,
			SessionService:      sessionService,
			Log:                 logger,
		}
		checklistUsecaseInstance = instance
	})
	return checklistUsecaseInstance
}

func (uc *checklistUsecase) ListItemsBySession(ctx context.Context, sessionData string) ([]responses.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	items, err := uc.ChecklistRepository.FindItemsByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.ChecklistItem, 0, len(items))
	for _, item := range items {
		response = append(response, buildChecklistItemResponse(&item))
	}
	return response, nil
}

func (uc *checklistUsecase) CreateItem(ctx context.Context, sessionData string, request *requests.CreateChecklistItem) (*responses.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.ChecklistItem{
		UserID: session.UserID,
		Title:  request.Title,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	itemID, err := uc.ChecklistRepository.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = itemID

	response := buildChecklistItemResponse(item)
	return &response, nil
}

func (uc *checklistUsecase) ToggleItem(ctx context.Context, sessionData, itemID string) (*responses.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	item, err := uc.ChecklistRepository.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != session.UserID {
		return nil, exceptions.ErrChecklistItemNotFound(nil)
	}

	item.Done = !item.Done
	item.UpdatedAt = time.Now()
	if err := uc.ChecklistRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	response := buildChecklistItemResponse(item)
	return &response, nil
}

func (uc *checklistUsecase) DeleteItem(ctx context.Context, sessionData, itemID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	item, err := uc.ChecklistRepository.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.UserID != session.UserID {
		return exceptions.ErrChecklistItemNotFound(nil)
	}

	return uc.ChecklistRepository.DeleteItemByID(ctx, itemID)
}

func buildChecklistItemResponse(item *models.ChecklistItem) responses.ChecklistItem {
	return responses.ChecklistItem{
		ID:        item.ID,
		Title:     item.Title,
		Done:      item.Done,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
	}
}
